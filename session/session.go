package session

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/iw2rmb/marknote/buffer"
	"github.com/iw2rmb/marknote/format"
	"github.com/iw2rmb/marknote/history"
	"github.com/iw2rmb/marknote/internal/grapheme"
	"github.com/iw2rmb/marknote/internal/logging"
	"github.com/iw2rmb/marknote/markdown"
	"github.com/iw2rmb/marknote/store"
)

// ChangeEvent is delivered to the change listener after every content change.
type ChangeEvent struct {
	Version uint64
	Text    string
	// Characters counts grapheme clusters.
	Characters int
	HTML       string
}

type handler func(*Session, Command) (Result, error)

var handlers = map[CommandKind]handler{
	CmdFormat:           (*Session).applyFormat,
	CmdUndo:             (*Session).undo,
	CmdRedo:             (*Session).redo,
	CmdToggleTheme:      (*Session).toggleTheme,
	CmdToggleBackground: (*Session).toggleBackground,
	CmdSwitchFolder:     (*Session).switchFolder,
	CmdShowSettings:     (*Session).showSettings,
	CmdInput:            (*Session).input,
	CmdFlush:            (*Session).flush,
}

// Session is a single editor instance.
type Session struct {
	id       string
	buf      *buffer.Buffer
	hist     *history.History
	settings Settings

	store    store.Store
	log      *slog.Logger
	onChange func(ChangeEvent)
}

type Option func(*Session)

// WithLogger sets the logger. The session adds its own id attribute.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithOnChange registers the content change listener.
func WithOnChange(fn func(ChangeEvent)) Option {
	return func(s *Session) { s.onChange = fn }
}

// New restores a session from st: the document from the content key (when
// non-empty), the theme from the dark mode flag and the background from its
// key. The folder always starts at DefaultFolder.
func New(st store.Store, opts ...Option) *Session {
	s := &Session{
		id:   uuid.NewString(),
		hist: history.New(),
		settings: Settings{
			Background: BackgroundNone,
			Folder:     DefaultFolder,
		},
		store: st,
		log:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("session", s.id)

	text := ""
	if v, ok := st.Get(store.KeyContent); ok && v != "" {
		text = v
	}
	s.buf = buffer.New(text)
	s.loadSettings()

	s.log.Info("session started",
		"chars", grapheme.Count(text),
		"dark", s.settings.Dark,
		"background", string(s.settings.Background))
	return s
}

func (s *Session) ID() string { return s.id }

// Buffer exposes the editing surface. Callers that change the text through
// it must dispatch Input afterwards.
func (s *Session) Buffer() *buffer.Buffer { return s.buf }

func (s *Session) Text() string { return s.buf.Text() }

func (s *Session) Settings() Settings { return s.settings }

func (s *Session) CanUndo() bool { return s.hist.CanUndo() }

func (s *Session) CanRedo() bool { return s.hist.CanRedo() }

// Characters returns the document length in grapheme clusters.
func (s *Session) Characters() int { return grapheme.Count(s.buf.Text()) }

// Preview renders the current document.
func (s *Session) Preview() string { return markdown.Render(s.buf.Text()) }

// Dispatch runs cmd. Store failures are logged and returned, but the
// in-memory state change stands.
func (s *Session) Dispatch(cmd Command) (Result, error) {
	h, ok := handlers[cmd.Kind]
	if !ok {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownCommand, cmd.Kind)
	}
	return h(s, cmd)
}

// ReloadSettings re-reads the theme and background from the store, picking
// up writes made by another process. It reports whether anything changed.
func (s *Session) ReloadSettings() bool {
	prev := s.settings
	s.loadSettings()
	if s.settings != prev {
		s.log.Debug("settings reloaded", "dark", s.settings.Dark, "background", string(s.settings.Background))
		return true
	}
	return false
}

func (s *Session) loadSettings() {
	v, _ := s.store.Get(store.KeyDarkMode)
	s.settings.Dark = v == "true"

	s.settings.Background = BackgroundNone
	if v, ok := s.store.Get(store.KeyBackground); ok && v != "" {
		s.settings.Background = Background(v)
	}
}

func (s *Session) applyFormat(cmd Command) (Result, error) {
	sel, ok := s.buf.Selection()
	if !ok {
		return Result{}, nil
	}
	before := s.buf.Text()
	res, ok := format.Apply(before, sel, cmd.Format)
	if !ok {
		return Result{}, nil
	}

	s.hist.Record(before)
	s.buf.SetText(res.Text)
	s.buf.SetCursor(res.Inserted.End)

	undo, redo := s.hist.Depth()
	s.log.Debug("format applied", "format", string(cmd.Format), "undo", undo, "redo", redo)
	return s.contentChanged()
}

func (s *Session) undo(Command) (Result, error) {
	prev, ok := s.hist.Undo(s.buf.Text())
	if !ok {
		return Result{}, nil
	}
	s.buf.SetText(prev)
	s.log.Debug("undo")
	return s.contentChanged()
}

func (s *Session) redo(Command) (Result, error) {
	next, ok := s.hist.Redo(s.buf.Text())
	if !ok {
		return Result{}, nil
	}
	s.buf.SetText(next)
	s.log.Debug("redo")
	return s.contentChanged()
}

func (s *Session) toggleTheme(Command) (Result, error) {
	s.settings.Dark = !s.settings.Dark
	return Result{Settings: true}, s.persist(store.KeyDarkMode, strconv.FormatBool(s.settings.Dark))
}

func (s *Session) toggleBackground(Command) (Result, error) {
	s.settings.Background = s.settings.Background.Next()
	return Result{Settings: true}, s.persist(store.KeyBackground, string(s.settings.Background))
}

func (s *Session) switchFolder(cmd Command) (Result, error) {
	s.settings.Folder = cmd.Folder
	return Result{Settings: true}, s.persist(store.KeyFolder, cmd.Folder)
}

func (s *Session) showSettings(Command) (Result, error) {
	return Result{Summary: s.settings.Summary()}, nil
}

func (s *Session) input(Command) (Result, error) {
	return s.contentChanged()
}

func (s *Session) flush(Command) (Result, error) {
	return Result{}, s.persist(store.KeyContent, s.buf.Text())
}

// contentChanged persists the document and notifies the listener.
func (s *Session) contentChanged() (Result, error) {
	text := s.buf.Text()
	err := s.persist(store.KeyContent, text)
	if s.onChange != nil {
		s.onChange(ChangeEvent{
			Version:    s.buf.Version(),
			Text:       text,
			Characters: grapheme.Count(text),
			HTML:       markdown.Render(text),
		})
	}
	return Result{Changed: true}, err
}

func (s *Session) persist(key, value string) error {
	if err := s.store.Set(key, value); err != nil {
		s.log.Error("store write failed", "key", key, "err", err)
		return fmt.Errorf("persisting %s: %w", key, err)
	}
	return nil
}
