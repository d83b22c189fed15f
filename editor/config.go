package editor

import (
	"time"

	"github.com/iw2rmb/marknote/session"
)

// DefaultAutosave is used when Config.Autosave is zero.
const DefaultAutosave = 10 * time.Second

// Config configures the editor Model.
type Config struct {
	// Session is required. The model dispatches every edit and command to it.
	Session *session.Session

	// KeyMap falls back to DefaultKeyMap when left zero.
	KeyMap KeyMap
	// Themes falls back to DefaultThemes when nil.
	Themes *Themes

	ShowLineNums bool

	// Autosave is the period of the background flush. Negative disables it.
	Autosave time.Duration

	// Folders lists the folder bar entries. Empty means DefaultFolders.
	Folders []string

	// Clipboard is optional. Without it copy, cut and paste are no-ops.
	Clipboard Clipboard

	// StoreChanged, when set, delivers a value whenever the backing store
	// was changed by another writer.
	StoreChanged <-chan struct{}
}

// DefaultFolders is the folder bar used when Config.Folders is empty.
var DefaultFolders = []string{session.DefaultFolder, "personal", "work", "unread"}

func (c Config) normalize() Config {
	if len(c.KeyMap.Undo.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Themes == nil {
		t := DefaultThemes()
		c.Themes = &t
	}
	if c.Autosave == 0 {
		c.Autosave = DefaultAutosave
	}
	if len(c.Folders) == 0 {
		c.Folders = append([]string(nil), DefaultFolders...)
	}
	return c
}

// Clipboard is the host's system clipboard. Read and write failures are
// shown on the status line.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
