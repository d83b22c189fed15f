package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/marknote/editor"
	"github.com/iw2rmb/marknote/internal/logging"
	"github.com/iw2rmb/marknote/session"
	"github.com/iw2rmb/marknote/store"
)

type app struct {
	editor editor.Model
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.editor.View() }

func runEditor(ctx context.Context, opts *rootOptions) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	st, err := store.Open(cfg.StorePath)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	changed, err := st.Watch(ctx)
	if err != nil {
		// The editor still works, it just won't see other writers.
		log.Warn("store watch unavailable", "path", st.Path(), "err", err)
	}

	sess := session.New(st, session.WithLogger(log))
	m := editor.New(editor.Config{
		Session:      sess,
		ShowLineNums: cfg.LineNumbers,
		Autosave:     cfg.Autosave(),
		Folders:      cfg.Folders,
		StoreChanged: changed,
	})

	p := tea.NewProgram(app{editor: m},
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, runErr := p.Run()

	if _, err := sess.Dispatch(session.Flush()); err != nil {
		log.Error("final flush failed", "err", err)
		if runErr == nil {
			return err
		}
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("running editor: %w", runErr)
	}
	return nil
}
