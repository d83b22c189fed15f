package editor

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const animInterval = 120 * time.Millisecond

type (
	autosaveMsg     struct{}
	animMsg         struct{}
	storeChangedMsg struct{}
)

func autosaveTick(d time.Duration) tea.Cmd {
	if d <= 0 {
		return nil
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return autosaveMsg{} })
}

func animTick() tea.Cmd {
	return tea.Tick(animInterval, func(time.Time) tea.Msg { return animMsg{} })
}

// waitStore blocks on ch and reports one external store change. A closed
// channel ends the wait loop.
func waitStore(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}
