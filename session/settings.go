package session

import "fmt"

// Background names the decorative animation behind the editor.
type Background string

const (
	BackgroundNone Background = "none"
	GradientWave   Background = "gradient-wave"
	AnimatedDots   Background = "animated-dots"
	Waves          Background = "waves"
)

var backgroundCycle = []Background{BackgroundNone, GradientWave, AnimatedDots, Waves}

// Backgrounds returns the toggle cycle in order.
func Backgrounds() []Background {
	out := make([]Background, len(backgroundCycle))
	copy(out, backgroundCycle)
	return out
}

// Next returns the background after b in the cycle, wrapping around. A value
// outside the cycle advances to the first entry.
func (b Background) Next() Background {
	i := -1
	for j, v := range backgroundCycle {
		if v == b {
			i = j
			break
		}
	}
	return backgroundCycle[(i+1)%len(backgroundCycle)]
}

// Animated reports whether b is a known, visible animation.
func (b Background) Animated() bool {
	for _, v := range backgroundCycle[1:] {
		if v == b {
			return true
		}
	}
	return false
}

// DefaultFolder is selected when a session starts.
const DefaultFolder = "all"

// Settings is the display state of a session.
type Settings struct {
	Dark       bool
	Background Background
	Folder     string
}

// Summary renders settings the way the settings dialog shows them.
func (s Settings) Summary() string {
	return fmt.Sprintf("Settings:\n- Current Folder: %s\n- Dark Mode: %t\n- Background Animation: %s",
		s.Folder, s.Dark, s.Background)
}
