package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/marknote/session"
)

var waveGlyphs = []rune("▁▂▃▄▅▆▇█▇▆▅▄▃▂")

const dotSpacing = 6

// band renders one frame of the animated background strip. It returns ""
// for a static background.
func band(bg session.Background, frame, width int, palette []lipgloss.Color) string {
	if !bg.Animated() || width <= 0 {
		return ""
	}
	color := func(i int) lipgloss.Style {
		if len(palette) == 0 {
			return lipgloss.NewStyle()
		}
		return lipgloss.NewStyle().Foreground(palette[((i%len(palette))+len(palette))%len(palette)])
	}

	var sb strings.Builder
	for x := 0; x < width; x++ {
		switch bg {
		case session.GradientWave:
			sb.WriteString(color(x + frame).Render("▀"))
		case session.AnimatedDots:
			if (x+frame)%dotSpacing == 0 {
				sb.WriteString(color(x / dotSpacing).Render("•"))
			} else {
				sb.WriteByte(' ')
			}
		case session.Waves:
			g := waveGlyphs[(x+frame)%len(waveGlyphs)]
			sb.WriteString(color(frame).Render(string(g)))
		default:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
