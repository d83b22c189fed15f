package editor

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// previewTag matches the markup produced by the markdown package. Any other
// angle-bracket text is painted literally.
var previewTag = regexp.MustCompile(`<(/?)(h1|h2|h3|strong|em|s|code|blockquote|li|p|br)>`)

// Paint turns rendered markup into styled terminal lines. Lines are wrapped
// at width when width is positive.
func Paint(markup string, st PreviewStyle, width int) string {
	var (
		lines []string
		line  strings.Builder
		stack []string
	)
	write := func(s string) {
		if s != "" {
			line.WriteString(composeStyle(st, stack).Render(s))
		}
	}
	newline := func() {
		lines = append(lines, line.String())
		line.Reset()
	}

	pos := 0
	for _, loc := range previewTag.FindAllStringSubmatchIndex(markup, -1) {
		write(markup[pos:loc[0]])
		pos = loc[1]

		closing := loc[3] > loc[2]
		tag := markup[loc[4]:loc[5]]
		switch {
		case tag == "br":
			newline()
		case closing:
			stack = popTag(stack, tag)
		default:
			stack = append(stack, tag)
			switch tag {
			case "li":
				write(st.Bullet)
			case "blockquote":
				write(st.QuoteMark)
			}
		}
	}
	write(markup[pos:])
	newline()

	if width > 0 {
		wrap := lipgloss.NewStyle().Width(width)
		for i, l := range lines {
			lines[i] = wrap.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}

// popTag removes the innermost open tag, along with anything opened after
// it. A close with no matching open is ignored.
func popTag(stack []string, tag string) []string {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == tag {
			return stack[:i]
		}
	}
	return stack
}

func composeStyle(st PreviewStyle, stack []string) lipgloss.Style {
	s := st.Text
	for _, tag := range stack {
		s = tagStyle(st, tag).Inherit(s)
	}
	return s
}

func tagStyle(st PreviewStyle, tag string) lipgloss.Style {
	switch tag {
	case "h1":
		return st.H1
	case "h2":
		return st.H2
	case "h3":
		return st.H3
	case "strong":
		return st.Strong
	case "em":
		return st.Em
	case "s":
		return st.Strike
	case "code":
		return st.Code
	case "blockquote":
		return st.Quote
	case "li":
		return st.Item
	case "p":
		return st.Placeholder
	}
	return lipgloss.NewStyle()
}
