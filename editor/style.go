package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering for one theme.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	Toolbar        lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Folder         lipgloss.Style
	FolderActive   lipgloss.Style
	Divider        lipgloss.Style
	Status         lipgloss.Style
	Error          lipgloss.Style
	Modal          lipgloss.Style

	Preview PreviewStyle

	// Band is the palette cycled by the animated background strip.
	Band []lipgloss.Color
}

// PreviewStyle styles the rendered markup, one entry per tag.
type PreviewStyle struct {
	Text        lipgloss.Style
	H1, H2, H3  lipgloss.Style
	Strong      lipgloss.Style
	Em          lipgloss.Style
	Strike      lipgloss.Style
	Code        lipgloss.Style
	Quote       lipgloss.Style
	Item        lipgloss.Style
	Placeholder lipgloss.Style

	QuoteMark string
	Bullet    string
}

// Themes pairs the light and dark variants.
type Themes struct {
	Light Style
	Dark  Style
}

func DefaultThemes() Themes {
	return Themes{Light: LightStyle(), Dark: DarkStyle()}
}

func (t Themes) pick(dark bool) Style {
	if dark {
		return t.Dark
	}
	return t.Light
}

func LightStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Bold(true),
		Text:          lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("153")),
		Cursor:        lipgloss.NewStyle().Reverse(true),

		Toolbar:        lipgloss.NewStyle().Background(lipgloss.Color("254")),
		Button:         lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("252")).Padding(0, 1),
		ButtonDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("248")).Background(lipgloss.Color("254")).Padding(0, 1),
		Folder:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
		FolderActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true).Underline(true).Padding(0, 1),
		Divider:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Status:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:          lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("25")).
			Foreground(lipgloss.Color("235")).
			Padding(1, 2),

		Preview: PreviewStyle{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
			H1:          lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true).Underline(true),
			H2:          lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
			H3:          lipgloss.NewStyle().Foreground(lipgloss.Color("31")).Bold(true),
			Strong:      lipgloss.NewStyle().Bold(true),
			Em:          lipgloss.NewStyle().Italic(true),
			Strike:      lipgloss.NewStyle().Strikethrough(true),
			Code:        lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Background(lipgloss.Color("255")),
			Quote:       lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Italic(true),
			Item:        lipgloss.NewStyle(),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("248")).Italic(true),
			QuoteMark:   "▌ ",
			Bullet:      "• ",
		},

		Band: []lipgloss.Color{"153", "117", "81", "45", "39", "33", "39", "45", "81", "117"},
	}
}

func DarkStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),

		Toolbar:        lipgloss.NewStyle().Background(lipgloss.Color("235")),
		Button:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")).Padding(0, 1),
		ButtonDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Background(lipgloss.Color("235")).Padding(0, 1),
		Folder:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		FolderActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true).Underline(true).Padding(0, 1),
		Divider:        lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Status:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Error:          lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("117")).
			Foreground(lipgloss.Color("252")).
			Padding(1, 2),

		Preview: PreviewStyle{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			H1:          lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true).Underline(true),
			H2:          lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
			H3:          lipgloss.NewStyle().Foreground(lipgloss.Color("110")).Bold(true),
			Strong:      lipgloss.NewStyle().Bold(true),
			Em:          lipgloss.NewStyle().Italic(true),
			Strike:      lipgloss.NewStyle().Strikethrough(true),
			Code:        lipgloss.NewStyle().Foreground(lipgloss.Color("216")).Background(lipgloss.Color("236")),
			Quote:       lipgloss.NewStyle().Foreground(lipgloss.Color("246")).Italic(true),
			Item:        lipgloss.NewStyle(),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Italic(true),
			QuoteMark:   "▌ ",
			Bullet:      "• ",
		},

		Band: []lipgloss.Color{"17", "18", "19", "20", "21", "57", "21", "20", "19", "18"},
	}
}
