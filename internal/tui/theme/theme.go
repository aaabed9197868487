package theme

import (
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title      lipgloss.Style
	Section    lipgloss.Style
	Count      lipgloss.Style
	MetaLabel  lipgloss.Style
	MetaValue  lipgloss.Style
	StateIdle  lipgloss.Style
	StateWarn  lipgloss.Style
	StateLoad  lipgloss.Style
	ActiveLine lipgloss.Style

	Segment   lipgloss.Style
	SegmentOn lipgloss.Style
	Tag       lipgloss.Style
	TagOn     lipgloss.Style
	TagCursor lipgloss.Style

	CardTitle    lipgloss.Style
	CardSubtitle lipgloss.Style
	CardBody     lipgloss.Style
	Pill         lipgloss.Style
	ChipTag      lipgloss.Style
	Play         lipgloss.Style
	Disabled     lipgloss.Style
	Guide        lipgloss.Style

	accents       map[string]lipgloss.Color
	defaultAccent lipgloss.Color
	border        lipgloss.Color
}

func Default() Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpPeach := lipgloss.Color("#fab387")
	cpYellow := lipgloss.Color("#f9e2af")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpBlue := lipgloss.Color("#89b4fa")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext0 := lipgloss.Color("#a6adc8")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")
	cpSurface1 := lipgloss.Color("#45475a")

	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		Section:    lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		Count:      lipgloss.NewStyle().Foreground(cpYellow).Bold(true),
		MetaLabel:  lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue:  lipgloss.NewStyle().Foreground(cpSubtext1),
		StateIdle:  lipgloss.NewStyle().Foreground(cpGreen),
		StateWarn:  lipgloss.NewStyle().Foreground(cpRed),
		StateLoad:  lipgloss.NewStyle().Foreground(cpPeach),
		ActiveLine: lipgloss.NewStyle().Background(cpSurface0).Foreground(cpText),

		Segment:   lipgloss.NewStyle().Foreground(cpSubtext0).Padding(0, 1),
		SegmentOn: lipgloss.NewStyle().Foreground(cpLavender).Background(cpSurface0).Bold(true).Padding(0, 1),
		Tag:       lipgloss.NewStyle().Foreground(cpSubtext0),
		TagOn:     lipgloss.NewStyle().Foreground(cpTeal).Bold(true),
		TagCursor: lipgloss.NewStyle().Underline(true),

		CardTitle:    lipgloss.NewStyle().Bold(true).Foreground(cpText),
		CardSubtitle: lipgloss.NewStyle().Foreground(cpSubtext1),
		CardBody:     lipgloss.NewStyle().Foreground(cpSubtext0),
		Pill:         lipgloss.NewStyle().Foreground(cpLavender).Background(cpSurface0).Padding(0, 1),
		ChipTag:      lipgloss.NewStyle().Foreground(cpTeal),
		Play:         lipgloss.NewStyle().Foreground(cpGreen).Bold(true),
		Disabled:     lipgloss.NewStyle().Foreground(cpOverlay1).Italic(true),
		Guide:        lipgloss.NewStyle().Foreground(cpBlue),

		accents: map[string]lipgloss.Color{
			"daily":  cpPeach,
			"quick":  cpBlue,
			"skills": cpGreen,
			"soon":   cpOverlay1,
		},
		defaultAccent: cpLavender,
		border:        cpSurface1,
	}
}

// Accent is the color of a category's card bar and border.
func (t Theme) Accent(category string) lipgloss.Color {
	if c, ok := t.accents[category]; ok {
		return c
	}
	return t.defaultAccent
}

// CardBox frames one card. The active card gets a thick border in its
// category accent.
func (t Theme) CardBox(category string, active bool, width int) lipgloss.Style {
	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.border).
		BorderLeft(true).BorderRight(true).BorderTop(true).BorderBottom(true).
		Padding(0, 1)
	if active {
		style = style.BorderStyle(lipgloss.ThickBorder()).BorderForeground(t.Accent(category))
	}
	if width > 0 {
		style = style.Width(width)
	}
	return style
}

func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return line
	}
	return t.ActiveLine.Render(line)
}
