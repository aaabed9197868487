package view

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/glabrego/gameshelf/internal/card"
	"github.com/glabrego/gameshelf/internal/textutil"
	tuitheme "github.com/glabrego/gameshelf/internal/tui/theme"
)

var reANSICodes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

type CardParams struct {
	View   card.View
	Width  int
	Active bool
}

// RenderCard draws one card as a bordered box Width columns wide.
func RenderCard(p CardParams, th tuitheme.Theme) string {
	v := terminalView(p.View)
	inner := p.Width - 4
	if inner < 10 {
		inner = 10
	}

	bar := lipgloss.NewStyle().Foreground(th.Accent(v.Accent)).Render("▌")
	title := strings.TrimSpace(v.Name)
	if title == "" {
		title = "(untitled)"
	}
	lines := []string{bar + " " + th.CardTitle.Render(truncateRunes(title, inner-2))}
	if sub := strings.TrimSpace(v.Subtitle); sub != "" {
		lines = append(lines, "  "+th.CardSubtitle.Render(truncateRunes(sub, inner-2)))
	}
	if desc := strings.TrimSpace(v.Description); desc != "" {
		for _, l := range strings.Split(wordwrap.String(desc, inner), "\n") {
			lines = append(lines, th.CardBody.Render(l))
		}
	}

	if pills := v.Pills(); len(pills) > 0 {
		rendered := make([]string, 0, len(pills))
		for _, pill := range pills {
			rendered = append(rendered, th.Pill.Render(pill))
		}
		lines = append(lines, strings.Join(rendered, " "))
	}
	if len(v.Tags) > 0 {
		chips := make([]string, 0, len(v.Tags))
		for _, tag := range v.Tags {
			chips = append(chips, th.ChipTag.Render("#"+tag))
		}
		lines = append(lines, strings.Join(chips, " "))
	}

	var cta string
	if v.ComingSoon {
		cta = th.Disabled.Render("◌ " + card.ComingSoonCTA)
	} else {
		cta = th.Play.Render("▶ " + card.PlayCTA)
	}
	if v.GuideURL != "" {
		cta += "   " + th.Guide.Render("? "+card.GuideCTA)
	}
	lines = append(lines, cta)

	return th.CardBox(v.Accent, p.Active, p.Width-2).Render(strings.Join(lines, "\n"))
}

// terminalView strips control runes from every catalog-sourced field.
func terminalView(v card.View) card.View {
	v.Name = textutil.TerminalSafe(v.Name)
	v.Subtitle = textutil.TerminalSafe(v.Subtitle)
	v.Description = textutil.TerminalSafe(v.Description)
	v.CategoryLabel = textutil.TerminalSafe(v.CategoryLabel)
	v.TimeLabel = textutil.TerminalSafe(v.TimeLabel)
	v.ModesLabel = textutil.TerminalSafe(v.ModesLabel)
	tags := make([]string, len(v.Tags))
	for i, tag := range v.Tags {
		tags[i] = textutil.TerminalSafe(tag)
	}
	v.Tags = tags
	return v
}

func truncateRunes(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return strings.Repeat(".", maxLen)
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}

func visibleLen(s string) int {
	return utf8.RuneCountInString(stripANSIText(s))
}

func stripANSIText(s string) string {
	return reANSICodes.ReplaceAllString(s, "")
}
