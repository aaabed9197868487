package view

import (
	"fmt"
	"strings"

	"github.com/glabrego/gameshelf/internal/card"
	"github.com/glabrego/gameshelf/internal/filter"
	"github.com/glabrego/gameshelf/internal/textutil"
	tuitheme "github.com/glabrego/gameshelf/internal/tui/theme"
)

const EmptyText = "No games match these filters."

func Toolbar(searching bool) string {
	if searching {
		return "type to filter | enter/esc: done | ctrl+c: quit"
	}
	return "j/k move | enter play | g guide | / search | tab category | h/l space tags | x clear | r reset | ? help | q quit"
}

func HelpLines() []string {
	return []string{
		"Keys",
		"",
		"/              focus search (enter/esc leaves)",
		"x              clear search",
		"r              reset all filters",
		"tab/shift+tab  next/previous category",
		"1-5            All, Daily, Quick, Skills, Soon",
		"h/l, left/right move tag cursor",
		"space/t        toggle tag under cursor",
		"j/k, up/down   move between cards",
		"o/enter        play selected game",
		"g              open how-to-play guide",
		"y              copy play URL",
		"?              toggle help",
		"q              quit",
	}
}

func Header(title, count, updated string, width int, th tuitheme.Theme) string {
	left := th.Title.Render(textutil.TerminalSafe(title))
	right := th.Count.Render(count)
	if updated != "" {
		right += "  " + th.MetaLabel.Render(updated)
	}
	gap := width - visibleLen(left) - visibleLen(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// SegmentLabel is the label of a category segment.
func SegmentLabel(category string) string {
	if category == filter.CategoryAll {
		return "All"
	}
	return card.CategoryLabel(category)
}

func Segments(categories []string, active string, th tuitheme.Theme) string {
	parts := make([]string, 0, len(categories))
	for i, category := range categories {
		label := fmt.Sprintf("%d %s", i+1, SegmentLabel(category))
		if category == active {
			parts = append(parts, th.SegmentOn.Render(label))
			continue
		}
		parts = append(parts, th.Segment.Render(label))
	}
	return strings.Join(parts, " ")
}

// TagRow renders the tag controls, wrapping to width. The active tag is
// marked with a dot and the tag under the cursor is underlined.
func TagRow(tags []string, active string, cursor, width int, th tuitheme.Theme) string {
	if len(tags) == 0 {
		return th.MetaLabel.Render("no tags")
	}
	var lines []string
	var line string
	lineLen := 0
	for i, tag := range tags {
		safe := textutil.TerminalSafe(tag)
		label := "○ " + safe
		style := th.Tag
		if tag == active {
			label = "● " + safe
			style = th.TagOn
		}
		if i == cursor {
			style = style.Inherit(th.TagCursor)
		}
		rendered := style.Render(label)
		n := visibleLen(label)
		if lineLen > 0 && width > 0 && lineLen+2+n > width {
			lines = append(lines, line)
			line, lineLen = "", 0
		}
		if lineLen > 0 {
			line += "  "
			lineLen += 2
		}
		line += rendered
		lineLen += n
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

func StatusLine(loading, hasWarning bool, status string, th tuitheme.Theme) string {
	state := "idle"
	if loading {
		state = "loading"
	}
	if hasWarning {
		state = "warning"
	}
	main := "Ready"
	if status != "" {
		main = textutil.TerminalSafe(status)
	}
	stateLabel := th.StateIdle.Render("state")
	switch state {
	case "warning":
		stateLabel = th.StateWarn.Render("state")
	case "loading":
		stateLabel = th.StateLoad.Render("state")
	}
	return fmt.Sprintf("%s: %s | %s", stateLabel, state, th.MetaValue.Render(main))
}
