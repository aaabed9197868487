package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	tuistate "github.com/glabrego/gameshelf/internal/tui/state"
)

// RenderGrid stacks pre-rendered cards and windows them around cursor so they
// fit in height lines.
func RenderGrid(cards []string, cursor, height int) string {
	if len(cards) == 0 {
		return ""
	}
	tallest := 1
	for _, c := range cards {
		if h := lipgloss.Height(c); h > tallest {
			tallest = h
		}
	}
	perPage := tuistate.CardsPerPage(height, tallest)
	start, end := tuistate.CenteredWindow(len(cards), cursor, perPage)
	return strings.Join(cards[start:end], "\n")
}
