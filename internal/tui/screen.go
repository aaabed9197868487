package tui

import (
	"github.com/glabrego/gameshelf/internal/browse"
	"github.com/glabrego/gameshelf/internal/card"
	"github.com/glabrego/gameshelf/internal/filter"
)

// screen is the terminal render target. The model draws it in View.
type screen struct {
	cards   []card.View
	texts   map[browse.Slot]string
	visible map[browse.Slot]bool
	tags    []string

	category string
	tag      string

	// queryReset is set when the controller rewrites the search field, so
	// the model can copy it into the text input.
	queryReset bool
}

func newScreen() *screen {
	return &screen{
		texts:    make(map[browse.Slot]string),
		visible:  make(map[browse.Slot]bool),
		category: filter.CategoryAll,
	}
}

func (s *screen) Clear() { s.cards = nil }

func (s *screen) AppendCard(v card.View) { s.cards = append(s.cards, v) }

func (s *screen) SetText(slot browse.Slot, text string) {
	s.texts[slot] = text
	if slot == browse.SlotQuery {
		s.queryReset = true
	}
}

func (s *screen) SetVisible(slot browse.Slot, visible bool) { s.visible[slot] = visible }

func (s *screen) BuildTags(tags []string) {
	s.tags = append([]string(nil), tags...)
}

func (s *screen) SyncSelection(category, tag string) {
	s.category = category
	s.tag = tag
}
