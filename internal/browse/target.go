package browse

import "github.com/glabrego/gameshelf/internal/card"

// Slot names one addressable element of a render target.
type Slot string

const (
	SlotLoading Slot = "loading"
	SlotGrid    Slot = "grid"
	SlotEmpty   Slot = "empty"
	SlotCount   Slot = "count"
	SlotUpdated Slot = "updated"
	SlotQuery   Slot = "query"
)

// Target is the surface the controller renders into.
type Target interface {
	// Clear removes every card from the grid.
	Clear()
	AppendCard(card.View)
	SetText(Slot, string)
	SetVisible(Slot, bool)
}

// TagBuilder is implemented by targets that show one control per tag.
type TagBuilder interface {
	BuildTags(tags []string)
}

// SelectionSyncer is implemented by targets that mark the active category
// segment and tag control.
type SelectionSyncer interface {
	SyncSelection(category, tag string)
}
