package browse

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/glabrego/gameshelf/internal/card"
	"github.com/glabrego/gameshelf/internal/catalog"
	"github.com/glabrego/gameshelf/internal/filter"
)

const (
	LoadingText = "Loading games…"
	FailureText = "Could not load games.json."
)

type Phase int

const (
	Loading Phase = iota
	Ready
	LoadFailed
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case LoadFailed:
		return "load-failed"
	default:
		return "phase(" + strconv.Itoa(int(p)) + ")"
	}
}

// CatalogLoader is satisfied by catalog.Loader and app.Service.
type CatalogLoader interface {
	Load(ctx context.Context) (catalog.Catalog, error)
}

// Controller owns the filter state and re-renders the target after every
// event once the catalog is loaded.
type Controller struct {
	target Target
	logger *slog.Logger

	phase   Phase
	state   filter.State
	catalog catalog.Catalog
	tags    []string
	visible []catalog.Game
}

func New(target Target, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{
		target: target,
		logger: logger,
		phase:  Loading,
		state:  filter.DefaultState(),
	}
	target.SetText(SlotLoading, LoadingText)
	target.SetVisible(SlotLoading, true)
	target.SetVisible(SlotGrid, false)
	target.SetVisible(SlotEmpty, false)
	return c
}

func (c *Controller) Phase() Phase             { return c.phase }
func (c *Controller) State() filter.State      { return c.state }
func (c *Controller) Tags() []string           { return c.tags }
func (c *Controller) Visible() []catalog.Game  { return c.visible }
func (c *Controller) Catalog() catalog.Catalog { return c.catalog }

// Start loads the catalog synchronously and dispatches the outcome.
func (c *Controller) Start(ctx context.Context, loader CatalogLoader) error {
	cat, err := loader.Load(ctx)
	if err != nil {
		c.Failed(err)
		return err
	}
	c.Loaded(cat)
	return nil
}

// Loaded moves a loading controller to Ready and performs the first render.
// It is ignored in any other phase.
func (c *Controller) Loaded(cat catalog.Catalog) {
	if c.phase != Loading {
		return
	}
	c.catalog = cat
	c.tags = catalog.TagVocabulary(cat)
	if tb, ok := c.target.(TagBuilder); ok {
		tb.BuildTags(c.tags)
	}
	c.target.SetVisible(SlotLoading, false)
	c.target.SetVisible(SlotGrid, true)
	c.phase = Ready
	c.logger.Info("catalog loaded", "games", len(cat.Games), "tags", len(c.tags))
	c.render()
}

// Failed is terminal: the loading slot shows the failure text and nothing is
// rendered afterwards.
func (c *Controller) Failed(err error) {
	if c.phase != Loading {
		return
	}
	c.phase = LoadFailed
	c.target.SetText(SlotLoading, FailureText)
	c.logger.Error("load catalog failed", "err", err)
}

func (c *Controller) SetQuery(query string) {
	c.state = c.state.WithQuery(query)
	c.render()
}

func (c *Controller) ToggleTag(tag string) {
	c.state = c.state.ToggleTag(tag)
	c.render()
}

// SelectCategory selects a category segment; "" selects all.
func (c *Controller) SelectCategory(category string) {
	c.state = c.state.WithCategory(category)
	c.render()
}

// ClearSearch empties the query and the search field.
func (c *Controller) ClearSearch() {
	c.state = c.state.WithQuery("")
	c.target.SetText(SlotQuery, "")
	c.render()
}

// Reset restores the default filters and empties the search field.
func (c *Controller) Reset() {
	c.state = filter.DefaultState()
	c.target.SetText(SlotQuery, "")
	c.render()
}

func (c *Controller) render() {
	if c.phase != Ready {
		return
	}

	c.visible = filter.VisibleEntries(c.catalog.Games, c.state)
	n := len(c.visible)

	c.target.SetText(SlotCount, CountLabel(n))
	c.target.SetText(SlotUpdated, UpdatedLabel(c.catalog.UpdatedUTC))
	if s, ok := c.target.(SelectionSyncer); ok {
		s.SyncSelection(c.state.Category, c.state.Tag)
	}

	c.target.Clear()
	for _, g := range c.visible {
		c.target.AppendCard(card.Project(g))
	}
	c.target.SetVisible(SlotGrid, n > 0)
	c.target.SetVisible(SlotEmpty, n == 0)
}

// CountLabel is the result counter text.
func CountLabel(n int) string {
	if n == 1 {
		return "1 game"
	}
	return strconv.Itoa(n) + " games"
}

var updatedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

// UpdatedLabel formats the catalog timestamp as its UTC date. Timestamps
// without a zone are read as UTC. Empty or unparseable input yields "".
func UpdatedLabel(iso string) string {
	if iso == "" {
		return ""
	}
	for _, layout := range updatedLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return "Updated: " + t.UTC().Format(time.DateOnly)
		}
	}
	return ""
}
