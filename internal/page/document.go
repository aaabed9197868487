package page

import (
	"html/template"
	"strings"

	"github.com/glabrego/gameshelf/internal/browse"
	"github.com/glabrego/gameshelf/internal/card"
	"github.com/glabrego/gameshelf/internal/filter"
	"github.com/glabrego/gameshelf/internal/textutil"
)

const DefaultTitle = "Games"

// Document is an in-memory HTML page the browse controller renders into.
type Document struct {
	Title string

	texts   map[browse.Slot]string
	visible map[browse.Slot]bool
	cards   []card.View
	tags    []string

	category string
	tag      string
}

func NewDocument(title string) *Document {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	return &Document{
		Title:    title,
		texts:    make(map[browse.Slot]string),
		visible:  make(map[browse.Slot]bool),
		category: filter.CategoryAll,
	}
}

func (d *Document) Clear() { d.cards = nil }

func (d *Document) AppendCard(v card.View) { d.cards = append(d.cards, v) }

func (d *Document) SetText(slot browse.Slot, text string) { d.texts[slot] = text }

func (d *Document) SetVisible(slot browse.Slot, visible bool) { d.visible[slot] = visible }

func (d *Document) BuildTags(tags []string) {
	d.tags = append([]string(nil), tags...)
}

func (d *Document) SyncSelection(category, tag string) {
	d.category = category
	d.tag = tag
}

func (d *Document) Cards() []card.View { return d.cards }

// pageData is the value the page shell template executes against.
type pageData struct {
	Title         string
	Count         string
	Updated       string
	LoadingText   string
	LoadingHidden bool
	EmptyHidden   bool
	GridHidden    bool
	Search        template.HTML
	Segments      template.HTML
	Tags          template.HTML
	Grid          template.HTML
}

func (d *Document) data() pageData {
	return pageData{
		Title:         d.Title,
		Count:         d.texts[browse.SlotCount],
		Updated:       d.texts[browse.SlotUpdated],
		LoadingText:   d.texts[browse.SlotLoading],
		LoadingHidden: !d.visible[browse.SlotLoading],
		EmptyHidden:   !d.visible[browse.SlotEmpty],
		GridHidden:    !d.visible[browse.SlotGrid],
		Search:        template.HTML(d.searchMarkup()),
		Segments:      template.HTML(d.segmentsMarkup()),
		Tags:          template.HTML(d.tagsMarkup()),
		Grid:          template.HTML(d.gridMarkup()),
	}
}

func (d *Document) searchMarkup() string {
	return `<input id="q" class="pgSearchInput" type="search" placeholder="Search games" autocomplete="off" value="` +
		textutil.EscapeMarkup(d.texts[browse.SlotQuery]) + `" />`
}

func (d *Document) segmentsMarkup() string {
	var b strings.Builder
	for _, cat := range filter.Categories {
		label := card.CategoryLabel(cat)
		if cat == filter.CategoryAll {
			label = "All"
		}
		b.WriteString(`<button type="button" class="` + onClass("segBtn", cat == d.category) +
			`" data-cat="` + textutil.EscapeMarkup(cat) + `">` + textutil.EscapeMarkup(label) + `</button>`)
	}
	return b.String()
}

func (d *Document) tagsMarkup() string {
	var b strings.Builder
	for _, tag := range d.tags {
		esc := textutil.EscapeMarkup(tag)
		b.WriteString(`<button type="button" class="` + onClass("pgTag", d.tag != "" && tag == d.tag) +
			`" data-tag="` + esc + `">` + esc + `</button>`)
	}
	return b.String()
}

func (d *Document) gridMarkup() string {
	parts := make([]string, 0, len(d.cards))
	for _, v := range d.cards {
		parts = append(parts, v.Markup())
	}
	return strings.Join(parts, "\n")
}

func onClass(base string, on bool) string {
	if on {
		return base + " on"
	}
	return base
}
