package filter

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/glabrego/gameshelf/internal/catalog"
	"github.com/glabrego/gameshelf/internal/textutil"
)

const CategoryAll = "all"

// Categories is the fixed set of category segments, in display order.
var Categories = []string{CategoryAll, "daily", "quick", "skills", catalog.CategorySoon}

var categoryRanks = map[string]int{
	"daily":              1,
	"quick":              2,
	"skills":             3,
	catalog.CategorySoon: 4,
}

// State is the current category, tag and search selection. An empty Tag
// means no tag filter.
type State struct {
	Category string
	Tag      string
	Query    string
}

func DefaultState() State {
	return State{Category: CategoryAll}
}

// WithCategory selects a category. An empty category selects all.
func (s State) WithCategory(category string) State {
	if category == "" {
		category = CategoryAll
	}
	s.Category = category
	return s
}

// ToggleTag selects tag, or clears the tag filter when tag is already selected.
func (s State) ToggleTag(tag string) State {
	if s.Tag == tag {
		s.Tag = ""
	} else {
		s.Tag = tag
	}
	return s
}

func (s State) WithQuery(query string) State {
	s.Query = query
	return s
}

// CategoryRank orders known categories before unknown ones.
func CategoryRank(category string) int {
	if rank, ok := categoryRanks[category]; ok {
		return rank
	}
	return 99
}

// Matches reports whether the normalized query occurs in the game's searchable
// text. A blank query matches everything.
func Matches(g catalog.Game, query string) bool {
	q := textutil.Normalize(query)
	if q == "" {
		return true
	}
	haystack := strings.Join([]string{
		g.Name,
		g.Slug,
		g.Category,
		strings.Join(g.Tags, " "),
		g.Description,
	}, " ")
	return strings.Contains(textutil.Normalize(haystack), q)
}

// VisibleEntries sorts a copy of games by category rank then name and keeps
// the ones selected by st. The input slice is not modified.
func VisibleEntries(games []catalog.Game, st State) []catalog.Game {
	sorted := make([]catalog.Game, len(games))
	copy(sorted, games)

	col := collate.New(language.English)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := CategoryRank(sorted[i].Category), CategoryRank(sorted[j].Category)
		if ri != rj {
			return ri < rj
		}
		return col.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})

	out := make([]catalog.Game, 0, len(sorted))
	for _, g := range sorted {
		if st.Category != "" && st.Category != CategoryAll && g.Category != st.Category {
			continue
		}
		if st.Tag != "" && !g.HasTag(st.Tag) {
			continue
		}
		if !Matches(g, st.Query) {
			continue
		}
		out = append(out, g)
	}
	return out
}
