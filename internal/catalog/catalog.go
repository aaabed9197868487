package catalog

import (
	"sort"
	"strings"
)

// Catalog is the decoded games document. It is fetched once per run and not
// modified afterwards.
type Catalog struct {
	UpdatedUTC string   `json:"updated_utc,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Games      []Game   `json:"games"`
}

// Game is one catalog entry. Absent strings decode as "" and an absent play
// time decodes as nil.
type Game struct {
	Name          string   `json:"name,omitempty"`
	Slug          string   `json:"slug,omitempty"`
	Category      string   `json:"category,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Description   string   `json:"description,omitempty"`
	Short         string   `json:"short,omitempty"`
	Subtitle      string   `json:"subtitle,omitempty"`
	Modes         []string `json:"modes,omitempty"`
	TimeToPlaySec *float64 `json:"time_to_play_sec,omitempty"`
	URLPlay       string   `json:"url_play,omitempty"`
	URLGuide      string   `json:"url_guide,omitempty"`
}

const CategorySoon = "soon"

// ComingSoon reports whether the game has no playable link yet. Either a
// missing or blank url_play or the soon category is enough.
func (g Game) ComingSoon() bool {
	return g.Category == CategorySoon || strings.TrimSpace(g.URLPlay) == ""
}

// HasTag reports whether tag is one of the game's tags, compared exactly.
func (g Game) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// PlaySeconds returns the estimated play time, or 0 when it is absent.
func (g Game) PlaySeconds() float64 {
	if g.TimeToPlaySec == nil {
		return 0
	}
	return *g.TimeToPlaySec
}

// TagVocabulary returns the tags offered as filter controls: the declared
// list when it is non-empty, otherwise every game tag, de-duplicated and
// sorted.
func TagVocabulary(c Catalog) []string {
	if len(c.Tags) > 0 {
		out := make([]string, len(c.Tags))
		copy(out, c.Tags)
		return out
	}

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, g := range c.Games {
		for _, t := range g.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}
