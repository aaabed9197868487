package card

import (
	"math"
	"strconv"
	"strings"

	"github.com/glabrego/gameshelf/internal/catalog"
)

const (
	maxTags       = 4
	separator     = " • "
	iconBase      = "https://numberglyph.com/logos/"
	FallbackIcon  = "https://numberglyph.com/logo-sigma.png"
	ComingSoonCTA = "Coming soon"
	PlayCTA       = "Play"
	GuideCTA      = "How to play"
)

var icons = map[string]string{
	"numberglyph":  iconBase + "numberglyph.svg",
	"opglyph":      iconBase + "opglyph.svg",
	"hieroglyph":   iconBase + "hieroglyph.svg",
	"connectglyph": iconBase + "connectglyph.svg",
	"focusglyph":   iconBase + "focusglyph.svg",
	"memoryglyph":  iconBase + "memoryglyph.svg",
	"multiglyph":   iconBase + "multiglyph.svg",
}

var categoryLabels = map[string]string{
	"daily":  "Daily",
	"quick":  "Quick",
	"skills": "Skills",
	"soon":   "Soon",
}

// View is the display model of one card. All fields are plain text; Markup
// does the escaping.
type View struct {
	Name        string
	Slug        string
	Accent      string
	IconURL     string
	Subtitle    string
	Description string

	CategoryLabel string
	TimeLabel     string
	ModesLabel    string
	Tags          []string

	ComingSoon bool
	PlayURL    string
	GuideURL   string
}

// Pills returns the meta pills in display order, skipping empty ones.
func (v View) Pills() []string {
	out := make([]string, 0, 3)
	for _, p := range []string{v.CategoryLabel, v.TimeLabel, v.ModesLabel} {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func Project(g catalog.Game) View {
	tags := g.Tags
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	tags = append([]string(nil), tags...)

	v := View{
		Name:          g.Name,
		Slug:          g.Slug,
		Accent:        g.Category,
		IconURL:       IconURL(g.Slug),
		Subtitle:      subtitle(g, tags),
		Description:   g.Description,
		CategoryLabel: CategoryLabel(g.Category),
		TimeLabel:     TimeLabel(g.PlaySeconds()),
		ModesLabel:    ModesLabel(g.Modes),
		Tags:          tags,
		ComingSoon:    g.ComingSoon(),
		GuideURL:      strings.TrimSpace(g.URLGuide),
	}
	if !v.ComingSoon {
		v.PlayURL = strings.TrimSpace(g.URLPlay)
	}
	return v
}

func IconURL(slug string) string {
	if u, ok := icons[slug]; ok {
		return u
	}
	return FallbackIcon
}

func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return category
}

// TimeLabel formats an estimated play time. Zero means unknown and yields "".
func TimeLabel(sec float64) string {
	if sec == 0 || math.IsNaN(sec) {
		return ""
	}
	if sec < 60 {
		return "~1 min"
	}
	minutes := math.Floor(sec/60 + 0.5)
	return "~" + strconv.FormatFloat(minutes, 'f', 0, 64) + " min"
}

// ModesLabel summarizes the non-empty modes, or returns "" when there are none.
func ModesLabel(modes []string) string {
	kept := make([]string, 0, len(modes))
	for _, m := range modes {
		if m != "" {
			kept = append(kept, m)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return "Modes: " + strings.Join(kept, separator)
}

func subtitle(g catalog.Game, tags []string) string {
	switch {
	case g.Short != "":
		return g.Short
	case g.Subtitle != "":
		return g.Subtitle
	case len(tags) > 0:
		if joined := strings.Join(tags, separator); joined != "" {
			return joined
		}
	}
	return " "
}
