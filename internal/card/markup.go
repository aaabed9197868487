package card

import (
	"strings"

	"github.com/glabrego/gameshelf/internal/textutil"
)

// Markup renders the card as an HTML fragment using the pg* class tokens.
func (v View) Markup() string {
	esc := textutil.EscapeMarkup
	var b strings.Builder

	b.WriteString(`<article class="pgCard">` + "\n")
	b.WriteString(`  <div class="pgCardBar ` + esc(v.Accent) + `"></div>` + "\n")
	b.WriteString(`  <div class="pgCardTop">` + "\n")
	b.WriteString(`    <div class="pgCardTitleRow">` + "\n")
	b.WriteString(`      <div class="pgCardIcon"><img src="` + esc(v.IconURL) + `" alt="" loading="lazy" decoding="async" /></div>` + "\n")
	b.WriteString(`      <div style="min-width:0">` + "\n")
	b.WriteString(`        <div class="pgCardTitle">` + esc(v.Name) + `</div>` + "\n")
	b.WriteString(`        <div class="pgCardSub">` + esc(v.Subtitle) + `</div>` + "\n")
	b.WriteString(`      </div>` + "\n")
	b.WriteString(`    </div>` + "\n")
	b.WriteString(`  </div>` + "\n")
	b.WriteString(`  <div class="pgCardBody">` + "\n")
	b.WriteString(`    <p class="pgCardDesc">` + esc(v.Description) + `</p>` + "\n")

	b.WriteString(`    <div class="pgCardMeta">`)
	for _, p := range v.Pills() {
		b.WriteString(`<span class="pgPill">` + esc(p) + `</span>`)
	}
	b.WriteString(`</div>` + "\n")

	if len(v.Tags) > 0 {
		b.WriteString(`    <div class="pgCardTags">`)
		for _, t := range v.Tags {
			b.WriteString(`<span class="pgTag">` + esc(t) + `</span>`)
		}
		b.WriteString(`</div>` + "\n")
	}

	b.WriteString(`    <div class="pgCardActions">`)
	if v.ComingSoon {
		b.WriteString(`<span class="pgBtn primary disabled" aria-disabled="true">` + ComingSoonCTA + `</span>`)
	} else {
		b.WriteString(`<a class="pgBtn primary" href="` + esc(v.PlayURL) + `" target="_blank" rel="noopener">` + PlayCTA + `</a>`)
	}
	if v.GuideURL != "" {
		b.WriteString(`<a class="pgBtn" href="` + esc(v.GuideURL) + `" target="_blank" rel="noopener">` + GuideCTA + `</a>`)
	}
	b.WriteString(`</div>` + "\n")

	b.WriteString(`  </div>` + "\n")
	b.WriteString(`</article>`)
	return b.String()
}
