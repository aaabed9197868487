package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestAccent_ByCategory(t *testing.T) {
	th := Default()
	seen := map[lipgloss.Color]string{}
	for _, category := range []string{"daily", "quick", "skills", "soon"} {
		c := th.Accent(category)
		if prev, ok := seen[c]; ok {
			t.Fatalf("categories %q and %q share accent %s", prev, category, c)
		}
		seen[c] = category
	}
	if th.Accent("labs") != th.Accent("") {
		t.Fatal("expected unknown categories to share the default accent")
	}
	if _, ok := seen[th.Accent("labs")]; ok {
		t.Fatal("expected default accent to differ from known categories")
	}
}

func TestCardBox_ActiveUsesDifferentBorder(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := Default()

	idle := th.CardBox("daily", false, 20).Render("x")
	active := th.CardBox("daily", true, 20).Render("x")
	if idle == active {
		t.Fatal("expected active card to render differently")
	}
	if !strings.Contains(active, "┏") {
		t.Fatalf("expected thick border on active card, got %q", active)
	}
	if !strings.Contains(idle, "╭") {
		t.Fatalf("expected rounded border on idle card, got %q", idle)
	}
}

func TestRenderActiveLine(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := Default()
	if got := th.RenderActiveLine(false, "line"); got != "line" {
		t.Fatalf("expected inactive line untouched, got %q", got)
	}
	if got := th.RenderActiveLine(true, "line"); !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected styled active line, got %q", got)
	}
}
