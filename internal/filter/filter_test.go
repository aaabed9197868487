package filter

import (
	"testing"

	"github.com/glabrego/gameshelf/internal/catalog"
)

func names(games []catalog.Game) []string {
	out := make([]string, 0, len(games))
	for _, g := range games {
		out = append(out, g.Name)
	}
	return out
}

func equalNames(t *testing.T, got []catalog.Game, want ...string) {
	t.Helper()
	gotNames := names(got)
	if len(gotNames) != len(want) {
		t.Fatalf("got %v, want %v", gotNames, want)
	}
	for i := range want {
		if gotNames[i] != want[i] {
			t.Fatalf("got %v, want %v", gotNames, want)
		}
	}
}

func sampleGames() []catalog.Game {
	return []catalog.Game{
		{Name: "OpGlyph", Slug: "opglyph", Category: "quick", Tags: []string{"numbers", "arithmetic"}},
		{Name: "NumberGlyph", Slug: "numberglyph", Category: "daily", Tags: []string{"numbers", "logic"}, Description: "A daily number puzzle"},
		{Name: "FocusGlyph", Slug: "focusglyph", Category: "skills", Tags: []string{"attention"}},
		{Name: "HieroGlyph", Slug: "hieroglyph", Category: "daily", Tags: []string{"symbols"}},
		{Name: "Mystery", Slug: "mystery", Category: "labs"},
		{Name: "MultiGlyph", Slug: "multiglyph", Category: "soon", Tags: []string{"numbers"}},
	}
}

func TestVisibleEntries_OrdersByCategoryRankThenName(t *testing.T) {
	got := VisibleEntries(sampleGames(), DefaultState())
	equalNames(t, got, "HieroGlyph", "NumberGlyph", "OpGlyph", "FocusGlyph", "MultiGlyph", "Mystery")
}

func TestVisibleEntries_EndToEndScenario(t *testing.T) {
	games := []catalog.Game{
		{Name: "B", Category: "daily"},
		{Name: "A", Category: "skills"},
		{Name: "C", Category: "daily"},
	}
	equalNames(t, VisibleEntries(games, DefaultState()), "B", "C", "A")
}

func TestVisibleEntries_SortIsStable(t *testing.T) {
	games := []catalog.Game{
		{Name: "Twin", Slug: "first", Category: "quick"},
		{Name: "Alpha", Slug: "alpha", Category: "quick"},
		{Name: "Twin", Slug: "second", Category: "quick"},
		{Name: "Twin", Slug: "third", Category: "quick"},
		{Slug: "nameless-1", Category: "odd"},
		{Slug: "nameless-2", Category: "odd"},
	}
	got := VisibleEntries(games, DefaultState())
	wantSlugs := []string{"alpha", "first", "second", "third", "nameless-1", "nameless-2"}
	for i, want := range wantSlugs {
		if got[i].Slug != want {
			t.Fatalf("position %d: got slug %q, want %q", i, got[i].Slug, want)
		}
	}
}

func TestVisibleEntries_CollatesNamesCaseInsensitively(t *testing.T) {
	games := []catalog.Game{
		{Name: "zeta", Category: "quick"},
		{Name: "Beta", Category: "quick"},
		{Name: "alpha", Category: "quick"},
	}
	equalNames(t, VisibleEntries(games, DefaultState()), "alpha", "Beta", "zeta")
}

func TestVisibleEntries_DoesNotMutateInput(t *testing.T) {
	games := sampleGames()
	_ = VisibleEntries(games, DefaultState())
	if games[0].Name != "OpGlyph" {
		t.Fatalf("expected input order to be preserved, got %v", names(games))
	}
}

func TestVisibleEntries_FiltersCombine(t *testing.T) {
	games := sampleGames()

	equalNames(t, VisibleEntries(games, DefaultState().WithCategory("daily")), "HieroGlyph", "NumberGlyph")
	equalNames(t, VisibleEntries(games, DefaultState().ToggleTag("numbers")), "NumberGlyph", "OpGlyph", "MultiGlyph")
	equalNames(t, VisibleEntries(games, DefaultState().ToggleTag("numbers").WithCategory("daily")), "NumberGlyph")
	equalNames(t, VisibleEntries(games, DefaultState().WithQuery("  PUZZLE ")), "NumberGlyph")
	equalNames(t, VisibleEntries(games, DefaultState().WithQuery("arithmetic")), "OpGlyph")
	equalNames(t, VisibleEntries(games, DefaultState().WithQuery("labs")), "Mystery")
	equalNames(t, VisibleEntries(games, DefaultState().ToggleTag("nope")))
}

func TestVisibleEntries_TagMatchIsExact(t *testing.T) {
	games := []catalog.Game{{Name: "X", Tags: []string{"Numbers"}}}
	equalNames(t, VisibleEntries(games, DefaultState().ToggleTag("numbers")))
}

func TestVisibleEntries_EmptyCatalog(t *testing.T) {
	states := []State{
		DefaultState(),
		{},
		DefaultState().WithCategory("soon"),
		DefaultState().ToggleTag("numbers"),
		DefaultState().WithQuery("anything"),
		{Category: "weird", Tag: "x", Query: "  y "},
	}
	for _, st := range states {
		got := VisibleEntries(nil, st)
		if got == nil || len(got) != 0 {
			t.Fatalf("state %+v: expected empty result, got %#v", st, got)
		}
	}
}

func TestMatches(t *testing.T) {
	g := catalog.Game{Name: "NumberGlyph"}
	if !Matches(g, "  numberglyph  ") {
		t.Fatal("expected case and whitespace insensitive match")
	}
	if !Matches(g, "") || !Matches(g, "   ") {
		t.Fatal("expected blank query to match")
	}
	if Matches(g, "opglyph") {
		t.Fatal("did not expect unrelated query to match")
	}
	joined := catalog.Game{Name: "Op", Slug: "glyph"}
	if !Matches(joined, "op glyph") {
		t.Fatal("expected fields to be joined with single spaces")
	}
}

func TestStateTransitions(t *testing.T) {
	st := DefaultState()
	if st.Category != CategoryAll || st.Tag != "" || st.Query != "" {
		t.Fatalf("unexpected default state: %+v", st)
	}

	st = st.ToggleTag("logic")
	if st.Tag != "logic" {
		t.Fatalf("expected tag to be selected, got %q", st.Tag)
	}
	st = st.ToggleTag("numbers")
	if st.Tag != "numbers" {
		t.Fatalf("expected tag to switch, got %q", st.Tag)
	}
	st = st.ToggleTag("numbers")
	if st.Tag != "" {
		t.Fatalf("expected tag to clear, got %q", st.Tag)
	}

	st = st.WithCategory("quick")
	if st.Category != "quick" {
		t.Fatalf("unexpected category %q", st.Category)
	}
	if got := st.WithCategory("").Category; got != CategoryAll {
		t.Fatalf("expected empty category to select all, got %q", got)
	}
}

func TestCategoryRank(t *testing.T) {
	cases := map[string]int{"daily": 1, "quick": 2, "skills": 3, "soon": 4, "": 99, "Daily": 99, "labs": 99}
	for category, want := range cases {
		if got := CategoryRank(category); got != want {
			t.Fatalf("CategoryRank(%q) = %d, want %d", category, got, want)
		}
	}
}
