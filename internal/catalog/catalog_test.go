package catalog

import (
	"reflect"
	"testing"
)

func TestComingSoon(t *testing.T) {
	cases := []struct {
		name string
		game Game
		want bool
	}{
		{name: "playable", game: Game{Category: "daily", URLPlay: "https://example.com/play"}, want: false},
		{name: "missing url", game: Game{Category: "daily"}, want: true},
		{name: "blank url", game: Game{Category: "quick", URLPlay: "  "}, want: true},
		{name: "soon with url", game: Game{Category: "soon", URLPlay: "https://example.com/play"}, want: true},
		{name: "soon without url", game: Game{Category: "soon"}, want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.game.ComingSoon(); got != tc.want {
				t.Fatalf("ComingSoon() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPlaySeconds(t *testing.T) {
	if got := (Game{}).PlaySeconds(); got != 0 {
		t.Fatalf("expected 0 for absent play time, got %v", got)
	}
	sec := 95.0
	if got := (Game{TimeToPlaySec: &sec}).PlaySeconds(); got != 95 {
		t.Fatalf("expected 95, got %v", got)
	}
}

func TestTagVocabulary_PrefersDeclaredTags(t *testing.T) {
	c := Catalog{
		Tags:  []string{"words", "logic", "numbers"},
		Games: []Game{{Tags: []string{"zzz"}}},
	}
	got := TagVocabulary(c)
	want := []string{"words", "logic", "numbers"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TagVocabulary = %v, want %v", got, want)
	}

	got[0] = "mutated"
	if c.Tags[0] != "words" {
		t.Fatal("expected vocabulary to be a copy of the declared tags")
	}
}

func TestTagVocabulary_DerivesSortedUnion(t *testing.T) {
	c := Catalog{
		Tags: []string{},
		Games: []Game{
			{Tags: []string{"numbers", "logic"}},
			{Tags: []string{"logic", "memory"}},
			{},
		},
	}
	got := TagVocabulary(c)
	want := []string{"logic", "memory", "numbers"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TagVocabulary = %v, want %v", got, want)
	}
}

func TestTagVocabulary_EmptyCatalog(t *testing.T) {
	got := TagVocabulary(Catalog{})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil vocabulary, got %#v", got)
	}
}
