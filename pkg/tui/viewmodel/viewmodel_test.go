package viewmodel

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/phrasebook/pkg/category"
	"tableflip.dev/phrasebook/pkg/selection"
)

func testCategories() []*category.Category {
	return []*category.Category{
		{
			ID:    "greetings",
			Title: "Greetings",
			Order: 0,
			Phrases: []category.Phrase{
				{ID: "p1", Base: "Good morning {name}, how are you?", Target: "早上好{name}，你好吗？"},
				{ID: "p2", Base: "Good night!", Target: "晚安！"},
			},
		},
		{
			ID:    "meals",
			Title: "Meals",
			Order: 1,
			Phrases: []category.Phrase{
				{ID: "p3", Base: "Enjoy your meal, {name}!", Target: "慢慢吃，{name}！"},
			},
		},
	}
}

func TestBuildSubstitutesDisplayText(t *testing.T) {
	slides := Build(testCategories(), selection.Values{Base: "Léna", Target: "蕾娜"})

	if len(slides) != 2 {
		t.Fatalf("got %d slides, want 2", len(slides))
	}
	if slides[0].Title != "Greetings" || slides[1].Title != "Meals" {
		t.Fatalf("slide titles = %q, %q", slides[0].Title, slides[1].Title)
	}
	if got, want := slides[0].Cards[0].Display, "Good morning Léna, how are you?"; got != want {
		t.Fatalf("display = %q, want %q", got, want)
	}
	// Raw templates survive so copy-time substitution stays possible.
	if got, want := slides[0].Cards[0].Base, "Good morning {name}, how are you?"; got != want {
		t.Fatalf("base template = %q, want %q", got, want)
	}
}

func TestBuildEmptySelectionDropsPlaceholders(t *testing.T) {
	slides := Build(testCategories(), selection.Values{})

	if got, want := slides[1].Cards[0].Display, "Enjoy your meal!"; got != want {
		t.Fatalf("display = %q, want %q", got, want)
	}
}

func TestResubstituteOnlyChangesDisplay(t *testing.T) {
	built := Build(testCategories(), selection.Values{Base: "Léna"})
	again := Resubstitute(built, selection.Values{Base: "Leelou"})

	if got, want := again[0].Cards[0].Display, "Good morning Leelou, how are you?"; got != want {
		t.Fatalf("display = %q, want %q", got, want)
	}
	// Input slides are not mutated.
	if got, want := built[0].Cards[0].Display, "Good morning Léna, how are you?"; got != want {
		t.Fatalf("original display = %q, want %q", got, want)
	}

	rebuilt := Build(testCategories(), selection.Values{Base: "Leelou"})
	if diff := cmp.Diff(rebuilt, again); diff != "" {
		t.Fatalf("resubstitute diverges from rebuild (-want +got):\n%s", diff)
	}
}

func TestCopyTextsUsesSelectionAtCopyTime(t *testing.T) {
	slides := Build(testCategories(), selection.Values{Base: "Léna", Target: "蕾娜"})
	card := slides[0].Cards[0]

	copied, original := CopyTexts(card, selection.Values{Base: "my star", Target: "我的小星星"})
	if want := "早上好我的小星星，你好吗？"; copied != want {
		t.Fatalf("copied = %q, want %q", copied, want)
	}
	if want := "Good morning my star, how are you?"; original != want {
		t.Fatalf("original = %q, want %q", original, want)
	}
}
