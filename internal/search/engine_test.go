package search

import (
	"testing"

	"github.com/altinukshini/leadfinder/internal/model"
)

var leads = []model.Lead{
	{Name: "Ada Lovelace", Email: "ada@analytical.io", Title: "Head of Engineering", Company: "Analytical Engines", Location: "London"},
	{Name: "Grace Hopper", Email: "", Title: "Rear Admiral", Company: "US Navy", Location: "Arlington, Virginia"},
	{Name: "Ken Thompson", Email: "ken@bell-labs.com", Title: "Engineer", Company: "Bell Labs", Location: "Murray Hill"},
}

func TestSearchPlainText(t *testing.T) {
	engine := New()
	query := model.SearchQuery{
		Pattern:       "Engine",
		CaseSensitive: true,
	}

	results := engine.Search(leads, query)

	if results.TotalCount != 2 {
		t.Errorf("TotalCount = %d, want 2", results.TotalCount)
	}
	if results.FieldCounts["title"] != 2 {
		t.Errorf("title matches = %d, want 2", results.FieldCounts["title"])
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	engine := New()
	query := model.SearchQuery{
		Pattern: "LABS",
	}

	results := engine.Search(leads, query)
	if results.TotalCount != 1 {
		t.Fatalf("TotalCount = %d, want 1", results.TotalCount)
	}
	if got := results.Matches[0]; got.Index != 2 || got.Field != "email" {
		t.Errorf("match = %+v, want index 2 on email", got)
	}
}

func TestSearchRegex(t *testing.T) {
	engine := New()
	query := model.SearchQuery{
		Pattern:       `@\w+\.io$`,
		IsRegex:       true,
		CaseSensitive: true,
	}

	results := engine.Search(leads, query)
	if results.TotalCount != 1 {
		t.Errorf("TotalCount = %d, want 1", results.TotalCount)
	}
}

func TestSearchInvalidRegex(t *testing.T) {
	results := New().Search(leads, model.SearchQuery{Pattern: "(", IsRegex: true})
	if results.TotalCount != 0 {
		t.Errorf("TotalCount = %d, want 0", results.TotalCount)
	}
}

func TestSearchField(t *testing.T) {
	engine := New()
	query := model.SearchQuery{
		Pattern: "engine",
		Field:   "company",
	}

	results := engine.Search(leads, query)
	if results.TotalCount != 1 {
		t.Fatalf("TotalCount = %d, want 1", results.TotalCount)
	}
	if results.Matches[0].Lead.Name != "Ada Lovelace" {
		t.Errorf("matched %q", results.Matches[0].Lead.Name)
	}
}

func TestSearchEmptyPatternKeepsAll(t *testing.T) {
	results := New().Search(leads, model.SearchQuery{Pattern: "  "})
	if results.TotalCount != len(leads) {
		t.Fatalf("TotalCount = %d, want %d", results.TotalCount, len(leads))
	}
	for i, l := range results.Leads() {
		if l.Name != leads[i].Name {
			t.Errorf("order changed at %d: %q", i, l.Name)
		}
	}
}

func TestSearchFuzzy(t *testing.T) {
	engine := New()
	query := model.SearchQuery{
		Pattern: "grhop",
		Fuzzy:   true,
	}

	results := engine.Search(leads, query)
	if results.TotalCount != 1 {
		t.Fatalf("TotalCount = %d, want 1", results.TotalCount)
	}
	if got := results.Matches[0]; got.Index != 1 || got.Field != "name" {
		t.Errorf("match = %+v, want Grace Hopper by name", got)
	}
}

func TestSearchFuzzyCountsEachLeadOnce(t *testing.T) {
	results := New().Search(leads, model.SearchQuery{Pattern: "ada", Fuzzy: true})
	seen := make(map[int]bool)
	for _, m := range results.Matches {
		if seen[m.Index] {
			t.Fatalf("lead %d reported twice", m.Index)
		}
		seen[m.Index] = true
	}
	if !seen[0] {
		t.Error("Ada Lovelace should match")
	}
	if results.TotalCount != len(results.Matches) {
		t.Errorf("TotalCount = %d, matches = %d", results.TotalCount, len(results.Matches))
	}
}
