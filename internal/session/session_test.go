package session

import (
	"fmt"
	"testing"

	"github.com/altinukshini/leadfinder/internal/model"
)

func makeLeads(n int) []model.Lead {
	out := make([]model.Lead, n)
	for i := range out {
		out[i] = model.Lead{Name: fmt.Sprintf("lead %02d", i)}
		if i%3 == 0 {
			out[i].Email = fmt.Sprintf("l%d@x.io", i)
		}
	}
	return out
}

func TestPaging(t *testing.T) {
	s := New()
	s.SetResults(makeLeads(45), "websites: x.com", "")

	if got := s.PageCount(); got != 3 {
		t.Fatalf("PageCount = %d, want 3", got)
	}
	if s.PrevPage() {
		t.Error("PrevPage on first page should be a no-op")
	}

	page, start := s.PageSlice()
	if len(page) != 20 || start != 0 {
		t.Errorf("page 1: %d leads from %d", len(page), start)
	}

	s.NextPage()
	s.NextPage()
	page, start = s.PageSlice()
	if len(page) != 5 || start != 40 || page[0].Name != "lead 40" {
		t.Errorf("page 3: %d leads from %d", len(page), start)
	}
	if s.NextPage() {
		t.Error("NextPage past the end should be a no-op")
	}
	if s.Page() != 2 {
		t.Errorf("Page = %d", s.Page())
	}
}

func TestEmptySession(t *testing.T) {
	s := New()
	if !s.Empty() || s.PageCount() != 0 {
		t.Fatal("new session should be empty")
	}
	if page, _ := s.PageSlice(); page != nil {
		t.Errorf("PageSlice = %v", page)
	}
	if s.NextPage() {
		t.Error("NextPage on empty session")
	}
}

func TestStatsIgnoreFilter(t *testing.T) {
	s := New()
	s.SetResults(makeLeads(10), "", "")
	want := Stats{Total: 10, WithEmail: 4}
	if got := s.Stats(); got != want {
		t.Errorf("Stats = %+v, want %+v", got, want)
	}

	s.Filter(model.SearchQuery{Pattern: "lead 07"})
	if len(s.Visible()) != 1 {
		t.Fatalf("visible = %d", len(s.Visible()))
	}
	if got := s.Stats(); got != want {
		t.Errorf("Stats after filter = %+v, want %+v", got, want)
	}
}

func TestFilterResetsPage(t *testing.T) {
	s := New()
	s.SetResults(makeLeads(30), "", "")
	s.NextPage()
	s.Filter(model.SearchQuery{Pattern: "lead 2"})
	if s.Page() != 0 {
		t.Errorf("Page = %d after filter", s.Page())
	}
	s.Filter(model.SearchQuery{})
	if len(s.Visible()) != 30 {
		t.Errorf("clearing the filter should show everything, got %d", len(s.Visible()))
	}
}

func TestLoadRecord(t *testing.T) {
	s := New()
	s.LoadRecord(model.RunRecord{ID: "abc", FilterSummary: "location: berlin", Leads: makeLeads(2), Count: 2})
	if s.RunID() != "abc" || s.Source() != "location: berlin" || len(s.All()) != 2 {
		t.Errorf("session = %+v", s)
	}
	if l, ok := s.At(1); !ok || l.Name != "lead 01" {
		t.Errorf("At(1) = %+v, %v", l, ok)
	}
	if _, ok := s.At(2); ok {
		t.Error("At out of range should fail")
	}
}
