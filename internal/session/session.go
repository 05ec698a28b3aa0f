// Package session holds the state of the results screen: the current
// leads, where they came from, the active filter and the page shown.
package session

import (
	"github.com/altinukshini/leadfinder/internal/model"
	"github.com/altinukshini/leadfinder/internal/search"
)

const PageSize = 20

// Stats is the summary line above the table.
type Stats struct {
	Total     int
	WithEmail int
}

type Session struct {
	all      []model.Lead
	visible  []model.Lead
	query    model.SearchQuery
	page     int
	pageSize int
	source   string
	runID    string
	engine   *search.Engine
}

func New() *Session {
	return &Session{pageSize: PageSize, engine: search.New()}
}

// SetResults replaces the result set and resets filter and page.
func (s *Session) SetResults(leads []model.Lead, source, runID string) {
	s.all = leads
	s.visible = leads
	s.query = model.SearchQuery{}
	s.page = 0
	s.source = source
	s.runID = runID
}

// LoadRecord shows a saved run.
func (s *Session) LoadRecord(rec model.RunRecord) {
	s.SetResults(rec.Leads, rec.FilterSummary, rec.ID)
}

func (s *Session) Reset() {
	s.SetResults(nil, "", "")
}

// Filter narrows the visible leads. An empty pattern shows all of them.
func (s *Session) Filter(q model.SearchQuery) {
	s.query = q
	s.page = 0
	if q.Pattern == "" {
		s.visible = s.all
		return
	}
	s.visible = s.engine.Search(s.all, q).Leads()
}

func (s *Session) Query() model.SearchQuery { return s.query }
func (s *Session) Source() string           { return s.source }
func (s *Session) RunID() string            { return s.runID }
func (s *Session) All() []model.Lead        { return s.all }
func (s *Session) Visible() []model.Lead    { return s.visible }
func (s *Session) Empty() bool              { return len(s.all) == 0 }

// Stats counts over the full result set, not the filtered view.
func (s *Session) Stats() Stats {
	st := Stats{Total: len(s.all)}
	for _, l := range s.all {
		if l.Email != "" {
			st.WithEmail++
		}
	}
	return st
}

// Page is zero based.
func (s *Session) Page() int { return s.page }

func (s *Session) PageCount() int {
	if len(s.visible) == 0 {
		return 0
	}
	return (len(s.visible) + s.pageSize - 1) / s.pageSize
}

// PageSlice returns the leads on the current page and the index of the
// first one within Visible.
func (s *Session) PageSlice() ([]model.Lead, int) {
	start := s.page * s.pageSize
	if start >= len(s.visible) {
		return nil, start
	}
	end := min(start+s.pageSize, len(s.visible))
	return s.visible[start:end], start
}

func (s *Session) NextPage() bool {
	if s.page+1 >= s.PageCount() {
		return false
	}
	s.page++
	return true
}

func (s *Session) PrevPage() bool {
	if s.page == 0 {
		return false
	}
	s.page--
	return true
}

// At returns the visible lead at index i.
func (s *Session) At(i int) (model.Lead, bool) {
	if i < 0 || i >= len(s.visible) {
		return model.Lead{}, false
	}
	return s.visible[i], true
}
