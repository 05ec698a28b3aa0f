package model

// SearchQuery filters the current result set.
type SearchQuery struct {
	Pattern       string
	IsRegex       bool
	CaseSensitive bool
	Fuzzy         bool
	Field         string // one of LeadColumns, or "" for all
}

type SearchResult struct {
	Index int // position in the searched slice
	Lead  Lead
	Field string
	Score int
}

type SearchResults struct {
	Query       SearchQuery
	Matches     []SearchResult
	FieldCounts map[string]int // field name -> match count
	TotalCount  int
}

// Leads returns the matched leads in result order.
func (r *SearchResults) Leads() []Lead {
	out := make([]Lead, len(r.Matches))
	for i, m := range r.Matches {
		out[i] = m.Lead
	}
	return out
}
