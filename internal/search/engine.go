package search

import (
	"regexp"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/altinukshini/leadfinder/internal/model"
)

type Engine struct{}

func New() *Engine {
	return &Engine{}
}

// Search returns the leads matching query. Every lead appears at most
// once, attributed to the first field that matched. Fuzzy results are
// ordered by score, the others keep input order.
func (e *Engine) Search(leads []model.Lead, query model.SearchQuery) *model.SearchResults {
	results := &model.SearchResults{
		Query:       query,
		FieldCounts: make(map[string]int),
	}
	if strings.TrimSpace(query.Pattern) == "" {
		for i, l := range leads {
			results.Matches = append(results.Matches, model.SearchResult{Index: i, Lead: l})
		}
		results.TotalCount = len(leads)
		return results
	}

	if query.Fuzzy {
		e.searchFuzzy(leads, query, results)
		return results
	}

	matcher, err := buildMatcher(query)
	if err != nil {
		return results
	}

	for i, l := range leads {
		for _, field := range fields(query) {
			if matcher(fieldValue(l, field)) {
				results.Matches = append(results.Matches, model.SearchResult{Index: i, Lead: l, Field: field})
				results.FieldCounts[field]++
				results.TotalCount++
				break
			}
		}
	}
	return results
}

func (e *Engine) searchFuzzy(leads []model.Lead, query model.SearchQuery, results *model.SearchResults) {
	best := make(map[int]model.SearchResult)
	for _, field := range fields(query) {
		data := make([]string, len(leads))
		for i, l := range leads {
			data[i] = fieldValue(l, field)
		}
		for _, m := range fuzzy.Find(query.Pattern, data) {
			if prev, ok := best[m.Index]; ok && prev.Score >= m.Score {
				continue
			}
			best[m.Index] = model.SearchResult{Index: m.Index, Lead: leads[m.Index], Field: field, Score: m.Score}
		}
	}

	for _, r := range best {
		results.Matches = append(results.Matches, r)
		results.FieldCounts[r.Field]++
	}
	sort.SliceStable(results.Matches, func(i, j int) bool {
		a, b := results.Matches[i], results.Matches[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Index < b.Index
	})
	results.TotalCount = len(results.Matches)
}

func fields(query model.SearchQuery) []string {
	if query.Field != "" {
		return []string{query.Field}
	}
	return model.LeadColumns
}

func fieldValue(l model.Lead, field string) string {
	switch field {
	case "name":
		return l.Name
	case "email":
		return l.Email
	case "title":
		return l.Title
	case "company":
		return l.Company
	case "location":
		return l.Location
	case "linkedin":
		return l.LinkedIn
	case "phone":
		return l.Phone
	default:
		return ""
	}
}

func buildMatcher(query model.SearchQuery) (func(string) bool, error) {
	if query.IsRegex {
		flags := ""
		if !query.CaseSensitive {
			flags = "(?i)"
		}
		re, err := regexp.Compile(flags + query.Pattern)
		if err != nil {
			return nil, err
		}
		return func(s string) bool { return re.MatchString(s) }, nil
	}

	pattern := query.Pattern
	if !query.CaseSensitive {
		pattern = strings.ToLower(pattern)
	}
	return func(s string) bool {
		if !query.CaseSensitive {
			s = strings.ToLower(s)
		}
		return strings.Contains(s, pattern)
	}, nil
}
