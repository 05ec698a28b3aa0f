// Package normalize maps dataset records of varying shape onto model.Lead.
package normalize

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/altinukshini/leadfinder/internal/model"
)

// Lead builds the canonical lead for rec. It never fails: fields that
// cannot be resolved are left empty.
func Lead(rec model.ExternalRecord) model.Lead {
	return model.Lead{
		Name:     name(rec),
		Email:    first(rec, emailKeys),
		Title:    first(rec, titleKeys),
		Company:  first(rec, companyKeys),
		Location: location(rec),
		LinkedIn: first(rec, linkedinKeys),
		Phone:    first(rec, phoneKeys),
		Raw:      rec,
	}
}

// All normalizes every record, preserving order.
func All(recs []model.ExternalRecord) []model.Lead {
	out := make([]model.Lead, len(recs))
	for i, r := range recs {
		out[i] = Lead(r)
	}
	return out
}

// HasEmail reports whether rec carries any known email key.
func HasEmail(rec model.ExternalRecord) bool {
	return first(rec, emailKeys) != ""
}

func name(rec model.ExternalRecord) string {
	joined := strings.TrimSpace(first(rec, firstNameKeys) + " " + first(rec, lastNameKeys))
	if joined != "" {
		return joined
	}
	return first(rec, fullNameKeys)
}

func location(rec model.ExternalRecord) string {
	var parts []string
	for _, keys := range [][]string{cityKeys, stateKeys, countryKeys} {
		if v := first(rec, keys); v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}

	for _, k := range locationKeys {
		if v := joinList(rec[k]); v != "" {
			return v
		}
	}
	return ""
}

// first returns the first non-empty scalar among keys.
func first(rec model.ExternalRecord, keys []string) string {
	for _, k := range keys {
		if v := scalar(rec[k]); v != "" {
			return v
		}
	}
	return ""
}

func scalar(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return ""
	}
}

// joinList renders a scalar, or a list of scalars joined with ", ".
func joinList(v any) string {
	list, ok := v.([]any)
	if !ok {
		return scalar(v)
	}
	parts := make([]string, 0, len(list))
	for _, item := range list {
		if s := scalar(item); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
