package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/altinukshini/leadfinder/internal/model"
)

// decodeRecords accepts a single object or a list and always returns a
// list. List elements that are not objects are dropped.
func decodeRecords(op string, body []byte) ([]model.ExternalRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &ProtocolError{Op: op, Detail: fmt.Sprintf("invalid json: %v", err)}
	}

	switch t := v.(type) {
	case map[string]any:
		return []model.ExternalRecord{t}, nil
	case []any:
		out := make([]model.ExternalRecord, 0, len(t))
		for _, item := range t {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out, nil
	default:
		return nil, &ProtocolError{Op: op, Detail: fmt.Sprintf("expected object or array, got %T", v)}
	}
}
