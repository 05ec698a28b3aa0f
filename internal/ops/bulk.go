package ops

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/altinukshini/leadfinder/internal/model"
)

// RecordFilter selects saved runs for bulk removal.
type RecordFilter struct {
	OlderThan time.Duration
	EmptyOnly bool
	Summary   string
}

func FilterRecords(records []model.RunRecord, filter RecordFilter, now time.Time) []model.RunRecord {
	var matched []model.RunRecord

	for _, r := range records {
		if filter.OlderThan > 0 && now.Sub(r.Timestamp) < filter.OlderThan {
			continue
		}
		if filter.EmptyOnly && r.Count > 0 {
			continue
		}
		if filter.Summary != "" && !strings.Contains(strings.ToLower(r.FilterSummary), strings.ToLower(filter.Summary)) {
			continue
		}
		matched = append(matched, r)
	}
	return matched
}

// RecordRemover is the part of the run cache RemoveRecords needs.
type RecordRemover interface {
	Remove(ctx context.Context, id string) error
}

type RemoveResult struct {
	Completed int
	Failed    int
	Errors    []error
}

func RemoveRecords(ctx context.Context, c RecordRemover, ids []string, onProgress func(completed, total int)) (*RemoveResult, error) {
	result := &RemoveResult{}
	total := len(ids)

	for i, id := range ids {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := c.Remove(ctx, id); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Errorf("run %s: %w", id, err))
		} else {
			result.Completed++
		}

		if onProgress != nil {
			onProgress(i+1, total)
		}
	}

	return result, nil
}
