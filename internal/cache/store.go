package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/altinukshini/leadfinder/internal/model"
)

// StoreKey is the key saved runs live under.
const StoreKey = "savedLeads"

// UpdateFunc receives the current runs and returns the runs to persist.
type UpdateFunc func([]model.RunRecord) ([]model.RunRecord, error)

// Store persists the run list. Update runs its read-modify-write cycle
// under a lock that excludes other writers, including other processes.
type Store interface {
	Load(ctx context.Context) ([]model.RunRecord, error)
	Update(ctx context.Context, fn UpdateFunc) error
	Close() error
}

func decodeRuns(data []byte) ([]model.RunRecord, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var runs []model.RunRecord
	if err := json.Unmarshal(data, &runs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", StoreKey, err)
	}
	return runs, nil
}

func encodeRuns(runs []model.RunRecord) ([]byte, error) {
	if runs == nil {
		runs = []model.RunRecord{}
	}
	data, err := json.Marshal(runs)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", StoreKey, err)
	}
	return data, nil
}
