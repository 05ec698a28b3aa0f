// Package cache keeps the most recent finished searches.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/altinukshini/leadfinder/internal/model"
)

// DefaultCapacity is the number of runs kept before the oldest is evicted.
const DefaultCapacity = 20

// ErrNotFound is returned by Get for an unknown id.
var ErrNotFound = errors.New("run not found")

// RunCache is an ordered, capacity-bounded list of RunRecords, newest
// first. Persistence is delegated to a Store.
type RunCache struct {
	store    Store
	capacity int
	now      func() time.Time
	newID    func() string
	log      *zap.Logger
}

type Option func(*RunCache)

func WithCapacity(n int) Option {
	return func(c *RunCache) {
		if n > 0 {
			c.capacity = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *RunCache) { c.now = now }
}

func WithLogger(log *zap.Logger) Option {
	return func(c *RunCache) {
		if log != nil {
			c.log = log
		}
	}
}

func New(store Store, opts ...Option) *RunCache {
	c := &RunCache{
		store:    store,
		capacity: DefaultCapacity,
		now:      time.Now,
		newID:    newID,
		log:      zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// newID returns a time-ordered unique id.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Append saves leads as a new run at the head and evicts beyond capacity.
func (c *RunCache) Append(ctx context.Context, leads []model.Lead, summary string) (model.RunRecord, error) {
	rec := model.RunRecord{
		ID:            c.newID(),
		Timestamp:     c.now().UTC(),
		Count:         len(leads),
		FilterSummary: summary,
		Leads:         append([]model.Lead{}, leads...),
	}

	var evicted int
	err := c.store.Update(ctx, func(runs []model.RunRecord) ([]model.RunRecord, error) {
		next := make([]model.RunRecord, 0, len(runs)+1)
		next = append(next, rec)
		next = append(next, runs...)
		if len(next) > c.capacity {
			evicted = len(next) - c.capacity
			next = next[:c.capacity]
		}
		return next, nil
	})
	if err != nil {
		return model.RunRecord{}, fmt.Errorf("save run: %w", err)
	}
	c.log.Info("run saved", zap.String("id", rec.ID), zap.Int("count", rec.Count), zap.Int("evicted", evicted))
	return rec, nil
}

// List returns every saved run, newest first.
func (c *RunCache) List(ctx context.Context) ([]model.RunRecord, error) {
	runs, err := c.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load runs: %w", err)
	}
	return runs, nil
}

func (c *RunCache) Get(ctx context.Context, id string) (model.RunRecord, error) {
	runs, err := c.List(ctx)
	if err != nil {
		return model.RunRecord{}, err
	}
	for _, r := range runs {
		if r.ID == id {
			return r, nil
		}
	}
	return model.RunRecord{}, fmt.Errorf("%s: %w", id, ErrNotFound)
}

// Remove deletes the run with id. Unknown ids are ignored.
func (c *RunCache) Remove(ctx context.Context, id string) error {
	err := c.store.Update(ctx, func(runs []model.RunRecord) ([]model.RunRecord, error) {
		next := runs[:0]
		for _, r := range runs {
			if r.ID != id {
				next = append(next, r)
			}
		}
		return next, nil
	})
	if err != nil {
		return fmt.Errorf("remove run %s: %w", id, err)
	}
	return nil
}

// Clear removes every saved run.
func (c *RunCache) Clear(ctx context.Context) error {
	err := c.store.Update(ctx, func([]model.RunRecord) ([]model.RunRecord, error) {
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("clear runs: %w", err)
	}
	return nil
}

func (c *RunCache) Close() error {
	return c.store.Close()
}
