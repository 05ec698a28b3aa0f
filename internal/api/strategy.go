package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/altinukshini/leadfinder/internal/model"
)

// SyncStrategy uses the run-and-wait endpoint. The server gives up after
// its own time budget and answers 408.
type SyncStrategy struct {
	client  *Client
	timeout time.Duration
}

func (s *SyncStrategy) Name() string { return "sync" }

func (s *SyncStrategy) Execute(ctx context.Context, job Job, report StatusSink) ([]model.ExternalRecord, error) {
	report(Progress{Phase: PhaseSync})
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	records, err := s.client.RunSync(ctx, job.ActorID, job.Token, job.Request)
	var re *RemoteError
	if errors.As(err, &re) && re.StatusCode == http.StatusRequestTimeout {
		s.client.log.Info("synchronous run exceeded server time budget", zap.String("actor", job.ActorID))
	}
	return records, err
}

// AsyncStrategy starts a run, polls it until it leaves the pending
// states, then downloads its dataset.
type AsyncStrategy struct {
	client      *Client
	interval    time.Duration
	maxAttempts int
	log         *zap.Logger
}

func (s *AsyncStrategy) Name() string { return "async" }

func (s *AsyncStrategy) Execute(ctx context.Context, job Job, report StatusSink) ([]model.ExternalRecord, error) {
	report(Progress{Phase: PhaseStarting})
	run, err := s.client.StartRun(ctx, job.ActorID, job.Token, job.Request)
	if err != nil {
		return nil, err
	}
	s.log.Info("run started", zap.String("run_id", run.ID), zap.String("dataset_id", run.DefaultDatasetID))

	final, err := s.wait(ctx, run.ID, job.Token, report)
	if err != nil {
		return nil, err
	}

	datasetID := run.DefaultDatasetID
	if datasetID == "" {
		datasetID = final.DefaultDatasetID
	}
	if datasetID == "" {
		return nil, &ProtocolError{Op: "start run", Detail: "run " + run.ID + " has no dataset id"}
	}

	report(Progress{Phase: PhaseFetching, RunID: run.ID, RunStatus: final.Status})
	return s.client.DatasetItems(ctx, datasetID, job.Token)
}

// wait polls the run until it is no longer pending. A failed check is
// logged and counts as an attempt; only auth failures and cancellation
// stop polling early.
func (s *AsyncStrategy) wait(ctx context.Context, runID, token string, report StatusSink) (*model.ActorRun, error) {
	limiter := rate.NewLimiter(rate.Every(s.interval), 1)
	// Drain the initial token so the first check also waits one interval.
	limiter.Reserve()
	started := time.Now()

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}

		run, err := s.client.GetRun(ctx, runID, token)
		if err != nil {
			// A rejected token fails every later check too, so auth errors end
			// polling instead of counting as a skipped cycle.
			if IsAuth(err) || ctx.Err() != nil {
				return nil, err
			}
			s.log.Warn("status check failed",
				zap.String("run_id", runID),
				zap.Int("attempt", attempt),
				zap.Error(err))
			report(Progress{Phase: PhaseWaiting, RunID: runID, Attempt: attempt, MaxAttempts: s.maxAttempts})
			continue
		}

		report(Progress{Phase: PhaseWaiting, RunID: runID, RunStatus: run.Status, Attempt: attempt, MaxAttempts: s.maxAttempts})
		if run.Status.Pending() {
			continue
		}
		if !run.Status.Succeeded() {
			s.log.Warn("run ended without success", zap.String("run_id", runID), zap.String("status", string(run.Status)))
			return nil, &RemoteError{Op: "run status", RunStatus: run.Status}
		}
		return run, nil
	}

	return nil, &TimeoutError{RunID: runID, Attempts: s.maxAttempts, Waited: time.Since(started)}
}
