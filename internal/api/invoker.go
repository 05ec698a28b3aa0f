package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/altinukshini/leadfinder/internal/model"
)

const (
	DefaultPollInterval    = 5 * time.Second
	DefaultMaxPollAttempts = 120
	DefaultSyncTimeout     = 330 * time.Second
)

// Credentials authenticate a job invocation.
type Credentials struct {
	Token string
}

// Job is one invocation handed to a Strategy.
type Job struct {
	ActorID string
	Token   string
	Request model.JobRequest
}

// Phase identifies what an invocation is currently doing.
type Phase int

const (
	PhaseSync Phase = iota
	PhaseStarting
	PhaseWaiting
	PhaseFetching
)

// Progress is reported through a StatusSink while a job runs.
type Progress struct {
	Phase       Phase
	RunID       string
	RunStatus   model.RunStatus
	Attempt     int
	MaxAttempts int
}

func (p Progress) String() string {
	switch p.Phase {
	case PhaseSync:
		return "Running search..."
	case PhaseStarting:
		return "Starting run..."
	case PhaseWaiting:
		status := string(p.RunStatus)
		if status == "" {
			status = "status unknown"
		}
		return fmt.Sprintf("Waiting for run %s (%s, check %d/%d)...", p.RunID, status, p.Attempt, p.MaxAttempts)
	case PhaseFetching:
		return "Fetching results..."
	default:
		return ""
	}
}

// StatusSink receives progress updates. It is called from the invoking
// goroutine and must not block.
type StatusSink func(Progress)

// Strategy is one way of executing a job.
type Strategy interface {
	Name() string
	Execute(ctx context.Context, job Job, report StatusSink) ([]model.ExternalRecord, error)
}

type InvokerOptions struct {
	PollInterval    time.Duration
	MaxPollAttempts int
	SyncTimeout     time.Duration
	Logger          *zap.Logger
}

// Invoker tries its strategies in order until one succeeds. An auth
// failure or a cancelled context ends the chain.
type Invoker struct {
	strategies []Strategy
	log        *zap.Logger
}

// NewInvoker returns the synchronous-then-asynchronous chain.
func NewInvoker(client *Client, opts InvokerOptions) *Invoker {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.MaxPollAttempts <= 0 {
		opts.MaxPollAttempts = DefaultMaxPollAttempts
	}
	if opts.SyncTimeout <= 0 {
		opts.SyncTimeout = DefaultSyncTimeout
	}
	return NewInvokerWith(log,
		&SyncStrategy{client: client, timeout: opts.SyncTimeout},
		&AsyncStrategy{client: client, interval: opts.PollInterval, maxAttempts: opts.MaxPollAttempts, log: log},
	)
}

// NewInvokerWith builds an invoker over an explicit strategy chain.
func NewInvokerWith(log *zap.Logger, strategies ...Strategy) *Invoker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Invoker{strategies: strategies, log: log}
}

// Invoke runs actorID with req and returns the raw dataset records.
func (inv *Invoker) Invoke(ctx context.Context, actorID string, creds Credentials, req model.JobRequest, sink StatusSink) ([]model.ExternalRecord, error) {
	job := Job{
		ActorID: strings.TrimSpace(actorID),
		Token:   strings.TrimSpace(creds.Token),
		Request: req,
	}
	if err := ValidateJob(job); err != nil {
		return nil, err
	}
	if sink == nil {
		sink = func(Progress) {}
	}

	var lastErr error
	for i, s := range inv.strategies {
		records, err := s.Execute(ctx, job, sink)
		if err == nil {
			inv.log.Info("job finished",
				zap.String("actor", job.ActorID),
				zap.String("strategy", s.Name()),
				zap.Int("records", len(records)))
			return records, nil
		}
		lastErr = err
		if IsAuth(err) || ctx.Err() != nil {
			return nil, err
		}
		if i+1 < len(inv.strategies) {
			inv.log.Warn("strategy failed, falling back",
				zap.String("from", s.Name()),
				zap.String("to", inv.strategies[i+1].Name()),
				zap.Error(err))
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no strategy configured")
	}
	return nil, lastErr
}

// ValidateJob checks the local inputs a job needs before any request.
func ValidateJob(job Job) error {
	if job.Token == "" {
		return &ValidationError{Field: "apiToken", Message: "Please enter your Apify API token in Settings"}
	}
	if job.ActorID == "" {
		return &ValidationError{Field: "actorId", Message: "Please enter the Actor ID in Settings"}
	}
	return nil
}
