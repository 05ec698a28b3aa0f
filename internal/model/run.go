package model

import "time"

// RunStatus is the lifecycle state reported by the actor-runs endpoint.
type RunStatus string

const (
	RunStatusReady     RunStatus = "READY"
	RunStatusRunning   RunStatus = "RUNNING"
	RunStatusSucceeded RunStatus = "SUCCEEDED"
	RunStatusFailed    RunStatus = "FAILED"
	RunStatusAborting  RunStatus = "ABORTING"
	RunStatusAborted   RunStatus = "ABORTED"
	RunStatusTimingOut RunStatus = "TIMING-OUT"
	RunStatusTimedOut  RunStatus = "TIMED-OUT"
)

// Pending reports whether the run has not reached a terminal state yet.
func (s RunStatus) Pending() bool {
	return s == RunStatusReady || s == RunStatusRunning
}

func (s RunStatus) Succeeded() bool {
	return s == RunStatusSucceeded
}

// ActorRun is the subset of a remote run we care about.
type ActorRun struct {
	ID               string    `json:"id"`
	ActID            string    `json:"actId"`
	Status           RunStatus `json:"status"`
	DefaultDatasetID string    `json:"defaultDatasetId"`
	StartedAt        time.Time `json:"startedAt"`
	FinishedAt       time.Time `json:"finishedAt"`
}

// ActorRunResponse wraps every run payload returned by the API.
type ActorRunResponse struct {
	Data ActorRun `json:"data"`
}

func (r ActorRun) Duration() time.Duration {
	if r.FinishedAt.IsZero() || r.StartedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// RunRecord is a saved snapshot of one finished search.
type RunRecord struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Count         int       `json:"count"`
	FilterSummary string    `json:"filterSummary"`
	Leads         []Lead    `json:"leads"`
}

// WithEmail counts leads that carry an email address.
func (r RunRecord) WithEmail() int {
	n := 0
	for _, l := range r.Leads {
		if l.Email != "" {
			n++
		}
	}
	return n
}
