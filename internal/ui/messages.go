package ui

import (
	"github.com/altinukshini/leadfinder/internal/api"
	"github.com/altinukshini/leadfinder/internal/model"
)

// Job lifecycle messages. JobID tells a stale job's messages apart from
// the current one's.
type JobProgressMsg struct {
	JobID    int
	Progress api.Progress
}

type JobDoneMsg struct {
	JobID   int
	Leads   []model.Lead
	Record  *model.RunRecord // nil when saving the run failed
	Summary string
	Err     error
	SaveErr error
}

type JobTickMsg struct {
	JobID int
}

// Saved runs messages
type RecordsLoadedMsg struct {
	Records []model.RunRecord
	Err     error
}

type RecordsRemovedMsg struct {
	Completed int
	Failed    int
	Err       error
}

type SettingsSavedMsg struct {
	Err error
}

// Action result messages
type ActionResultMsg struct {
	Action  string
	Message string
	Err     error
}

type ToastExpiredMsg struct {
	ID int
}

type StatusMsg struct {
	Text string
}
