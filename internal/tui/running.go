package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/altinukshini/leadfinder/internal/api"
	"github.com/altinukshini/leadfinder/internal/model"
	"github.com/altinukshini/leadfinder/internal/normalize"
	"github.com/altinukshini/leadfinder/internal/ui"
)

// Invoker runs one remote job. *api.Invoker satisfies it.
type Invoker interface {
	Invoke(ctx context.Context, actorID string, creds api.Credentials, req model.JobRequest, sink api.StatusSink) ([]model.ExternalRecord, error)
}

// runJob invokes the actor, normalizes the records and saves the run.
// Progress goes to ch, which is closed when the job returns.
func (a App) runJob(ctx context.Context, id int, ch chan tea.Msg, req model.JobRequest, summary string) tea.Cmd {
	inv, runs, log := a.invoker, a.runs, a.log
	actorID := a.cfg.ActorID
	creds := api.Credentials{Token: a.cfg.APIToken}

	return func() tea.Msg {
		defer close(ch)
		sink := func(p api.Progress) {
			select {
			case ch <- ui.JobProgressMsg{JobID: id, Progress: p}:
			default:
			}
		}

		records, err := inv.Invoke(ctx, actorID, creds, req, sink)
		if err != nil {
			log.Warn("search failed", zap.String("summary", summary), zap.Error(err))
			return ui.JobDoneMsg{JobID: id, Summary: summary, Err: err}
		}

		done := ui.JobDoneMsg{JobID: id, Leads: normalize.All(records), Summary: summary}
		if runs != nil {
			rec, err := runs.Append(context.Background(), done.Leads, summary)
			if err != nil {
				log.Error("save run", zap.Error(err))
				done.SaveErr = err
			} else {
				done.Record = &rec
			}
		}
		return done
	}
}

func waitForJob(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func jobTick(id int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return ui.JobTickMsg{JobID: id}
	})
}

func formatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	if mins := secs / 60; mins > 0 {
		return fmt.Sprintf("Elapsed: %dm %ds", mins, secs%60)
	}
	return fmt.Sprintf("Elapsed: %ds", secs)
}

func (a App) renderRunning() string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s %s\n\n", a.spinner.View(), lipgloss.NewStyle().Bold(true).Render(a.progress)))
	if a.runStatus != "" {
		b.WriteString("  Run status: " + ui.RunStatusStyle(string(a.runStatus)).Render(string(a.runStatus)) + "\n")
	}
	if a.jobSummary != "" {
		b.WriteString("  " + ui.StyleMuted.Render(a.jobSummary) + "\n")
	}
	b.WriteString("  " + ui.StyleInfo.Render(formatElapsed(a.elapsed)) + "\n\n")
	b.WriteString("  " + ui.StyleMuted.Render("Large searches can take several minutes. esc stops waiting; the remote run keeps going.") + "\n")
	return b.String()
}
