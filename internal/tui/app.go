package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cli/go-gh/v2/pkg/browser"
	"go.uber.org/zap"

	"github.com/altinukshini/leadfinder/internal/api"
	"github.com/altinukshini/leadfinder/internal/cache"
	"github.com/altinukshini/leadfinder/internal/config"
	"github.com/altinukshini/leadfinder/internal/export"
	"github.com/altinukshini/leadfinder/internal/model"
	"github.com/altinukshini/leadfinder/internal/ops"
	"github.com/altinukshini/leadfinder/internal/session"
	"github.com/altinukshini/leadfinder/internal/tui/cacheview"
	"github.com/altinukshini/leadfinder/internal/tui/confirm"
	"github.com/altinukshini/leadfinder/internal/tui/filterform"
	"github.com/altinukshini/leadfinder/internal/tui/infoview"
	"github.com/altinukshini/leadfinder/internal/tui/results"
	"github.com/altinukshini/leadfinder/internal/tui/settingsview"
	"github.com/altinukshini/leadfinder/internal/tui/websiteview"
	"github.com/altinukshini/leadfinder/internal/ui"
)

type View int

const (
	ViewFilters View = iota
	ViewWebsite
	ViewResults
	ViewSaved
	ViewSettings
)

const toastDuration = 3 * time.Second

const (
	actionDeleteRuns = "delete-runs"
	actionClearRuns  = "clear-runs"
)

type toast struct {
	id   int
	text string
	err  bool
}

type App struct {
	cfg     config.Config
	cfgPath string
	invoker Invoker
	runs    *cache.RunCache
	log     *zap.Logger
	sess    *session.Session

	// Views
	filterForm    filterform.Model
	websiteView   websiteview.Model
	resultsView   results.Model
	savedView     cacheview.Model
	settingsView  settingsview.Model
	infoView      infoview.Model
	confirmDialog confirm.Model
	spinner       spinner.Model

	// State
	currentView View
	width       int
	height      int
	status      string
	showHelp    bool
	showDetail  bool
	toast       toast
	toastSeq    int

	// Job in flight
	running      bool
	jobID        int
	jobCh        chan tea.Msg
	cancelJob    context.CancelFunc
	jobCancelled bool
	jobStarted   time.Time
	elapsed      time.Duration
	progress     string
	runStatus    model.RunStatus
	jobSummary   string

	// Side effects, replaced in tests
	now          func() time.Time
	copyEmails   func([]model.Lead) (int, error)
	copyEmail    func(string) error
	openURL      func(string) error
	saveSettings func(config.Config) error
	exportDir    string
}

func NewApp(cfg config.Config, cfgPath string, invoker Invoker, runs *cache.RunCache, log *zap.Logger) App {
	if log == nil {
		log = zap.NewNop()
	}
	sess := session.New()
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(ui.ColorPrimary)

	status := "Set filters and press enter to search"
	if cfg.Validate() != nil {
		status = "Add your API token and actor id in Settings [5]"
	}

	return App{
		cfg:          cfg,
		cfgPath:      cfgPath,
		invoker:      invoker,
		runs:         runs,
		log:          log,
		sess:         sess,
		filterForm:   filterform.New(cfg.MaxItems),
		websiteView:  websiteview.New(),
		resultsView:  results.New(sess),
		savedView:    cacheview.New(),
		settingsView: settingsview.New(cfg),
		infoView:     infoview.New(true),
		spinner:      sp,
		currentView:  ViewFilters,
		status:       status,
		now:          time.Now,
		copyEmails:   ops.CopyEmails,
		copyEmail:    ops.CopyEmail,
		openURL:      browser.New("", io.Discard, io.Discard).Browse,
		saveSettings: persistSettings(cfgPath),
	}
}

// persistSettings stores the token in the keychain and the rest in the
// settings file.
func persistSettings(path string) func(config.Config) error {
	return func(cfg config.Config) error {
		if err := config.SetToken(cfg.APIToken); err != nil {
			return fmt.Errorf("store token: %w", err)
		}
		if path == "" {
			return nil
		}
		return config.SaveAtomic(path, cfg)
	}
}

func (a App) Init() tea.Cmd {
	return a.loadRecords()
}

// --- Commands ---

func (a App) loadRecords() tea.Cmd {
	runs := a.runs
	return func() tea.Msg {
		if runs == nil {
			return ui.RecordsLoadedMsg{}
		}
		recs, err := runs.List(context.Background())
		return ui.RecordsLoadedMsg{Records: recs, Err: err}
	}
}

func (a App) removeRecords(ids []string) tea.Cmd {
	runs, log := a.runs, a.log
	return func() tea.Msg {
		if runs == nil {
			return ui.RecordsRemovedMsg{}
		}
		res, err := ops.RemoveRecords(context.Background(), runs, ids, nil)
		if err == nil && len(res.Errors) > 0 {
			err = errors.Join(res.Errors...)
		}
		if err != nil {
			log.Warn("remove saved runs", zap.Int("failed", res.Failed), zap.Error(err))
		}
		return ui.RecordsRemovedMsg{Completed: res.Completed, Failed: res.Failed, Err: err}
	}
}

func (a App) clearRecords(n int) tea.Cmd {
	runs := a.runs
	return func() tea.Msg {
		if runs == nil {
			return ui.RecordsRemovedMsg{}
		}
		if err := runs.Clear(context.Background()); err != nil {
			return ui.RecordsRemovedMsg{Failed: n, Err: err}
		}
		return ui.RecordsRemovedMsg{Completed: n}
	}
}

func (a App) storeSettings(cfg config.Config) tea.Cmd {
	save := a.saveSettings
	return func() tea.Msg {
		return ui.SettingsSavedMsg{Err: save(cfg)}
	}
}

// showToast replaces the current toast and schedules its removal.
func (a *App) showToast(text string, isErr bool) tea.Cmd {
	a.toastSeq++
	a.toast = toast{id: a.toastSeq, text: text, err: isErr}
	id := a.toastSeq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return ui.ToastExpiredMsg{ID: id}
	})
}

// --- Jobs ---

func (a App) startJob(req model.JobRequest) (tea.Model, tea.Cmd) {
	if a.running {
		return &a, nil
	}
	if err := a.cfg.Validate(); err != nil {
		a.switchView(ViewSettings)
		return &a, a.showToast(err.Error(), true)
	}

	summary := ops.Summary(req)
	ctx, cancel := context.WithCancel(context.Background())
	a.jobID++
	a.jobCh = make(chan tea.Msg, 16)
	a.cancelJob = cancel
	a.jobCancelled = false
	a.running = true
	a.jobStarted = a.now()
	a.elapsed = 0
	a.progress = "Starting search..."
	a.runStatus = ""
	a.jobSummary = summary
	a.showDetail = false
	a.status = "Searching..."
	a.log.Info("search started", zap.Int("job", a.jobID), zap.String("summary", summary))

	return &a, tea.Batch(
		a.spinner.Tick,
		a.runJob(ctx, a.jobID, a.jobCh, req, summary),
		waitForJob(a.jobCh),
		jobTick(a.jobID),
	)
}

func (a *App) cancelRunningJob() {
	if a.cancelJob != nil {
		a.jobCancelled = true
		a.cancelJob()
		a.progress = "Cancelling..."
	}
}

func (a App) finishJob(msg ui.JobDoneMsg) (tea.Model, tea.Cmd) {
	if !a.running || msg.JobID != a.jobID {
		return &a, nil
	}
	a.running = false
	if a.cancelJob != nil {
		a.cancelJob()
		a.cancelJob = nil
	}

	if msg.Err != nil {
		if a.jobCancelled || errors.Is(msg.Err, context.Canceled) {
			a.status = "Search cancelled"
			return &a, a.showToast("Search cancelled", true)
		}
		// A failed search yields no leads, so earlier results are dropped too.
		a.status = "Search failed"
		a.sess.Reset()
		var ve *api.ValidationError
		if errors.As(msg.Err, &ve) {
			a.switchView(ViewSettings)
		}
		return &a, tea.Batch(a.resultsView.Reset(), a.showToast(msg.Err.Error(), true))
	}

	runID := ""
	if msg.Record != nil {
		runID = msg.Record.ID
	}
	a.sess.SetResults(msg.Leads, msg.Summary, runID)
	cmds := []tea.Cmd{a.resultsView.Reset(), a.loadRecords()}
	a.currentView = ViewResults

	stats := a.sess.Stats()
	a.status = fmt.Sprintf("%d leads, %d with email", stats.Total, stats.WithEmail)
	if msg.SaveErr != nil {
		a.status += " | not saved: " + msg.SaveErr.Error()
	}
	if stats.Total == 0 {
		cmds = append(cmds, a.showToast("No results found. Try adjusting your filters.", true))
	} else {
		cmds = append(cmds, a.showToast(fmt.Sprintf("Found %d leads", stats.Total), false))
	}
	return &a, tea.Batch(cmds...)
}

// --- Update ---

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Confirm dialog result arrives after the dialog has closed itself.
	if result, ok := msg.(confirm.ResultMsg); ok {
		if !result.Confirmed {
			return &a, nil
		}
		switch result.Action {
		case actionDeleteRuns:
			ids := result.Data.([]string)
			a.status = fmt.Sprintf("Deleting %d saved runs...", len(ids))
			a.savedView.ClearSelection()
			return &a, a.removeRecords(ids)
		case actionClearRuns:
			a.status = "Clearing saved runs..."
			return &a, a.clearRecords(result.Data.(int))
		}
		return &a, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && a.confirmDialog.IsActive() {
		var cmd tea.Cmd
		a.confirmDialog, cmd = a.confirmDialog.Update(keyMsg)
		return &a, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.propagateSize()
		return &a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case spinner.TickMsg:
		if !a.running {
			return &a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return &a, cmd

	case ui.JobProgressMsg:
		if !a.running || msg.JobID != a.jobID {
			return &a, nil
		}
		a.progress = msg.Progress.String()
		a.runStatus = msg.Progress.RunStatus
		return &a, waitForJob(a.jobCh)

	case ui.JobTickMsg:
		if !a.running || msg.JobID != a.jobID {
			return &a, nil
		}
		a.elapsed = a.now().Sub(a.jobStarted)
		return &a, jobTick(a.jobID)

	case ui.JobDoneMsg:
		return a.finishJob(msg)

	case ui.ToastExpiredMsg:
		if msg.ID == a.toast.id {
			a.toast = toast{}
		}
		return &a, nil

	case ui.RecordsLoadedMsg:
		if msg.Err != nil {
			a.log.Warn("load saved runs", zap.Error(msg.Err))
		}
		var cmd tea.Cmd
		a.savedView, cmd = a.savedView.Update(msg)
		return &a, cmd

	case ui.RecordsRemovedMsg:
		var cmd tea.Cmd
		if msg.Err != nil {
			a.status = fmt.Sprintf("Removed %d, %d failed", msg.Completed, msg.Failed)
			cmd = a.showToast(msg.Err.Error(), true)
		} else {
			a.status = fmt.Sprintf("Removed %d saved runs", msg.Completed)
			cmd = a.showToast("Saved runs removed", false)
		}
		return &a, tea.Batch(cmd, a.loadRecords())

	case ui.SettingsSavedMsg:
		if msg.Err != nil {
			a.log.Error("save settings", zap.Error(msg.Err))
			return &a, a.showToast("Settings not saved: "+msg.Err.Error(), true)
		}
		a.status = "Settings saved"
		return &a, a.showToast("Settings saved!", false)

	case filterform.SubmitMsg:
		return a.startJob(ops.BuildRequest(msg.Filters))

	case websiteview.SubmitMsg:
		req, err := ops.BuildWebsiteRequest(msg.Input, a.filterForm.Filters())
		if err != nil {
			return &a, a.showToast(err.Error(), true)
		}
		return a.startJob(req)

	case settingsview.SaveMsg:
		a.cfg = msg.Config
		return &a, a.storeSettings(msg.Config)
	}

	// Anything else (cursor blinks and the like) belongs to the visible view.
	return &a, a.updateActive(msg)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		if a.running {
			a.cancelRunningJob()
		}
		return &a, tea.Quit
	}

	// Help overlay dismisses on any key
	if a.showHelp {
		a.showHelp = false
		return &a, nil
	}

	if a.running {
		if msg.String() == "esc" {
			a.cancelRunningJob()
		}
		return &a, nil
	}

	if a.showDetail {
		return a.handleDetailKey(msg)
	}

	// Text inputs own the keyboard while focused.
	if a.isEditing() {
		return &a, a.updateActive(msg)
	}

	switch msg.String() {
	case "q":
		return &a, tea.Quit
	case "?":
		a.showHelp = true
		return &a, nil
	case "1":
		return &a, a.switchView(ViewFilters)
	case "2":
		return &a, a.switchView(ViewWebsite)
	case "3":
		return &a, a.switchView(ViewResults)
	case "4":
		return &a, a.switchView(ViewSaved)
	case "5":
		return &a, a.switchView(ViewSettings)
	}

	switch a.currentView {
	case ViewResults:
		if m, cmd, handled := a.handleResultsKey(msg); handled {
			return m, cmd
		}
	case ViewSaved:
		if m, cmd, handled := a.handleSavedKey(msg); handled {
			return m, cmd
		}
	}

	return &a, a.updateActive(msg)
}

func (a App) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "enter":
		lead := a.resultsView.SelectedLead()
		if lead == nil {
			return &a, nil, true
		}
		a.infoView.SetLead(*lead, a.resultsView.SelectedPos())
		a.showDetail = true
		return &a, nil, true
	case "c":
		return &a, a.copyAll(), true
	case "y":
		return &a, a.copySelected(a.resultsView.SelectedLead()), true
	case "o":
		return &a, a.openLinkedIn(a.resultsView.SelectedLead()), true
	case "e":
		return &a, a.exportCSV(), true
	}
	return &a, nil, false
}

func (a App) handleSavedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "enter":
		rec := a.savedView.SelectedRecord()
		if rec == nil {
			return &a, nil, true
		}
		a.sess.LoadRecord(*rec)
		cmd := a.resultsView.Reset()
		a.currentView = ViewResults
		a.status = fmt.Sprintf("Saved run from %s", rec.Timestamp.Local().Format("2006-01-02 15:04"))
		return &a, cmd, true
	case "r":
		a.status = "Loading saved runs..."
		return &a, a.loadRecords(), true
	case "d":
		ids := a.savedView.SelectedIDs()
		if len(ids) == 0 {
			rec := a.savedView.SelectedRecord()
			if rec == nil {
				return &a, nil, true
			}
			ids = []string{rec.ID}
		}
		noun := "this saved run"
		if len(ids) > 1 {
			noun = fmt.Sprintf("%d saved runs", len(ids))
		}
		a.confirmDialog = confirm.New("Delete saved runs", fmt.Sprintf("Delete %s?", noun), actionDeleteRuns, ids)
		return &a, nil, true
	case "x":
		n := len(a.savedView.Records())
		if n == 0 {
			return &a, a.showToast("Nothing to clear", true), true
		}
		a.confirmDialog = confirm.New("Clear saved runs", fmt.Sprintf("Remove all %d saved runs?", n), actionClearRuns, n)
		return &a, nil, true
	}
	return &a, nil, false
}

func (a App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "q":
		a.showDetail = false
		return &a, nil
	case "y":
		return &a, a.copySelected(a.infoView.Lead())
	case "o":
		return &a, a.openLinkedIn(a.infoView.Lead())
	}
	var cmd tea.Cmd
	a.infoView, cmd = a.infoView.Update(msg)
	return &a, cmd
}

// --- Actions ---

func (a *App) copyAll() tea.Cmd {
	n, err := a.copyEmails(a.sess.Visible())
	switch {
	case errors.Is(err, ops.ErrNoEmails):
		return a.showToast("No emails to copy", true)
	case err != nil:
		return a.showToast(err.Error(), true)
	}
	return a.showToast(fmt.Sprintf("%d emails copied!", n), false)
}

func (a *App) copySelected(lead *model.Lead) tea.Cmd {
	if lead == nil {
		return a.showToast("No emails to copy", true)
	}
	err := a.copyEmail(lead.Email)
	switch {
	case errors.Is(err, ops.ErrNoEmails):
		return a.showToast("No email for this lead", true)
	case err != nil:
		return a.showToast(err.Error(), true)
	}
	return a.showToast("Email copied!", false)
}

func (a *App) openLinkedIn(lead *model.Lead) tea.Cmd {
	if lead == nil || lead.LinkedIn == "" {
		return a.showToast("No LinkedIn profile for this lead", true)
	}
	url := lead.LinkedIn
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}
	if err := a.openURL(url); err != nil {
		return a.showToast("Could not open browser: "+err.Error(), true)
	}
	return a.showToast("Opened LinkedIn profile", false)
}

func (a *App) exportCSV() tea.Cmd {
	leads := a.sess.Visible()
	if len(leads) == 0 {
		return a.showToast("No data to export", true)
	}
	path, err := export.WriteFile(a.exportDir, export.FileName(a.now()), leads)
	if err != nil {
		a.log.Error("export csv", zap.Error(err))
		return a.showToast(err.Error(), true)
	}
	a.status = "Exported to " + path
	return a.showToast("CSV exported!", false)
}

// --- Helpers ---

func (a *App) switchView(v View) tea.Cmd {
	a.showDetail = false
	if a.currentView == v {
		return nil
	}
	a.currentView = v
	switch v {
	case ViewFilters:
		a.status = "Set filters and press enter to search"
	case ViewWebsite:
		a.status = "Paste company websites, then ctrl+s to search"
	case ViewResults:
		stats := a.sess.Stats()
		a.status = fmt.Sprintf("%d leads, %d with email", stats.Total, stats.WithEmail)
	case ViewSaved:
		a.status = "Saved runs"
		return a.loadRecords()
	case ViewSettings:
		a.status = "Settings"
		a.settingsView.Reset(a.cfg)
	}
	return nil
}

func (a App) isEditing() bool {
	switch a.currentView {
	case ViewFilters:
		return a.filterForm.IsEditing()
	case ViewWebsite:
		return a.websiteView.IsEditing()
	case ViewResults:
		return a.resultsView.IsSearching()
	case ViewSaved:
		return a.savedView.IsFiltering()
	case ViewSettings:
		return a.settingsView.IsEditing()
	}
	return false
}

func (a *App) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case ViewFilters:
		a.filterForm, cmd = a.filterForm.Update(msg)
	case ViewWebsite:
		a.websiteView, cmd = a.websiteView.Update(msg)
	case ViewResults:
		a.resultsView, cmd = a.resultsView.Update(msg)
	case ViewSaved:
		a.savedView, cmd = a.savedView.Update(msg)
	case ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	}
	return cmd
}

func (a *App) propagateSize() {
	// header(1) + tabs(1) + status(1) + pane border(2)
	contentH := max(a.height-5, 1)
	contentW := max(a.width-4, 1)

	a.filterForm.SetSize(contentW, contentH)
	a.websiteView.SetSize(contentW, contentH)
	size := tea.WindowSizeMsg{Width: contentW, Height: contentH}
	a.resultsView, _ = a.resultsView.Update(size)
	a.savedView, _ = a.savedView.Update(size)
	a.infoView, _ = a.infoView.Update(size)
}

// --- View ---

func (a App) View() string {
	header := RenderHeader(a.cfg.ActorID, a.cfg.APIToken != "", a.width)
	tabs := a.renderTabs()

	contentH := max(a.height-5, 1)
	style := ui.StylePaneFocused.Width(max(a.width-2, 1)).Height(contentH)

	var body string
	switch {
	case a.running:
		body = a.renderRunning()
	case a.showDetail:
		body = a.infoView.View()
	default:
		switch a.currentView {
		case ViewFilters:
			body = a.filterForm.View()
		case ViewWebsite:
			body = a.websiteView.View()
		case ViewResults:
			body = a.resultsView.View()
		case ViewSaved:
			body = a.savedView.View()
		case ViewSettings:
			body = a.settingsView.View()
		}
	}
	content := style.Render(body)

	if a.showHelp {
		content = a.renderHelp()
	} else if a.confirmDialog.IsActive() {
		content = a.confirmDialog.View()
	}

	statusBar := RenderStatusBar(a.status, a.contextHints(), a.renderToast(), a.width)

	// Hard clamp: header(1) + tabs(1) + statusbar(1) = 3 lines of chrome.
	maxContentLines := a.height - 3
	if maxContentLines > 0 {
		lines := strings.Split(content, "\n")
		if len(lines) > maxContentLines {
			content = strings.Join(lines[:maxContentLines], "\n")
		}
	}

	return header + "\n" + tabs + "\n" + content + "\n" + statusBar
}

func (a App) renderToast() string {
	if a.toast.text == "" {
		return ""
	}
	if a.toast.err {
		return ui.StyleToastError.Render(a.toast.text)
	}
	return ui.StyleToastSuccess.Render(a.toast.text)
}

func (a App) renderTabs() string {
	tabStyle := lipgloss.NewStyle().Padding(0, 2)
	activeTab := tabStyle.Bold(true).Foreground(ui.ColorPrimary)
	inactiveTab := tabStyle.Foreground(ui.ColorMuted)

	resultsLabel := "[3] Results"
	if n := len(a.sess.All()); n > 0 {
		resultsLabel = fmt.Sprintf("[3] Results (%d)", n)
	}
	labels := []string{"[1] Filters", "[2] Website", resultsLabel, "[4] Saved", "[5] Settings"}

	tabs := make([]string, len(labels))
	for i, l := range labels {
		if View(i) == a.currentView {
			tabs[i] = activeTab.Render(l)
		} else {
			tabs[i] = inactiveTab.Render(l)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a App) contextHints() string {
	if a.running {
		return "esc:stop waiting  ctrl+c:quit"
	}
	if a.showDetail {
		return "j/k:scroll  y:copy email  o:linkedin  esc:back"
	}
	if a.isEditing() {
		switch a.currentView {
		case ViewResults:
			return "enter:keep  esc:clear"
		case ViewWebsite:
			return "ctrl+s:search  esc:done"
		case ViewSaved:
			return "enter:apply  esc:cancel"
		}
		return "tab:next field  enter:search  esc:done"
	}

	switch a.currentView {
	case ViewFilters:
		return "j/k:field  h/l:option  space:toggle  i:edit  c:clear  enter:search  ?:help"
	case ViewWebsite:
		return "enter:edit  c:clear  ctrl+s:search  ?:help"
	case ViewResults:
		return "enter:details  /:search  n/p:page  c:copy all  y:copy  o:linkedin  e:export  ?:help"
	case ViewSaved:
		return "enter:load  space:select  d:delete  x:clear all  s:sort  r:refresh  ?:help"
	case ViewSettings:
		return "enter:edit  ctrl+s:save  ?:help"
	}
	return "?:help  q:quit"
}

func (a App) renderHelp() string {
	contentH := max(a.height-5, 1)

	bold := lipgloss.NewStyle().Bold(true)
	key := lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true).Width(14)
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("#D1D5DB"))

	row := func(k, d string) string {
		return "  " + key.Render(k) + desc.Render(d) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n" + bold.Render("  Navigation") + "\n\n")
	b.WriteString(row("1-5", "Switch tab: Filters, Website, Results, Saved, Settings"))
	b.WriteString(row("esc", "Stop editing / back / stop waiting for a search"))
	b.WriteString(row("j / k", "Move down / up"))
	b.WriteString(row("q", "Quit"))

	b.WriteString("\n" + bold.Render("  Filters") + "\n\n")
	b.WriteString(row("tab / j / k", "Next / previous field"))
	b.WriteString(row("h / l", "Previous / next option"))
	b.WriteString(row("space", "Toggle option"))
	b.WriteString(row("i", "Edit text field"))
	b.WriteString(row("c", "Clear all filters"))
	b.WriteString(row("enter", "Run search"))

	b.WriteString("\n" + bold.Render("  Website") + "\n\n")
	b.WriteString(row("enter / i", "Edit domain list"))
	b.WriteString(row("ctrl+s", "Run search for the listed domains"))

	b.WriteString("\n" + bold.Render("  Results") + "\n\n")
	b.WriteString(row("enter", "Lead details"))
	b.WriteString(row("/", "Search results (F toggles fuzzy)"))
	b.WriteString(row("n / p", "Next / previous page"))
	b.WriteString(row("c", "Copy all emails"))
	b.WriteString(row("y", "Copy selected email"))
	b.WriteString(row("o", "Open LinkedIn profile"))
	b.WriteString(row("e", "Export CSV"))

	b.WriteString("\n" + bold.Render("  Saved runs") + "\n\n")
	b.WriteString(row("enter", "Load run into Results"))
	b.WriteString(row("space", "Toggle select"))
	b.WriteString(row("d", "Delete run (or all selected)"))
	b.WriteString(row("x", "Clear all saved runs"))
	b.WriteString(row("s", "Cycle sort (newest / leads / emails)"))

	b.WriteString("\n" + lipgloss.NewStyle().Foreground(ui.ColorMuted).Render("  Press any key to close") + "\n")

	style := ui.StylePaneFocused.Width(max(a.width-2, 1)).Height(contentH)
	return style.Render(b.String())
}
