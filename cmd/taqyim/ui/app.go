package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"taqyim/internal/app"
	"taqyim/internal/config"
	"taqyim/internal/hr"
	"taqyim/internal/report"
)

// Model is the bubbletea model for the interactive interface. Which screen is
// shown is owned by the coordinator, not the model: the TUI reads
// tracker.CurrentView and tracker.SelectedEmployee on every render, the same
// way the CLI commands read the collections.
type Model struct {
	tracker *app.Tracker
	styles  Styles
	arabic  bool
	logger  *zap.Logger

	width  int
	height int

	// Employees screen
	list      table.Model
	search    textinput.Model
	searching bool
	deptIndex int // 0 = all, then Departments() order

	// Reports screen
	reportMonth string

	// Modal form, nil when closed
	form *form

	status string

	watcher *storeWatcher
}

// NewModel builds the interactive model over an already-initialized tracker.
func NewModel(tracker *app.Tracker, cfg config.UIConfig, watcher *storeWatcher, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	search := textinput.New()
	search.Placeholder = "search by name"
	search.CharLimit = 64

	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Position", Width: 22},
		{Title: "Department", Width: 14},
		{Title: "Hired", Width: 12},
	}
	list := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	m := Model{
		tracker:     tracker,
		styles:      DefaultStyles(cfg.Theme),
		arabic:      cfg.ArabicLabels,
		logger:      logger,
		list:        list,
		search:      search,
		reportMonth: time.Now().Format("2006-01"),
		watcher:     watcher,
	}
	m.refreshList()
	return m
}

// Run starts the interactive interface. dataPath is watched so writes from
// another taqyim process show up without restarting.
func Run(tracker *app.Tracker, dataPath string, cfg config.UIConfig, logger *zap.Logger) error {
	watcher, err := newStoreWatcher(dataPath)
	if err != nil {
		// The interface works without the watcher; it just will not see
		// external writes until restarted.
		if logger != nil {
			logger.Warn("data file watcher unavailable", zap.Error(err))
		}
		watcher = nil
	}
	if watcher != nil {
		defer watcher.Close()
	}

	m := NewModel(tracker, cfg, watcher, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// Init starts the watcher loop.
func (m Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return waitForStoreChange(m.watcher)
}

// Update routes messages: window sizing, external store changes, the modal
// form when one is open, the search input while it has focus, then the
// per-screen key map.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetHeight(maxInt(6, msg.Height-12))
		return m, nil

	case storeChangedMsg:
		m.tracker.Reload()
		m.refreshList()
		m.status = "Data reloaded from disk."
		if m.watcher == nil {
			return m, nil
		}
		return m, waitForStoreChange(m.watcher)

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

// updateSearch feeds keys to the search input until enter or esc leaves it.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refreshList()
	return m, cmd
}

// updateKeys is the normal-mode key map.
func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "1", "d":
		m.tracker.SetView(app.ViewDashboard)
		return m, nil
	case "2", "e":
		m.tracker.SetView(app.ViewEmployees)
		return m, nil
	case "3", "r":
		m.tracker.SetView(app.ViewReports)
		return m, nil
	}

	switch m.tracker.CurrentView() {
	case app.ViewEmployees:
		if _, selected := m.tracker.SelectedEmployeeID(); selected {
			return m.updateProfileKeys(msg)
		}
		return m.updateListKeys(msg)
	case app.ViewReports:
		return m.updateReportKeys(msg)
	}

	return m, nil
}

func (m Model) updateListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case "f":
		// Cycle: all -> IT -> HR -> Finance -> Sales -> Operations -> all
		m.deptIndex = (m.deptIndex + 1) % (len(hr.Departments()) + 1)
		m.refreshList()
		return m, nil
	case "a":
		m.form = newEmployeeForm()
		return m, m.form.focusFirst()
	case "enter":
		if row := m.list.SelectedRow(); row != nil {
			if id := m.rowID(m.list.Cursor()); id != "" {
				m.tracker.SelectEmployee(id)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.tracker.ClearSelection()
		return m, nil
	case "y":
		if emp, ok := m.tracker.SelectedEmployee(); ok {
			m.form = newEvaluationForm(emp, hr.EvaluationDaily)
			return m, m.form.focusFirst()
		}
	case "m":
		if emp, ok := m.tracker.SelectedEmployee(); ok {
			m.form = newEvaluationForm(emp, hr.EvaluationMonthly)
			return m, m.form.focusFirst()
		}
	}
	return m, nil
}

func (m Model) updateReportKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.reportMonth = shiftMonth(m.reportMonth, -1)
	case "right", "l":
		m.reportMonth = shiftMonth(m.reportMonth, 1)
	}
	return m, nil
}

// updateForm drives the modal create form.
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = nil
		return m, nil
	case "tab", "down":
		return m, m.form.next()
	case "shift+tab", "up":
		return m, m.form.prev()
	case "enter":
		if !m.form.onLastField() {
			return m, m.form.next()
		}
		status, err := m.form.submit(m.tracker)
		if err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		m.form = nil
		m.status = status
		m.refreshList()
		return m, nil
	}

	cmd := m.form.update(msg)
	return m, cmd
}

// rowID maps a list cursor back onto the filtered employee slice.
func (m *Model) rowID(cursor int) string {
	filtered := m.filteredEmployees()
	if cursor < 0 || cursor >= len(filtered) {
		return ""
	}
	return filtered[cursor].ID
}

func (m *Model) departmentFilter() string {
	if m.deptIndex == 0 {
		return "all"
	}
	return string(hr.Departments()[m.deptIndex-1])
}

func (m *Model) filteredEmployees() []hr.Employee {
	return report.FilterEmployees(m.tracker.Employees(), m.search.Value(), m.departmentFilter())
}

// refreshList rebuilds the employee table rows from the current filter.
func (m *Model) refreshList() {
	filtered := m.filteredEmployees()
	rows := make([]table.Row, 0, len(filtered))
	for _, emp := range filtered {
		rows = append(rows, table.Row{
			emp.Name,
			emp.Position,
			DeptLabel(emp.Department, m.arabic),
			emp.HiringDate,
		})
	}
	m.list.SetRows(rows)
	if m.list.Cursor() >= len(rows) {
		m.list.SetCursor(0)
	}
}

// shiftMonth moves a YYYY-MM key by delta months. Unparseable keys are
// returned unchanged.
func shiftMonth(month string, delta int) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.AddDate(0, delta, 0).Format("2006-01")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// todayISO returns the current ISO date.
func todayISO() string {
	return time.Now().Format("2006-01-02")
}
