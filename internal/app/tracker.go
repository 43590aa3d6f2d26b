// Package app owns the tracker's application state: the two record
// collections, their write-through persistence, and the navigation state the
// presentation layer renders from.
package app

import (
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"taqyim/internal/hr"
	"taqyim/internal/store"
)

// View identifies which top-level screen the presentation renders.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewEmployees View = "employees"
	ViewReports   View = "reports"
)

// Valid reports whether v names one of the three screens.
func (v View) Valid() bool {
	return v == ViewDashboard || v == ViewEmployees || v == ViewReports
}

// Tracker is the single owner of the employee and evaluation collections for
// the lifetime of the process. Every mutation is flushed to the store before
// the call returns; the in-memory copy stays authoritative between flushes.
type Tracker struct {
	mu     sync.RWMutex
	store  *store.LocalStore
	logger *zap.Logger
	now    func() time.Time

	employees   []hr.Employee
	evaluations []hr.Evaluation

	currentView        View
	selectedEmployeeID string

	lastID int64
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock substitutes the wall-clock source, used by tests and by anything
// that needs reproducible ids.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// New loads both collections from the store and seeds either one that comes
// back empty, persisting the seed immediately. Seeding happens here and only
// here, so non-empty user data is never overwritten later in the process.
func New(s *store.LocalStore, logger *zap.Logger, opts ...Option) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}

	t := &Tracker{
		store:       s,
		logger:      logger,
		now:         time.Now,
		currentView: ViewDashboard,
	}
	for _, opt := range opts {
		opt(t)
	}

	t.employees = store.Load(s, store.SlotEmployees, []hr.Employee{})
	t.evaluations = store.Load(s, store.SlotEvaluations, []hr.Evaluation{})

	if len(t.employees) == 0 {
		t.employees = hr.SeedEmployees()
		store.Save(s, store.SlotEmployees, t.employees)
		logger.Info("seeded employee collection", zap.Int("count", len(t.employees)))
	}
	if len(t.evaluations) == 0 {
		t.evaluations = hr.SeedEvaluations()
		store.Save(s, store.SlotEvaluations, t.evaluations)
		logger.Info("seeded evaluation collection", zap.Int("count", len(t.evaluations)))
	}

	return t
}

// Employees returns a copy of the employee collection in creation order.
func (t *Tracker) Employees() []hr.Employee {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]hr.Employee, len(t.employees))
	copy(out, t.employees)
	return out
}

// Evaluations returns a copy of the evaluation collection in creation order.
func (t *Tracker) Evaluations() []hr.Evaluation {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]hr.Evaluation, len(t.evaluations))
	copy(out, t.evaluations)
	return out
}

// AddEmployee assigns a fresh id to the given record, appends it and persists
// the full collection. Field validation is the caller's concern; the operation
// always succeeds.
func (t *Tracker) AddEmployee(input hr.Employee) hr.Employee {
	t.mu.Lock()
	defer t.mu.Unlock()

	input.ID = t.nextID()
	t.employees = append(t.employees, input)
	store.Save(t.store, store.SlotEmployees, t.employees)

	t.logger.Info("employee added",
		zap.String("id", input.ID),
		zap.String("department", string(input.Department)))
	return input
}

// AddEvaluation assigns a fresh id to the given record, appends it and
// persists the full collection.
func (t *Tracker) AddEvaluation(input hr.Evaluation) hr.Evaluation {
	t.mu.Lock()
	defer t.mu.Unlock()

	input.ID = t.nextID()
	t.evaluations = append(t.evaluations, input)
	store.Save(t.store, store.SlotEvaluations, t.evaluations)

	t.logger.Info("evaluation added",
		zap.String("id", input.ID),
		zap.String("employee_id", input.EmployeeID),
		zap.String("type", string(input.Type)),
		zap.Int("score", input.Score))
	return input
}

// nextID derives an id from the millisecond clock. Two creations inside the
// same millisecond would read an identical tick, so the generator bumps past
// the last issued value instead of reusing it. Callers must hold t.mu.
func (t *Tracker) nextID() string {
	id := t.now().UnixMilli()
	if id <= t.lastID {
		id = t.lastID + 1
	}
	t.lastID = id
	return strconv.FormatInt(id, 10)
}

// Reload re-reads both collections from the store, dropping the in-memory
// copies. Used when another process has written the data file; the tracker's
// own mutations never need it.
func (t *Tracker) Reload() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.employees = store.Load(t.store, store.SlotEmployees, t.employees)
	t.evaluations = store.Load(t.store, store.SlotEvaluations, t.evaluations)
}

// CurrentView returns the screen the presentation should render.
func (t *Tracker) CurrentView() View {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.currentView
}

// SetView switches the current screen. Unknown view names are ignored.
func (t *Tracker) SetView(v View) {
	if !v.Valid() {
		t.logger.Debug("ignoring unknown view", zap.String("view", string(v)))
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.currentView = v
}

// SelectEmployee records the selected employee and forces the employees view,
// where the profile is rendered.
func (t *Tracker) SelectEmployee(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.selectedEmployeeID = id
	t.currentView = ViewEmployees
}

// ClearSelection drops the selection and leaves the current view unchanged.
func (t *Tracker) ClearSelection() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selectedEmployeeID = ""
}

// SelectedEmployeeID returns the selected id; the boolean is false when
// nothing is selected.
func (t *Tracker) SelectedEmployeeID() (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.selectedEmployeeID, t.selectedEmployeeID != ""
}

// SelectedEmployee resolves the selection against the employee collection.
// A selection pointing at a record that no longer resolves behaves like no
// selection.
func (t *Tracker) SelectedEmployee() (hr.Employee, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.selectedEmployeeID == "" {
		return hr.Employee{}, false
	}
	return hr.FindEmployee(t.employees, t.selectedEmployeeID)
}
