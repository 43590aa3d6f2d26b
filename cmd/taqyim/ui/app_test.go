package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taqyim/internal/app"
	"taqyim/internal/config"
	"taqyim/internal/store"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	s, err := store.NewLocalStore(":memory:", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	tracker := app.New(s, nil)
	return NewModel(tracker, config.UIConfig{Theme: "light"}, nil, nil)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestModel_ViewSwitching(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, app.ViewDashboard, m.tracker.CurrentView())

	m = update(t, m, keyRune('2'))
	assert.Equal(t, app.ViewEmployees, m.tracker.CurrentView())

	m = update(t, m, keyRune('3'))
	assert.Equal(t, app.ViewReports, m.tracker.CurrentView())

	m = update(t, m, keyRune('d'))
	assert.Equal(t, app.ViewDashboard, m.tracker.CurrentView())
}

func TestModel_SelectAndBack(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, keyRune('2'))

	// The seed roster fills the list; enter opens the highlighted employee.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	id, ok := m.tracker.SelectedEmployeeID()
	require.True(t, ok)
	assert.Equal(t, "1", id)
	assert.Equal(t, app.ViewEmployees, m.tracker.CurrentView())

	// esc clears the selection but stays on the employees view.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	_, ok = m.tracker.SelectedEmployeeID()
	assert.False(t, ok)
	assert.Equal(t, app.ViewEmployees, m.tracker.CurrentView())
}

func TestModel_DepartmentFilterCycles(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, keyRune('2'))

	assert.Equal(t, "all", m.departmentFilter())

	m = update(t, m, keyRune('f'))
	assert.Equal(t, "IT", m.departmentFilter())
	require.Len(t, m.list.Rows(), 1)

	// Cycling through all departments returns to "all".
	for i := 0; i < 5; i++ {
		m = update(t, m, keyRune('f'))
	}
	assert.Equal(t, "all", m.departmentFilter())
	assert.Len(t, m.list.Rows(), 4)
}

func TestModel_SearchFiltersList(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, keyRune('2'))

	m = update(t, m, keyRune('/'))
	assert.True(t, m.searching)

	for _, r := range "noura" {
		m = update(t, m, keyRune(r))
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.searching)
	require.Len(t, m.list.Rows(), 1)
	assert.Contains(t, m.list.Rows()[0][0], "Noura")
}

func TestModel_ReportMonthNavigation(t *testing.T) {
	m := newTestModel(t)
	m.reportMonth = "2024-05"
	m = update(t, m, keyRune('3'))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "2024-04", m.reportMonth)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "2024-06", m.reportMonth)
}

func TestModel_AddEmployeeForm(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, keyRune('2'))

	m = update(t, m, keyRune('a'))
	require.NotNil(t, m.form)

	typeInto := func(m Model, text string) Model {
		for _, r := range text {
			m = update(t, m, keyRune(r))
		}
		return m
	}

	m = typeInto(m, "Mona Al-Harbi")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeInto(m, "Operations Lead")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeInto(m, "Operations")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeInto(m, "2024-02-01")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, m.form)
	assert.Len(t, m.tracker.Employees(), 5)
	assert.NotEmpty(t, m.status)
}

func TestModel_FormRejectsUnknownDepartment(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, keyRune('2'))
	m = update(t, m, keyRune('a'))
	require.NotNil(t, m.form)

	typeInto := func(m Model, text string) Model {
		for _, r := range text {
			m = update(t, m, keyRune(r))
		}
		return m
	}

	m = typeInto(m, "X")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeInto(m, "Y")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeInto(m, "Legal")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeInto(m, "2024-02-01")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.form)
	assert.Contains(t, m.form.err, "department")
	assert.Len(t, m.tracker.Employees(), 4)
}

func TestModel_EvaluationFormFromProfile(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, keyRune('2'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = update(t, m, keyRune('y'))
	require.NotNil(t, m.form)

	// Date is prefilled with today; move to score, enter one, skip notes.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, keyRune('5'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, m.form)
	assert.Len(t, m.tracker.Evaluations(), 7)
}

func TestModel_ViewRendersWithoutPanic(t *testing.T) {
	m := newTestModel(t)

	for _, key := range []rune{'1', '2', '3'} {
		m = update(t, m, keyRune(key))
		assert.NotEmpty(t, m.View())
	}

	m = update(t, m, keyRune('2'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotEmpty(t, m.View())
}

func TestShiftMonth(t *testing.T) {
	assert.Equal(t, "2024-01", shiftMonth("2024-02", -1))
	assert.Equal(t, "2023-12", shiftMonth("2024-01", -1))
	assert.Equal(t, "2025-01", shiftMonth("2024-12", 1))
	assert.Equal(t, "garbage", shiftMonth("garbage", 1))
}
