package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taqyim/internal/app"
	"taqyim/internal/report"
)

// View renders the active screen under a tab header.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.viewTabs())
	sb.WriteString("\n\n")

	if m.form != nil {
		sb.WriteString(m.form.view(m.styles))
	} else {
		switch m.tracker.CurrentView() {
		case app.ViewDashboard:
			sb.WriteString(m.viewDashboard())
		case app.ViewEmployees:
			if _, ok := m.tracker.SelectedEmployeeID(); ok {
				sb.WriteString(m.viewProfile())
			} else {
				sb.WriteString(m.viewEmployees())
			}
		case app.ViewReports:
			sb.WriteString(m.viewReport())
		}
	}

	sb.WriteString("\n")
	if m.status != "" {
		sb.WriteString(m.styles.Good.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(m.styles.Muted.Render(m.keyHints()))
	return sb.String()
}

func (m Model) viewTabs() string {
	tab := func(label string, v app.View) string {
		if m.tracker.CurrentView() == v {
			return m.styles.TabOn.Render(label)
		}
		return m.styles.TabOff.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		tab("[1] Dashboard", app.ViewDashboard),
		tab("[2] Employees", app.ViewEmployees),
		tab("[3] Reports", app.ViewReports),
	)
}

func (m Model) viewDashboard() string {
	d := report.DashboardMetrics(m.tracker.Employees(), m.tracker.Evaluations(), todayISO())

	card := func(title, value string) string {
		return m.styles.Card.Render(
			m.styles.Muted.Render(title) + "\n" + m.styles.Bold.Render(value),
		)
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Employees", fmt.Sprintf("%d", d.TotalEmployees)),
		" ",
		card("Daily evals today", fmt.Sprintf("%d", d.DailyEvaluationsToday)),
		" ",
		card("Avg monthly score", FormatAvg(d.AvgMonthlyScore, d.HasMonthlyScore)),
	)

	var sb strings.Builder
	sb.WriteString(cards)
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Header.Render("Average score, last 6 months"))
	sb.WriteString("\n")
	if len(d.MonthlyTrend) == 0 {
		sb.WriteString(m.styles.Muted.Render("No evaluations recorded yet."))
		sb.WriteString("\n")
	} else {
		rows := make([]BarRow, 0, len(d.MonthlyTrend))
		for _, ma := range d.MonthlyTrend {
			rows = append(rows, BarRow{Label: ma.Month, Value: ma.AvgScore})
		}
		sb.WriteString(BarChart(rows, 5, 40, m.styles))
	}
	return sb.String()
}

func (m Model) viewEmployees() string {
	var sb strings.Builder

	filterLine := "Filter: " + m.departmentFilter()
	if m.searching {
		sb.WriteString(m.search.View())
	} else if q := m.search.Value(); q != "" {
		sb.WriteString(m.styles.Muted.Render("Search: " + q))
	} else {
		sb.WriteString(m.styles.Muted.Render("Press / to search"))
	}
	sb.WriteString("   ")
	sb.WriteString(m.styles.Muted.Render(filterLine))
	sb.WriteString("\n\n")

	if len(m.list.Rows()) == 0 {
		sb.WriteString(m.styles.Muted.Render("No employees match the search criteria."))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(m.list.View())
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) viewProfile() string {
	emp, ok := m.tracker.SelectedEmployee()
	if !ok {
		return m.styles.Error.Render("Selected employee no longer exists.") + "\n"
	}

	history := report.EmployeeHistory(m.tracker.Evaluations(), emp.ID)
	avg, hasAvg := report.EmployeeAverage(history)

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(emp.Name))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s - %s\n", emp.Position, DeptLabel(emp.Department, m.arabic)))
	sb.WriteString(m.styles.Muted.Render("Hired " + emp.HiringDate))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Bold.Render("Average score: " + FormatAvg(avg, hasAvg)))
	sb.WriteString("\n\n")

	hist := NewSimpleTable("Evaluation history", "Date", "Type", "Score", "Notes")
	hist.Empty = "No evaluations recorded for this employee."
	for _, ev := range history {
		hist.AddRow(ev.Date, TypeLabel(ev.Type, m.arabic), FormatScore(ev.Score), ev.Notes)
	}
	sb.WriteString(hist.View(m.styles))

	if series := report.TrendSeries(history); len(series) > 1 {
		sb.WriteString("\n" + m.styles.Header.Render("Score trend") + "\n")
		rows := make([]BarRow, 0, len(series))
		for _, ev := range series {
			rows = append(rows, BarRow{Label: ev.Date, Value: float64(ev.Score)})
		}
		sb.WriteString(BarChart(rows, 5, 30, m.styles))
	}

	return sb.String()
}

func (m Model) viewReport() string {
	r := report.BuildMonthlyReport(m.tracker.Employees(), m.tracker.Evaluations(), m.reportMonth)

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Monthly report - " + r.Month))
	sb.WriteString("\n")

	if r.Evaluated == 0 {
		sb.WriteString(m.styles.Muted.Render("No monthly evaluations for this month."))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(m.styles.Header.Render("Average score by department"))
	sb.WriteString("\n")
	rows := make([]BarRow, 0, len(r.ByDepartment))
	for _, da := range r.ByDepartment {
		rows = append(rows, BarRow{Label: DeptLabel(da.Department, m.arabic), Value: da.AvgScore})
	}
	sb.WriteString(BarChart(rows, 5, 40, m.styles))
	sb.WriteString("\n")

	top := NewSimpleTable("Top 5 performers", "Name", "Department", "Score")
	for _, p := range r.TopPerformers {
		top.AddRow(p.Name, DeptLabel(p.Department, m.arabic), FormatScore(p.Score))
	}
	sb.WriteString(top.View(m.styles))

	return sb.String()
}

func (m Model) keyHints() string {
	if m.form != nil {
		return "tab: next field  enter: submit  esc: cancel"
	}
	switch m.tracker.CurrentView() {
	case app.ViewEmployees:
		if _, ok := m.tracker.SelectedEmployeeID(); ok {
			return "y: daily eval  m: monthly eval  esc: back  q: quit"
		}
		return "/: search  f: filter dept  a: add employee  enter: open  q: quit"
	case app.ViewReports:
		return "left/right: change month  q: quit"
	}
	return "1/2/3: switch view  q: quit"
}
