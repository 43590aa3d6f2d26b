// Package report computes the derived views of the tracker: dashboard
// metrics, the monthly per-department report, and per-employee histories.
// Every function is pure — it reads the collections it is handed, never
// mutates them, and recomputes from scratch on each call. At the data volumes
// of a single small organization that is cheaper than maintaining caches.
package report

import (
	"math"
	"sort"
	"strings"

	"taqyim/internal/hr"
)

// UnknownEmployee is the label substituted in rankings when an evaluation's
// employee id does not resolve.
const UnknownEmployee = "Unknown"

// trendMonths caps the dashboard trend at the most recent distinct months.
const trendMonths = 6

// topPerformerLimit caps the monthly ranking.
const topPerformerLimit = 5

// MonthAverage is one point of the dashboard trend.
type MonthAverage struct {
	Month    string
	AvgScore float64
}

// Dashboard holds the headline metrics for a given day. AvgMonthlyScore is
// only meaningful when HasMonthlyScore is true; with no monthly evaluations in
// the current month the presentation renders the N/A sentinel instead.
type Dashboard struct {
	TotalEmployees        int
	DailyEvaluationsToday int
	AvgMonthlyScore       float64
	HasMonthlyScore       bool
	MonthlyTrend          []MonthAverage
}

// DashboardMetrics computes the dashboard for the given day. today is an ISO
// date; the current month is its YYYY-MM prefix. The trend groups all
// evaluations regardless of type, averages per month, sorts ascending by month
// key and keeps the last six.
func DashboardMetrics(employees []hr.Employee, evaluations []hr.Evaluation, today string) Dashboard {
	d := Dashboard{TotalEmployees: len(employees)}
	month := hr.MonthOf(today)

	var monthlySum, monthlyCount int
	for _, ev := range evaluations {
		if ev.Date == today && ev.Type == hr.EvaluationDaily {
			d.DailyEvaluationsToday++
		}
		if ev.Month() == month && ev.Type == hr.EvaluationMonthly {
			monthlySum += ev.Score
			monthlyCount++
		}
	}
	if monthlyCount > 0 {
		d.AvgMonthlyScore = float64(monthlySum) / float64(monthlyCount)
		d.HasMonthlyScore = true
	}

	d.MonthlyTrend = monthlyTrend(evaluations)
	return d
}

// monthlyTrend buckets every evaluation by month key and averages the scores.
// Month keys are fixed-width YYYY-MM strings, so lexicographic order is
// chronological order.
func monthlyTrend(evaluations []hr.Evaluation) []MonthAverage {
	type bucket struct {
		sum   int
		count int
	}
	buckets := make(map[string]*bucket)
	for _, ev := range evaluations {
		m := ev.Month()
		b := buckets[m]
		if b == nil {
			b = &bucket{}
			buckets[m] = b
		}
		b.sum += ev.Score
		b.count++
	}

	months := make([]string, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Strings(months)
	if len(months) > trendMonths {
		months = months[len(months)-trendMonths:]
	}

	trend := make([]MonthAverage, 0, len(months))
	for _, m := range months {
		b := buckets[m]
		trend = append(trend, MonthAverage{
			Month:    m,
			AvgScore: float64(b.sum) / float64(b.count),
		})
	}
	return trend
}

// DepartmentAverage is one bar of the monthly report chart.
type DepartmentAverage struct {
	Department hr.Department
	AvgScore   float64
}

// Performer is one row of the monthly top-5 ranking. Department is empty when
// the evaluation's employee could not be resolved.
type Performer struct {
	Name       string
	Score      int
	Department hr.Department
}

// Monthly is the report for one calendar month, restricted to Monthly-type
// evaluations dated within it.
type Monthly struct {
	Month         string
	Evaluated     int
	ByDepartment  []DepartmentAverage
	TopPerformers []Performer
}

// BuildMonthlyReport filters evaluations to Monthly type within the target
// month and aggregates them two ways. ByDepartment skips evaluations whose
// employee does not resolve and omits departments with no matched evaluation;
// the departments present follow the fixed enumeration order. TopPerformers
// keeps unresolved evaluations under the Unknown label and uses a stable sort,
// so tied scores keep their original relative order.
func BuildMonthlyReport(employees []hr.Employee, evaluations []hr.Evaluation, month string) Monthly {
	var filtered []hr.Evaluation
	for _, ev := range evaluations {
		if ev.Type == hr.EvaluationMonthly && ev.Month() == month {
			filtered = append(filtered, ev)
		}
	}

	r := Monthly{Month: month, Evaluated: len(filtered)}

	type bucket struct {
		sum   int
		count int
	}
	byDept := make(map[hr.Department]*bucket)
	for _, ev := range filtered {
		emp, ok := hr.FindEmployee(employees, ev.EmployeeID)
		if !ok {
			continue
		}
		b := byDept[emp.Department]
		if b == nil {
			b = &bucket{}
			byDept[emp.Department] = b
		}
		b.sum += ev.Score
		b.count++
	}
	for _, dept := range hr.Departments() {
		if b, ok := byDept[dept]; ok && b.count > 0 {
			r.ByDepartment = append(r.ByDepartment, DepartmentAverage{
				Department: dept,
				AvgScore:   float64(b.sum) / float64(b.count),
			})
		}
	}

	ranked := make([]hr.Evaluation, len(filtered))
	copy(ranked, filtered)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > topPerformerLimit {
		ranked = ranked[:topPerformerLimit]
	}
	for _, ev := range ranked {
		p := Performer{Name: UnknownEmployee, Score: ev.Score}
		if emp, ok := hr.FindEmployee(employees, ev.EmployeeID); ok {
			p.Name = emp.Name
			p.Department = emp.Department
		}
		r.TopPerformers = append(r.TopPerformers, p)
	}

	return r
}

// EmployeeHistory returns the employee's evaluations most recent first. ISO
// dates compare lexicographically in chronological order; evaluations on the
// same date keep their original relative order.
func EmployeeHistory(evaluations []hr.Evaluation, employeeID string) []hr.Evaluation {
	var history []hr.Evaluation
	for _, ev := range evaluations {
		if ev.EmployeeID == employeeID {
			history = append(history, ev)
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date > history[j].Date
	})
	return history
}

// TrendSeries returns a copy of a history in ascending date order, the shape
// the profile chart consumes.
func TrendSeries(history []hr.Evaluation) []hr.Evaluation {
	series := make([]hr.Evaluation, len(history))
	for i, ev := range history {
		series[len(history)-1-i] = ev
	}
	return series
}

// EmployeeAverage returns the mean score over the given evaluations. The
// boolean is false for an empty input; the presentation renders N/A then.
func EmployeeAverage(evaluations []hr.Evaluation) (float64, bool) {
	if len(evaluations) == 0 {
		return 0, false
	}
	sum := 0
	for _, ev := range evaluations {
		sum += ev.Score
	}
	return float64(sum) / float64(len(evaluations)), true
}

// FilterEmployees returns the employees whose name contains nameQuery
// case-insensitively and whose department matches the filter. An empty filter
// or the literal "all" matches every department. Input order is preserved.
func FilterEmployees(employees []hr.Employee, nameQuery, department string) []hr.Employee {
	query := strings.ToLower(nameQuery)

	var matched []hr.Employee
	for _, emp := range employees {
		if query != "" && !strings.Contains(strings.ToLower(emp.Name), query) {
			continue
		}
		if department != "" && department != "all" && string(emp.Department) != department {
			continue
		}
		matched = append(matched, emp)
	}
	return matched
}

// Round1 rounds to one decimal place. Averages stay unrounded internally;
// rounding happens only at the presentation boundary.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
