// Package hr defines the employee and evaluation records tracked by taqyim,
// together with the two closed enumerations (department, evaluation type) used
// as grouping keys throughout the aggregation layer.
package hr

// Department is a closed set of five organizational units. The canonical value
// is the English key; Label returns the Arabic display form.
type Department string

const (
	DepartmentIT         Department = "IT"
	DepartmentHR         Department = "HR"
	DepartmentFinance    Department = "Finance"
	DepartmentSales      Department = "Sales"
	DepartmentOperations Department = "Operations"
)

// Departments returns all departments in their fixed display order.
func Departments() []Department {
	return []Department{
		DepartmentIT,
		DepartmentHR,
		DepartmentFinance,
		DepartmentSales,
		DepartmentOperations,
	}
}

// Valid reports whether d is one of the five defined departments.
func (d Department) Valid() bool {
	switch d {
	case DepartmentIT, DepartmentHR, DepartmentFinance, DepartmentSales, DepartmentOperations:
		return true
	}
	return false
}

// Label returns the Arabic display label for the department.
func (d Department) Label() string {
	switch d {
	case DepartmentIT:
		return "تقنية المعلومات"
	case DepartmentHR:
		return "الموارد البشرية"
	case DepartmentFinance:
		return "المالية"
	case DepartmentSales:
		return "المبيعات"
	case DepartmentOperations:
		return "العمليات"
	}
	return string(d)
}

// ParseDepartment resolves a department from its canonical key or Arabic
// label. The second return is false for anything outside the closed set.
func ParseDepartment(s string) (Department, bool) {
	for _, d := range Departments() {
		if s == string(d) || s == d.Label() {
			return d, true
		}
	}
	return "", false
}

// EvaluationType distinguishes the two review cadences. Daily evaluations feed
// the "evaluations today" dashboard counter; Monthly evaluations feed the
// monthly average and the monthly report.
type EvaluationType string

const (
	EvaluationDaily   EvaluationType = "Daily"
	EvaluationMonthly EvaluationType = "Monthly"
)

// Valid reports whether t is Daily or Monthly.
func (t EvaluationType) Valid() bool {
	return t == EvaluationDaily || t == EvaluationMonthly
}

// Label returns the Arabic display label for the evaluation type.
func (t EvaluationType) Label() string {
	switch t {
	case EvaluationDaily:
		return "يومي"
	case EvaluationMonthly:
		return "شهري"
	}
	return string(t)
}

// Employee is a single staff record. Records are immutable once created; there
// is no update or delete operation anywhere in the system.
type Employee struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Position   string     `json:"position"`
	Department Department `json:"department"`
	HiringDate string     `json:"hiringDate"` // ISO date, YYYY-MM-DD
}

// Evaluation is a single scored review of one employee. EmployeeID is a soft
// reference: nothing enforces that it resolves, and every consumer must handle
// the dangling case. Score is expected in [1,5] but is not validated here.
type Evaluation struct {
	ID         string         `json:"id"`
	EmployeeID string         `json:"employeeId"`
	Date       string         `json:"date"` // ISO date, YYYY-MM-DD
	Type       EvaluationType `json:"type"`
	Score      int            `json:"score"`
	Notes      string         `json:"notes"`
}

// Month returns the YYYY-MM month key of the evaluation date, or the raw date
// when it is too short to carry one.
func (e Evaluation) Month() string {
	return MonthOf(e.Date)
}

// MonthOf extracts the YYYY-MM prefix from an ISO date string. Dates shorter
// than a full month key are returned unchanged so malformed input still groups
// deterministically instead of panicking.
func MonthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// FindEmployee resolves an employee id against the collection. The boolean is
// false when the id does not resolve; callers are required to branch on it.
func FindEmployee(employees []Employee, id string) (Employee, bool) {
	for _, emp := range employees {
		if emp.ID == id {
			return emp, true
		}
	}
	return Employee{}, false
}
