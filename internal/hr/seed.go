package hr

// SeedEmployees returns the fixed sample roster loaded the first time taqyim
// starts with an empty store. Ids are stable so the sample evaluations can
// reference them.
func SeedEmployees() []Employee {
	return []Employee{
		{ID: "1", Name: "Ahmed Al-Ghamdi", Position: "Software Engineer", Department: DepartmentIT, HiringDate: "2022-08-15"},
		{ID: "2", Name: "Fatimah Al-Zahrani", Position: "HR Specialist", Department: DepartmentHR, HiringDate: "2021-05-20"},
		{ID: "3", Name: "Khalid Al-Shehri", Position: "Accountant", Department: DepartmentFinance, HiringDate: "2023-01-10"},
		{ID: "4", Name: "Noura Al-Otaibi", Position: "Sales Manager", Department: DepartmentSales, HiringDate: "2020-11-01"},
	}
}

// SeedEvaluations returns the fixed sample evaluations cross-referencing the
// seed roster.
func SeedEvaluations() []Evaluation {
	return []Evaluation{
		{ID: "e1", EmployeeID: "1", Date: "2024-05-01", Type: EvaluationMonthly, Score: 4, Notes: "Excellent performance during the month."},
		{ID: "e2", EmployeeID: "1", Date: "2024-05-15", Type: EvaluationDaily, Score: 5, Notes: "Completed the assigned task with high efficiency."},
		{ID: "e3", EmployeeID: "1", Date: "2024-04-01", Type: EvaluationMonthly, Score: 3, Notes: "Good performance, needs better time management."},
		{ID: "e4", EmployeeID: "2", Date: "2024-05-01", Type: EvaluationMonthly, Score: 5, Notes: "Excellent initiatives improving the work environment."},
		{ID: "e5", EmployeeID: "2", Date: "2024-05-18", Type: EvaluationDaily, Score: 4, Notes: "Professional handling of candidates."},
		{ID: "e6", EmployeeID: "4", Date: "2024-05-01", Type: EvaluationMonthly, Score: 4, Notes: "Met the sales targets for the month."},
	}
}
