package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"taqyim/internal/hr"
)

var (
	empName       string
	empPosition   string
	empDepartment string
	empHiringDate string

	evalEmployee string
	evalDate     string
	evalType     string
	evalScore    int
	evalNotes    string
)

// addEmployeeCmd appends a new employee record. Only presence and enum
// membership are checked; hiring dates and names pass through as given.
var addEmployeeCmd = &cobra.Command{
	Use:   "add-employee",
	Short: "Record a new employee",
	RunE:  runAddEmployee,
}

func runAddEmployee(cmd *cobra.Command, args []string) error {
	dept, ok := hr.ParseDepartment(empDepartment)
	if !ok {
		return fmt.Errorf("unknown department %q (want IT, HR, Finance, Sales or Operations)", empDepartment)
	}

	tracker, s, _, err := openTracker()
	if err != nil {
		return err
	}
	defer s.Close()

	added := tracker.AddEmployee(hr.Employee{
		Name:       empName,
		Position:   empPosition,
		Department: dept,
		HiringDate: empHiringDate,
	})

	fmt.Fprintf(cmd.OutOrStdout(), "Added employee %s (%s)\n", added.Name, added.ID)
	return nil
}

// addEvaluationCmd appends a new evaluation for an existing employee.
var addEvaluationCmd = &cobra.Command{
	Use:   "add-evaluation",
	Short: "Record a daily or monthly evaluation for an employee",
	RunE:  runAddEvaluation,
}

func runAddEvaluation(cmd *cobra.Command, args []string) error {
	var evType hr.EvaluationType
	switch evalType {
	case "daily", "Daily":
		evType = hr.EvaluationDaily
	case "monthly", "Monthly":
		evType = hr.EvaluationMonthly
	default:
		return fmt.Errorf("unknown evaluation type %q (want daily or monthly)", evalType)
	}

	tracker, s, _, err := openTracker()
	if err != nil {
		return err
	}
	defer s.Close()

	// The store tolerates dangling references, but a typo'd id from the
	// command line is almost certainly a mistake worth stopping.
	if _, ok := hr.FindEmployee(tracker.Employees(), evalEmployee); !ok {
		return fmt.Errorf("no employee with id %q", evalEmployee)
	}

	date := evalDate
	if date == "" {
		date = today()
	}

	added := tracker.AddEvaluation(hr.Evaluation{
		EmployeeID: evalEmployee,
		Date:       date,
		Type:       evType,
		Score:      evalScore,
		Notes:      evalNotes,
	})

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s evaluation %s for employee %s\n", evalType, added.ID, evalEmployee)
	return nil
}

func init() {
	addEmployeeCmd.Flags().StringVar(&empName, "name", "", "employee name")
	addEmployeeCmd.Flags().StringVar(&empPosition, "position", "", "job title")
	addEmployeeCmd.Flags().StringVar(&empDepartment, "department", "", "department (IT, HR, Finance, Sales, Operations)")
	addEmployeeCmd.Flags().StringVar(&empHiringDate, "hiring-date", "", "hiring date as YYYY-MM-DD")
	_ = addEmployeeCmd.MarkFlagRequired("name")
	_ = addEmployeeCmd.MarkFlagRequired("position")
	_ = addEmployeeCmd.MarkFlagRequired("department")
	_ = addEmployeeCmd.MarkFlagRequired("hiring-date")

	addEvaluationCmd.Flags().StringVar(&evalEmployee, "employee", "", "employee id")
	addEvaluationCmd.Flags().StringVar(&evalDate, "date", "", "evaluation date as YYYY-MM-DD (default: today)")
	addEvaluationCmd.Flags().StringVar(&evalType, "type", "", "evaluation type (daily or monthly)")
	addEvaluationCmd.Flags().IntVar(&evalScore, "score", 0, "score from 1 to 5")
	addEvaluationCmd.Flags().StringVar(&evalNotes, "notes", "", "free-form notes")
	_ = addEvaluationCmd.MarkFlagRequired("employee")
	_ = addEvaluationCmd.MarkFlagRequired("type")
	_ = addEvaluationCmd.MarkFlagRequired("score")
}
