package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"taqyim/cmd/taqyim/ui"
	"taqyim/internal/report"
)

var (
	searchQuery      string
	departmentFilter string
)

// employeesCmd lists employees with the same name/department filtering the
// interactive list offers.
var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "List employees, optionally filtered by name or department",
	RunE:  runEmployees,
}

func runEmployees(cmd *cobra.Command, args []string) error {
	tracker, s, cfg, err := openTracker()
	if err != nil {
		return err
	}
	defer s.Close()

	styles := ui.DefaultStyles(cfg.UI.Theme)
	filtered := report.FilterEmployees(tracker.Employees(), searchQuery, departmentFilter)

	table := ui.NewSimpleTable("Employees", "ID", "Name", "Position", "Department", "Hired")
	table.Empty = "No employees match the search criteria."
	for _, emp := range filtered {
		table.AddRow(emp.ID, emp.Name, emp.Position, ui.DeptLabel(emp.Department, cfg.UI.ArabicLabels), emp.HiringDate)
	}

	fmt.Fprint(cmd.OutOrStdout(), table.View(styles))
	return nil
}

func init() {
	employeesCmd.Flags().StringVar(&searchQuery, "search", "", "case-insensitive name substring")
	employeesCmd.Flags().StringVar(&departmentFilter, "department", "all", "department filter (IT, HR, Finance, Sales, Operations or all)")
}
