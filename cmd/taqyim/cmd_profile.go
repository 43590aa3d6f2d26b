package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taqyim/cmd/taqyim/ui"
	"taqyim/internal/hr"
	"taqyim/internal/report"
)

// profileCmd shows one employee's record: evaluations most recent first, the
// overall average and a score trend.
var profileCmd = &cobra.Command{
	Use:   "profile [employee-id]",
	Short: "Show an employee's evaluation history and average",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfile,
}

func runProfile(cmd *cobra.Command, args []string) error {
	tracker, s, cfg, err := openTracker()
	if err != nil {
		return err
	}
	defer s.Close()

	employees := tracker.Employees()
	emp, ok := hr.FindEmployee(employees, args[0])
	if !ok {
		return fmt.Errorf("no employee with id %q", args[0])
	}

	styles := ui.DefaultStyles(cfg.UI.Theme)
	history := report.EmployeeHistory(tracker.Evaluations(), emp.ID)
	avg, hasAvg := report.EmployeeAverage(history)

	var sb strings.Builder
	sb.WriteString(styles.Title.Render(emp.Name))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s - %s\n", emp.Position, ui.DeptLabel(emp.Department, cfg.UI.ArabicLabels)))
	sb.WriteString(styles.Muted.Render("Hired "+emp.HiringDate) + "\n")
	sb.WriteString(styles.Bold.Render("Average score: "+ui.FormatAvg(avg, hasAvg)) + "\n\n")

	table := ui.NewSimpleTable("Evaluation history", "Date", "Type", "Score", "Notes")
	table.Empty = "No evaluations recorded for this employee."
	for _, ev := range history {
		table.AddRow(ev.Date, ui.TypeLabel(ev.Type, cfg.UI.ArabicLabels), ui.FormatScore(ev.Score), ev.Notes)
	}
	sb.WriteString(table.View(styles))

	if series := report.TrendSeries(history); len(series) > 1 {
		sb.WriteString("\n" + styles.Header.Render("Score trend") + "\n")
		rows := make([]ui.BarRow, 0, len(series))
		for _, ev := range series {
			rows = append(rows, ui.BarRow{Label: ev.Date, Value: float64(ev.Score)})
		}
		sb.WriteString(ui.BarChart(rows, 5, 30, styles))
	}

	fmt.Fprint(cmd.OutOrStdout(), sb.String())
	return nil
}
