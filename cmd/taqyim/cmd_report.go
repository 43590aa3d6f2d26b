package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"taqyim/cmd/taqyim/ui"
	"taqyim/internal/report"
)

var (
	reportMonth    string
	reportMarkdown bool
)

// reportCmd renders the monthly report: averages per department plus the
// top-5 ranking, restricted to Monthly-type evaluations in the chosen month.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the monthly report for a given month",
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	tracker, s, cfg, err := openTracker()
	if err != nil {
		return err
	}
	defer s.Close()

	month := reportMonth
	if month == "" {
		month = currentMonth()
	}

	r := report.BuildMonthlyReport(tracker.Employees(), tracker.Evaluations(), month)

	if reportMarkdown {
		md := reportAsMarkdown(r, cfg.UI.ArabicLabels)
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("failed to build markdown renderer: %w", err)
		}
		out, err := renderer.Render(md)
		if err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	styles := ui.DefaultStyles(cfg.UI.Theme)

	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Monthly report - " + r.Month))
	sb.WriteString("\n")

	if r.Evaluated == 0 {
		sb.WriteString(styles.Muted.Render("No monthly evaluations for this month."))
		sb.WriteString("\n")
		fmt.Fprint(cmd.OutOrStdout(), sb.String())
		return nil
	}

	sb.WriteString(styles.Header.Render("Average score by department"))
	sb.WriteString("\n")
	rows := make([]ui.BarRow, 0, len(r.ByDepartment))
	for _, da := range r.ByDepartment {
		rows = append(rows, ui.BarRow{Label: ui.DeptLabel(da.Department, cfg.UI.ArabicLabels), Value: da.AvgScore})
	}
	sb.WriteString(ui.BarChart(rows, 5, 40, styles))
	sb.WriteString("\n")

	table := ui.NewSimpleTable("Top 5 performers", "Name", "Department", "Score")
	for _, p := range r.TopPerformers {
		table.AddRow(p.Name, ui.DeptLabel(p.Department, cfg.UI.ArabicLabels), ui.FormatScore(p.Score))
	}
	sb.WriteString(table.View(styles))

	fmt.Fprint(cmd.OutOrStdout(), sb.String())
	return nil
}

// reportAsMarkdown formats the report as a markdown document, the shape used
// for sharing outside the terminal.
func reportAsMarkdown(r report.Monthly, arabic bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Monthly report - %s\n\n", r.Month)

	if r.Evaluated == 0 {
		sb.WriteString("No monthly evaluations for this month.\n")
		return sb.String()
	}

	sb.WriteString("## Average score by department\n\n")
	sb.WriteString("| Department | Average |\n|---|---|\n")
	for _, da := range r.ByDepartment {
		fmt.Fprintf(&sb, "| %s | %.1f |\n", ui.DeptLabel(da.Department, arabic), report.Round1(da.AvgScore))
	}

	sb.WriteString("\n## Top 5 performers\n\n")
	sb.WriteString("| Name | Department | Score |\n|---|---|---|\n")
	for _, p := range r.TopPerformers {
		fmt.Fprintf(&sb, "| %s | %s | %d/5 |\n", p.Name, ui.DeptLabel(p.Department, arabic), p.Score)
	}

	return sb.String()
}

func init() {
	reportCmd.Flags().StringVar(&reportMonth, "month", "", "target month as YYYY-MM (default: current month)")
	reportCmd.Flags().BoolVar(&reportMarkdown, "markdown", false, "render the report as formatted markdown")
}
