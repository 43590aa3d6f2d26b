package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"taqyim/cmd/taqyim/ui"
	"taqyim/internal/report"
)

// dashboardCmd prints the headline metrics for today.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show today's headline metrics and the six-month trend",
	RunE:  runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	tracker, s, cfg, err := openTracker()
	if err != nil {
		return err
	}
	defer s.Close()

	d := report.DashboardMetrics(tracker.Employees(), tracker.Evaluations(), today())
	styles := ui.DefaultStyles(cfg.UI.Theme)

	card := func(title, value string) string {
		return styles.Card.Render(
			styles.Muted.Render(title) + "\n" + styles.Bold.Render(value),
		)
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Employees", fmt.Sprintf("%d", d.TotalEmployees)),
		" ",
		card("Daily evaluations today", fmt.Sprintf("%d", d.DailyEvaluationsToday)),
		" ",
		card("Avg monthly score ("+currentMonth()+")", ui.FormatAvg(d.AvgMonthlyScore, d.HasMonthlyScore)),
	)

	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Dashboard"))
	sb.WriteString("\n")
	sb.WriteString(cards)
	sb.WriteString("\n\n")
	sb.WriteString(styles.Header.Render("Average score, last 6 months"))
	sb.WriteString("\n")

	if len(d.MonthlyTrend) == 0 {
		sb.WriteString(styles.Muted.Render("No evaluations recorded yet."))
		sb.WriteString("\n")
	} else {
		rows := make([]ui.BarRow, 0, len(d.MonthlyTrend))
		for _, m := range d.MonthlyTrend {
			rows = append(rows, ui.BarRow{Label: m.Month, Value: m.AvgScore})
		}
		sb.WriteString(ui.BarChart(rows, 5, 40, styles))
	}

	fmt.Fprint(cmd.OutOrStdout(), sb.String())
	return nil
}
