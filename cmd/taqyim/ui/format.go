package ui

import (
	"fmt"
	"strings"

	"taqyim/internal/hr"
	"taqyim/internal/report"
)

// NotAvailable is the sentinel rendered when an average has no data behind it.
const NotAvailable = "N/A"

// FormatAvg renders an average to one decimal place, or the N/A sentinel when
// ok is false.
func FormatAvg(v float64, ok bool) string {
	if !ok {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f", report.Round1(v))
}

// FormatScore renders a score out of five.
func FormatScore(score int) string {
	return fmt.Sprintf("%d/5", score)
}

// DeptLabel renders a department, optionally in Arabic.
func DeptLabel(d hr.Department, arabic bool) string {
	if d == "" {
		return "-"
	}
	if arabic {
		return d.Label()
	}
	return string(d)
}

// TypeLabel renders an evaluation type, optionally in Arabic.
func TypeLabel(t hr.EvaluationType, arabic bool) string {
	if arabic {
		return t.Label()
	}
	return string(t)
}

// BarRow is one horizontal bar of a chart.
type BarRow struct {
	Label string
	Value float64
}

// BarChart renders rows as horizontal bars scaled against max. Labels are
// right-padded to align the bars.
func BarChart(rows []BarRow, max float64, width int, styles Styles) string {
	if len(rows) == 0 || max <= 0 {
		return ""
	}
	if width < 10 {
		width = 10
	}

	labelWidth := 0
	for _, r := range rows {
		if w := len([]rune(r.Label)); w > labelWidth {
			labelWidth = w
		}
	}

	var sb strings.Builder
	for _, r := range rows {
		n := int(r.Value / max * float64(width))
		if n < 0 {
			n = 0
		}
		if n > width {
			n = width
		}
		sb.WriteString(fmt.Sprintf("%-*s ", labelWidth, r.Label))
		sb.WriteString(styles.BarFill.Render(strings.Repeat("█", n)))
		sb.WriteString(styles.Muted.Render(fmt.Sprintf(" %.1f", report.Round1(r.Value))))
		sb.WriteString("\n")
	}
	return sb.String()
}
