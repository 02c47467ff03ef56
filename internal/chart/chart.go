// Package chart draws reports as horizontal bar charts in the terminal.
package chart

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/card-spend/internal/dateutils"
	"fjacquet/card-spend/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

const (
	DefaultWidth = 50
	DefaultColor = "#89b4fa"

	fullBlock     = "█"
	negativeBlock = "░"
	axis          = "│"
)

// BarChart renders one bar per report row, scaled so the largest absolute
// amount fills Width cells.
type BarChart struct {
	Width int
	Color string

	title lipgloss.Style
	bar   lipgloss.Style
	muted lipgloss.Style
}

// New returns a BarChart. Non-positive widths and empty colors use the defaults.
func New(width int, color string) *BarChart {
	if width <= 0 {
		width = DefaultWidth
	}
	if color == "" {
		color = DefaultColor
	}
	return &BarChart{
		Width: width,
		Color: color,
		title: lipgloss.NewStyle().Bold(true),
		bar:   lipgloss.NewStyle().Foreground(lipgloss.Color(color)),
		muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c")),
	}
}

// Label returns the x-axis label for a row of report.
func Label(report models.Report, row models.Spending) string {
	if report.Kind == models.ReportCategory {
		if row.Label != "" {
			return fmt.Sprintf("%d (%s)", row.Category, row.Label)
		}
		return fmt.Sprintf("%d", row.Category)
	}
	return dateutils.ToISODate(row.Date)
}

// Render writes the chart for report to w.
func (c *BarChart) Render(w io.Writer, report models.Report) error {
	var b strings.Builder

	b.WriteString(c.title.Render(report.Title))
	b.WriteString("\n")

	if report.IsEmpty() {
		b.WriteString(c.muted.Render("No data to plot"))
		b.WriteString("\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	labels := make([]string, len(report.Rows))
	labelWidth := len(report.XLabel)
	maxAbs := decimal.Zero
	for i, row := range report.Rows {
		labels[i] = Label(report, row)
		if n := lipgloss.Width(labels[i]); n > labelWidth {
			labelWidth = n
		}
		if a := row.Amount.Abs(); a.GreaterThan(maxAbs) {
			maxAbs = a
		}
	}

	b.WriteString(c.muted.Render(fmt.Sprintf("%-*s %s %s", labelWidth, report.XLabel, axis, report.YLabel)))
	b.WriteString("\n")

	for i, row := range report.Rows {
		n := c.barLength(row.Amount, maxAbs)
		block := fullBlock
		if row.Amount.IsNegative() {
			block = negativeBlock
		}
		fmt.Fprintf(&b, "%-*s %s %s %s\n",
			labelWidth, labels[i], axis,
			c.bar.Render(strings.Repeat(block, n)),
			row.Amount.StringFixed(2))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (c *BarChart) barLength(amount, maxAbs decimal.Decimal) int {
	if maxAbs.IsZero() {
		return 0
	}
	n := int(amount.Abs().Div(maxAbs).Mul(decimal.NewFromInt(int64(c.Width))).Round(0).IntPart())
	if n == 0 && !amount.IsZero() {
		n = 1
	}
	return n
}
