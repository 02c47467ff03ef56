package report

import (
	"fmt"
	"io"

	"fjacquet/card-spend/internal/chart"
	"fjacquet/card-spend/internal/models"
)

// WriteReport renders report in format to w. Text output is followed by
// the bar chart when bc is not nil; the other formats are data only.
func (g *Generator) WriteReport(w io.Writer, report models.Report, format string, bc *chart.BarChart) error {
	out, err := g.GenerateReport(report, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if bc == nil || (format != FormatText && format != "") || report.IsEmpty() {
		return nil
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return bc.Render(w, report)
}
