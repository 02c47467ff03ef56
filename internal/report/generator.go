// Package report renders spendings reports, category listings and
// predictions for the terminal or for export.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"fjacquet/card-spend/internal/common"
	"fjacquet/card-spend/internal/currencyutils"
	"fjacquet/card-spend/internal/dateutils"
	"fjacquet/card-spend/internal/logging"
	"fjacquet/card-spend/internal/models"
	"fjacquet/card-spend/internal/predictor"

	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatCSV, FormatJSON, FormatYAML}

// Row is the flat export shape of a models.Spending.
type Row struct {
	Date     string `json:"date,omitempty" yaml:"date,omitempty" csv:"Date"`
	Category *int   `json:"category,omitempty" yaml:"category,omitempty" csv:"Category"`
	Label    string `json:"label,omitempty" yaml:"label,omitempty" csv:"Label"`
	Amount   string `json:"amount" yaml:"amount" csv:"Transaction Amount"`
}

// Document is the json/yaml export shape of a models.Report.
type Document struct {
	Kind     models.ReportKind `json:"kind" yaml:"kind"`
	Title    string            `json:"title" yaml:"title"`
	Month    int               `json:"month,omitempty" yaml:"month,omitempty"`
	Category *int              `json:"category,omitempty" yaml:"category,omitempty"`
	Total    string            `json:"total" yaml:"total"`
	Rows     []Row             `json:"rows" yaml:"rows"`
}

// Generator renders reports in the supported formats.
type Generator struct {
	logger    logging.Logger
	precision int32
	delimiter rune
}

// NewGenerator creates a Generator printing amounts with precision decimals
// and writing CSV with delimiter.
func NewGenerator(logger logging.Logger, precision int32, delimiter rune) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if delimiter == 0 {
		delimiter = models.DefaultCSVDelimiter
	}
	return &Generator{logger: logger, precision: precision, delimiter: delimiter}
}

// GenerateReport renders report in format.
func (g *Generator) GenerateReport(report models.Report, format string) ([]byte, error) {
	rows := g.rows(report)

	switch format {
	case FormatText, "":
		return g.generateTextReport(report, rows)
	case FormatCSV:
		return generateCSV(g, rows)
	case FormatJSON, FormatYAML:
		doc := Document{
			Kind:  report.Kind,
			Title: report.Title,
			Month: report.Month,
			Total: currencyutils.FormatAmount(report.Total(), g.precision),
			Rows:  rows,
		}
		if report.Kind != models.ReportMonthly {
			code := report.Category
			doc.Category = &code
		}
		return g.marshal(doc, format)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// GenerateMapping renders the category code to label listing.
func (g *Generator) GenerateMapping(mapping *models.CategoryMapping, format string) ([]byte, error) {
	entries := mapping.Entries()

	switch format {
	case FormatText, "":
		var buf bytes.Buffer
		buf.WriteString("Category Mappings:\n")
		for _, e := range entries {
			fmt.Fprintf(&buf, "%d: %s\n", e.Code, e.Label)
		}
		return buf.Bytes(), nil
	case FormatCSV:
		return generateCSV(g, entries)
	case FormatJSON, FormatYAML:
		return g.marshal(entries, format)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// GeneratePrediction renders a prediction.
func (g *Generator) GeneratePrediction(p predictor.Prediction, format string) ([]byte, error) {
	switch format {
	case FormatText, "":
		value := predictor.NoDataMessage
		if p.Available {
			value = currencyutils.FormatAmount(p.Amount, g.precision)
		}
		return []byte(fmt.Sprintf("Predicted future spendings for category %d: %s\n", p.Category, value)), nil
	case FormatCSV:
		type predictionRow struct {
			Category  int    `csv:"Category"`
			Label     string `csv:"Label"`
			Available bool   `csv:"Available"`
			Amount    string `csv:"Predicted Amount"`
			Samples   int    `csv:"Samples"`
		}
		return generateCSV(g, []predictionRow{{
			Category:  p.Category,
			Label:     p.Label,
			Available: p.Available,
			Amount:    currencyutils.FormatAmount(p.Amount, g.precision),
			Samples:   p.Samples,
		}})
	case FormatJSON, FormatYAML:
		p.Amount = p.Amount.Round(g.precision)
		return g.marshal(p, format)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) rows(report models.Report) []Row {
	rows := make([]Row, 0, len(report.Rows))
	for _, s := range report.Rows {
		row := Row{Amount: currencyutils.FormatAmount(s.Amount, g.precision), Label: s.Label}
		if report.Kind != models.ReportCategory {
			row.Date = dateutils.ToISODate(s.Date)
		}
		if report.Kind != models.ReportMonthly {
			code := s.Category
			row.Category = &code
		}
		rows = append(rows, row)
	}
	return rows
}

func (g *Generator) generateTextReport(report models.Report, rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(report.Title)
	buf.WriteString("\n")

	if len(rows) == 0 {
		buf.WriteString("No transactions found.\n")
		return buf.Bytes(), nil
	}

	var headers []string
	switch report.Kind {
	case models.ReportCategory:
		headers = []string{"Category", "Label"}
	case models.ReportCategoryMonth:
		headers = []string{"Category", "Date"}
	default:
		headers = []string{"Date"}
	}
	headers = append(headers, report.YLabel)

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(headers, "\t")+"\t")
	for _, r := range rows {
		var cells []string
		switch report.Kind {
		case models.ReportCategory:
			cells = []string{fmt.Sprint(*r.Category), r.Label}
		case models.ReportCategoryMonth:
			cells = []string{fmt.Sprint(*r.Category), r.Date}
		default:
			cells = []string{r.Date}
		}
		cells = append(cells, r.Amount)
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}
	fmt.Fprintf(tw, "Total\t%s%s\t\n", strings.Repeat("\t", len(headers)-2), currencyutils.FormatAmount(report.Total(), g.precision))
	if err := tw.Flush(); err != nil {
		return nil, fmt.Errorf("failed to render text report: %w", err)
	}
	return buf.Bytes(), nil
}

func generateCSV[TRow any](g *Generator, rows []TRow) ([]byte, error) {
	var buf bytes.Buffer
	if err := common.WriteCSV(&buf, rows, g.delimiter); err != nil {
		g.logger.WithError(err).Error("Failed to marshal CSV report")
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *Generator) marshal(v interface{}, format string) ([]byte, error) {
	if format == FormatYAML {
		out, err := yaml.Marshal(v)
		if err != nil {
			g.logger.WithError(err).Error("Failed to marshal YAML report")
			return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
		}
		return out, nil
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(out, '\n'), nil
}
