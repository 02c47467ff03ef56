// Package common contains shared functionality for command handlers
package common

import (
	"bytes"
	"fmt"
	"io"

	"fjacquet/card-spend/cmd/root"
	"fjacquet/card-spend/internal/chart"
	"fjacquet/card-spend/internal/fileutils"
	"fjacquet/card-spend/internal/logging"
	"fjacquet/card-spend/internal/models"
	"fjacquet/card-spend/internal/predictor"
)

// Renderer turns query results into output. *report.Generator implements it.
type Renderer interface {
	WriteReport(w io.Writer, r models.Report, format string, bc *chart.BarChart) error
	GeneratePrediction(p predictor.Prediction, format string) ([]byte, error)
	GenerateMapping(m *models.CategoryMapping, format string) ([]byte, error)
}

// Options controls where and how a result is written.
type Options struct {
	Format string
	Output string // file path; empty means the command's stdout
	Chart  *chart.BarChart
	Logger logging.Logger
}

// CurrentOptions builds Options from the persistent flags and the
// initialized container.
func CurrentOptions() Options {
	opts := Options{
		Format: root.SharedFlags.Format,
		Output: root.SharedFlags.Output,
		Logger: root.Log,
	}
	if root.AppContainer != nil {
		opts.Chart = root.AppContainer.GetChart()
	}
	return opts
}

// ProcessReport renders a spendings report. Charts are only drawn for
// terminal output, never into an export file.
func ProcessReport(rd Renderer, r models.Report, opts Options, w io.Writer) error {
	bc := opts.Chart
	if opts.Output != "" {
		bc = nil
	}

	var buf bytes.Buffer
	if err := rd.WriteReport(&buf, r, opts.Format, bc); err != nil {
		return fmt.Errorf("error rendering report: %w", err)
	}
	return emit(buf.Bytes(), opts, w)
}

// ProcessPrediction renders a prediction.
func ProcessPrediction(rd Renderer, p predictor.Prediction, opts Options, w io.Writer) error {
	out, err := rd.GeneratePrediction(p, opts.Format)
	if err != nil {
		return fmt.Errorf("error rendering prediction: %w", err)
	}
	return emit(out, opts, w)
}

// ProcessMapping renders the category listing.
func ProcessMapping(rd Renderer, m *models.CategoryMapping, opts Options, w io.Writer) error {
	out, err := rd.GenerateMapping(m, opts.Format)
	if err != nil {
		return fmt.Errorf("error rendering category mapping: %w", err)
	}
	return emit(out, opts, w)
}

func emit(data []byte, opts Options, w io.Writer) error {
	if opts.Output == "" {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
		return nil
	}

	if err := fileutils.WriteFile(opts.Output, data); err != nil {
		return fmt.Errorf("error writing %s: %w", opts.Output, err)
	}
	if opts.Logger != nil {
		opts.Logger.Info("Report written",
			logging.F(logging.FieldFile, opts.Output),
			logging.F(logging.FieldFormat, opts.Format))
	}
	return nil
}
