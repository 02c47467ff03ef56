// Package loader turns the card export CSV into an immutable models.Dataset.
package loader

import (
	"fmt"
	"io"
	"strings"
	"time"

	"fjacquet/card-spend/internal/common"
	"fjacquet/card-spend/internal/config"
	"fjacquet/card-spend/internal/currencyutils"
	"fjacquet/card-spend/internal/dataprep"
	"fjacquet/card-spend/internal/dateutils"
	"fjacquet/card-spend/internal/logging"
	"fjacquet/card-spend/internal/models"
	"fjacquet/card-spend/internal/parsererror"
)

// Options describes the layout of the export.
type Options struct {
	Delimiter      rune
	DatePattern    string
	DateColumn     string
	CategoryColumn string
	AmountColumn   string
	AmountFormat   string // currencyutils.AmountFormatPlain or AmountFormatLocalized
}

// DefaultOptions matches the stock credit-card export.
func DefaultOptions() Options {
	return Options{
		Delimiter:      models.DefaultCSVDelimiter,
		DatePattern:    dateutils.DefaultPattern,
		DateColumn:     models.ColumnDate,
		CategoryColumn: models.ColumnCategory,
		AmountColumn:   models.ColumnAmount,
		AmountFormat:   currencyutils.AmountFormatPlain,
	}
}

// OptionsFromConfig reads the csv.* settings.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Delimiter:      cfg.Delimiter(),
		DatePattern:    cfg.CSV.DateFormat,
		DateColumn:     cfg.CSV.DateColumn,
		CategoryColumn: cfg.CSV.CategoryColumn,
		AmountColumn:   cfg.CSV.AmountColumn,
		AmountFormat:   cfg.CSV.AmountFormat,
	}
}

// Loader reads and cleans transaction logs.
type Loader struct {
	opts   Options
	layout string
	logger logging.Logger
}

// NewLoader creates a Loader. A nil logger falls back to an info-level
// logrus adapter.
func NewLoader(opts Options, logger logging.Logger) *Loader {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Loader{
		opts:   opts,
		layout: dateutils.LayoutFromPattern(opts.DatePattern),
		logger: logger,
	}
}

// Load reads filePath and returns the cleaned, encoded dataset.
func (l *Loader) Load(filePath string) (*models.Dataset, error) {
	start := time.Now()
	table, err := common.ReadCSVFile(filePath, l.opts.Delimiter, l.logger)
	if err != nil {
		return nil, err
	}

	ds, err := l.build(table, filePath)
	if err != nil {
		l.logger.WithError(err).Error("Failed to load transaction log",
			logging.Field{Key: logging.FieldFile, Value: filePath})
		return nil, err
	}

	ds.Stats.LogSummary(l.logger.WithField(logging.FieldDuration, time.Since(start).Milliseconds()), filePath)
	return ds, nil
}

// Parse reads a transaction log from r. source names the input in errors.
func (l *Loader) Parse(r io.Reader, source string) (*models.Dataset, error) {
	table, err := common.ReadCSV(r, l.opts.Delimiter)
	if err != nil {
		return nil, fmt.Errorf("error parsing CSV %s: %w", source, err)
	}
	return l.build(table, source)
}

func (l *Loader) build(table *common.Table, source string) (*models.Dataset, error) {
	columns := make(map[string]int, len(table.Header))
	for i, name := range table.Header {
		columns[strings.TrimSpace(name)] = i
	}

	dateIdx, ok := columns[l.opts.DateColumn]
	if !ok {
		return nil, &parsererror.ValidationError{FilePath: source, Reason: fmt.Sprintf("missing column %q", l.opts.DateColumn)}
	}
	amountIdx, ok := columns[l.opts.AmountColumn]
	if !ok {
		return nil, &parsererror.ValidationError{FilePath: source, Reason: fmt.Sprintf("missing column %q", l.opts.AmountColumn)}
	}
	categoryIdx, hasCategory := columns[l.opts.CategoryColumn]
	if l.opts.CategoryColumn == "" {
		hasCategory = false
	}

	stats := models.LoadStats{Read: len(table.Records)}
	transactions := make([]models.Transaction, 0, len(table.Records))
	var labels []string

	for i, record := range table.Records {
		row := i + 1
		if !isComplete(record, len(table.Header)) {
			stats.Dropped++
			l.logger.Debug("Dropping incomplete row", logging.Field{Key: logging.FieldRow, Value: row})
			continue
		}

		date, err := dateutils.ParseDate(record[dateIdx], l.layout)
		if err != nil {
			return nil, &parsererror.ParseError{File: source, Row: row, Column: l.opts.DateColumn, Value: record[dateIdx], Err: err}
		}

		amount, err := currencyutils.ParseAmountAs(record[amountIdx], l.opts.AmountFormat)
		if err != nil {
			return nil, &parsererror.ParseError{File: source, Row: row, Column: l.opts.AmountColumn, Value: record[amountIdx], Err: err}
		}

		fields := make(map[string]string, len(table.Header))
		for j, name := range table.Header {
			fields[name] = record[j]
		}

		transactions = append(transactions, models.Transaction{
			Date:     date,
			Category: models.NoCategory,
			Amount:   amount,
			Fields:   fields,
		})
		if hasCategory {
			labels = append(labels, strings.TrimSpace(record[categoryIdx]))
		}
	}
	stats.Kept = len(transactions)

	ds := &models.Dataset{
		Source:       source,
		Columns:      append([]string(nil), table.Header...),
		Transactions: transactions,
		Stats:        stats,
	}

	if hasCategory {
		codes, distinct := dataprep.LabelEncode(labels)
		for i := range ds.Transactions {
			ds.Transactions[i].Category = codes[i]
		}
		ds.Categories = models.NewCategoryMapping(distinct)
		l.logger.Debug("Encoded categories", logging.Field{Key: logging.FieldCount, Value: len(distinct)})
	}

	return ds, nil
}

// isComplete reports whether a record has a value for every column. Only an
// empty cell counts as missing; a cell holding spaces is a value.
func isComplete(record []string, width int) bool {
	if len(record) < width {
		return false
	}
	for _, v := range record[:width] {
		if v == "" {
			return false
		}
	}
	return true
}
