// Package common provides the CSV plumbing shared by the loader and the
// report exporters.
package common

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"fjacquet/card-spend/internal/fileutils"
	"fjacquet/card-spend/internal/logging"

	"github.com/gocarina/gocsv"
)

const utf8BOM = "\uFEFF"

// Table is a CSV file read as raw strings.
type Table struct {
	Header  []string
	Records [][]string
}

// ReadCSVFile reads the header and every record of filePath.
// Records may be shorter or longer than the header; callers decide what a
// ragged row means.
func ReadCSVFile(filePath string, delimiter rune, logger logging.Logger) (*Table, error) {
	logger.Debug("Reading CSV file",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldDelimiter, Value: string(delimiter)})

	file, err := fileutils.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	table, err := ReadCSV(file, delimiter)
	if err != nil {
		return nil, fmt.Errorf("error parsing CSV file %s: %w", filePath, err)
	}

	logger.Debug("Read CSV data",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(table.Records)})
	return table, nil
}

// ReadCSV reads a header line followed by records from r.
func ReadCSV(r io.Reader, delimiter rune) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV record: %w", err)
	}

	return &Table{Header: header, Records: records}, nil
}

// WriteCSV marshals rows (a slice of csv-tagged structs) to w using gocsv.
func WriteCSV[TRow any](w io.Writer, rows []TRow, delimiter rune) error {
	if rows == nil {
		rows = []TRow{}
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
