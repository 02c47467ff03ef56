// Package validation checks user-supplied values before they reach the
// loader, the analysis functions or the report writers.
package validation

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/card-spend/internal/dateutils"
	"fjacquet/card-spend/internal/models"
	"fjacquet/card-spend/internal/parsererror"
	"fjacquet/card-spend/internal/report"
)

// IsValidInputFile checks that path names an existing regular file.
func IsValidInputFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return &parsererror.ValidationError{FilePath: path, Reason: "no input file given"}
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return &parsererror.ValidationError{FilePath: path, Reason: "file does not exist"}
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return &parsererror.ValidationError{FilePath: path, Reason: "not a regular file"}
	}
	return nil
}

// IsValidOutputFormat checks if the given format is supported.
func IsValidOutputFormat(format string) error {
	for _, f := range report.Formats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format: %s. Supported formats are '%s'",
		format, strings.Join(report.Formats, "', '"))
}

// IsValidMonth checks that month is a calendar month number.
// Analysis accepts any month, so this is only used where a caller wants
// to warn about a query that cannot match.
func IsValidMonth(month int) error {
	if !dateutils.IsValidMonth(month) {
		return fmt.Errorf("month must be between 1 and 12, got: %d", month)
	}
	return nil
}

// IsValidCategoryCode checks that code is one of the codes in categories.
// Like IsValidMonth it backs a warning only; an unknown code yields an
// empty report rather than an error.
func IsValidCategoryCode(code int, categories *models.CategoryMapping) error {
	if _, ok := categories.Label(code); ok {
		return nil
	}
	if categories.Len() == 0 {
		return fmt.Errorf("category code %d is unknown, the data has no categories", code)
	}
	return fmt.Errorf("category code must be between 0 and %d, got: %d", categories.Len()-1, code)
}
