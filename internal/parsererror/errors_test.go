package parsererror

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name: "bad date",
			err: &ParseError{
				File:   "tx.csv",
				Row:    3,
				Column: "Date",
				Value:  "2024/01/01",
				Err:    errors.New("unexpected layout"),
			},
			expected: "tx.csv: row 3: failed to parse Date='2024/01/01': unexpected layout",
		},
		{
			name: "bad amount",
			err: &ParseError{
				File:   "tx.csv",
				Row:    1,
				Column: "Transaction Amount",
				Value:  "abc",
				Err:    errors.New("can't convert abc to decimal"),
			},
			expected: "tx.csv: row 1: failed to parse Transaction Amount='abc': can't convert abc to decimal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	parseErr := &ParseError{File: "tx.csv", Row: 1, Column: "Date", Value: "x", Err: originalErr}

	assert.Equal(t, originalErr, parseErr.Unwrap())
	assert.True(t, errors.Is(parseErr, originalErr))

	wrapped := fmt.Errorf("load failed: %w", parseErr)
	var target *ParseError
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, 1, target.Row)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{FilePath: "tx.csv", Reason: "missing column \"Date\""}
	assert.Equal(t, `validation failed for tx.csv: missing column "Date"`, err.Error())
}

func TestInputError(t *testing.T) {
	_, convErr := strconv.Atoi("abc")
	err := &InputError{Prompt: "Enter month (1-12): ", Value: "abc", Err: convErr}

	assert.Contains(t, err.Error(), `"Enter month (1-12): "`)
	assert.Contains(t, err.Error(), "'abc'")
	assert.True(t, errors.Is(err, strconv.ErrSyntax))

	bare := &InputError{Prompt: "choice", Value: ""}
	assert.Equal(t, `invalid input for "choice": ''`, bare.Error())
}
