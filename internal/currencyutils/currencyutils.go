// Package currencyutils provides the amount parsing and formatting shared by
// the loader and the report writers.
package currencyutils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount formats accepted by ParseAmountAs.
const (
	// AmountFormatPlain is a bare decimal number such as "-1234.56".
	AmountFormatPlain = "plain"
	// AmountFormatLocalized allows currency marks and thousands separators.
	AmountFormatLocalized = "localized"
)

// ErrEmptyAmount is returned when there is nothing to parse.
var ErrEmptyAmount = errors.New("empty amount")

var currencyMarks = regexp.MustCompile(`(?i)CHF|EUR|USD|GBP|INR|[€$£¥₹\s]`)

// ParseAmountAs parses amountStr according to format. An empty or unknown
// format is treated as AmountFormatPlain.
func ParseAmountAs(amountStr, format string) (decimal.Decimal, error) {
	if format == AmountFormatLocalized {
		return ParseAmount(amountStr)
	}
	return ParsePlainAmount(amountStr)
}

// ParsePlainAmount parses a bare decimal number. Surrounding spaces are
// ignored; separators and currency marks are rejected.
func ParsePlainAmount(amountStr string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(amountStr)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, ErrEmptyAmount)
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// ParseAmount parses a string representation of an amount into a decimal value
// It handles various formats like "1,234.56", "1.234,56", "1'234.56", "1234,56".
// A lone comma is ambiguous: followed by one or two digits it is read as the
// decimal separator ("12,34" is 12.34), otherwise as a thousands separator
// ("1,234" is 1234).
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, ErrEmptyAmount)
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// StandardizeAmount converts various currency string formats to a standard format that can be parsed by decimal.NewFromString
// Handles patterns like "CHF 1'234.56", "€1.234,56", "$1,234.56", "1 234,56", etc.
func StandardizeAmount(amountStr string) string {
	amountStr = currencyMarks.ReplaceAllString(amountStr, "")
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	lastComma := strings.LastIndex(amountStr, ",")
	lastDot := strings.LastIndex(amountStr, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastDot < lastComma {
			// European format (1.234,56)
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	case lastComma >= 0:
		// A single comma followed by at most two digits is a decimal separator (1234,56);
		// anything else separates thousands (1,234 or 1,234,567)
		parts := strings.Split(amountStr, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			amountStr = strings.Replace(amountStr, ",", ".", 1)
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	return amountStr
}

// FormatAmount formats amount with exactly places decimals and no thousands separators.
func FormatAmount(amount decimal.Decimal, places int32) string {
	return amount.StringFixed(places)
}
