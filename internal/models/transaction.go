// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one retained row of the card export.
type Transaction struct {
	Date     time.Time       // calendar date, UTC midnight
	Category int             // category code, NoCategory when the export has none
	Amount   decimal.Decimal // Transaction Amount

	// Fields holds every raw column of the row, including the ones the
	// reports never look at.
	Fields map[string]string
}

// Month returns the calendar month number (1-12) of the transaction.
func (t Transaction) Month() int {
	return int(t.Date.Month())
}
