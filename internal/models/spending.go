package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportKind identifies which spendings view produced a Report.
type ReportKind string

const (
	ReportMonthly       ReportKind = "monthly"
	ReportCategory      ReportKind = "category"
	ReportCategoryMonth ReportKind = "category-month"
)

// Spending is one aggregate row. Which fields are meaningful depends on the
// report grouping: monthly rows carry a Date, category rows a Category, and
// category-by-month rows both.
type Spending struct {
	Category int
	Label    string
	Date     time.Time
	Amount   decimal.Decimal
}

// Report is the result of one spendings query.
type Report struct {
	Kind     ReportKind
	Title    string
	XLabel   string
	YLabel   string
	Month    int
	Category int
	Rows     []Spending
}

// Total returns the sum of all rows.
func (r Report) Total() decimal.Decimal {
	total := decimal.Zero
	for _, row := range r.Rows {
		total = total.Add(row.Amount)
	}
	return total
}

// IsEmpty reports whether the query matched no transactions.
func (r Report) IsEmpty() bool {
	return len(r.Rows) == 0
}
