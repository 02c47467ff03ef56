package models

import (
	"github.com/shopspring/decimal"
)

// Dataset is the cleaned, encoded transaction table. It is never modified
// after the loader returns it; filters hand out new slices.
type Dataset struct {
	Source       string
	Columns      []string
	Transactions []Transaction
	Categories   *CategoryMapping // nil when the export has no category column
	Stats        LoadStats
}

// Predicate selects transactions.
type Predicate func(Transaction) bool

// ByMonth matches transactions dated in calendar month m. Any m outside
// 1-12 matches nothing.
func ByMonth(m int) Predicate {
	return func(t Transaction) bool { return t.Month() == m }
}

// ByCategory matches transactions carrying category code.
func ByCategory(code int) Predicate {
	return func(t Transaction) bool { return t.Category == code }
}

// Len returns the number of transactions.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Transactions)
}

// HasCategories reports whether the dataset was loaded with a category column.
func (d *Dataset) HasCategories() bool {
	return d != nil && d.Categories != nil
}

// Filter returns the transactions matching every predicate, in load order.
func (d *Dataset) Filter(preds ...Predicate) []Transaction {
	if d == nil {
		return nil
	}
	var out []Transaction
next:
	for _, t := range d.Transactions {
		for _, p := range preds {
			if !p(t) {
				continue next
			}
		}
		out = append(out, t)
	}
	return out
}

// SumAmounts adds up the amounts of txs.
func SumAmounts(txs []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		total = total.Add(t.Amount)
	}
	return total
}
