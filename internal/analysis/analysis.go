// Package analysis computes the spendings reports over a loaded dataset.
// Every function is a filter, a group-by and a sum; none of them touches the
// dataset itself.
package analysis

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"fjacquet/card-spend/internal/dateutils"
	"fjacquet/card-spend/internal/models"

	"github.com/shopspring/decimal"
)

// ErrNoCategories is returned by category queries on a dataset loaded
// without a category column.
var ErrNoCategories = errors.New("dataset has no category column")

const amountLabel = "Transaction Amount"

// MonthlySpendings sums amounts per day for every transaction dated in month.
// Rows come back in ascending date order. A month outside 1-12 matches
// nothing and yields an empty report.
func MonthlySpendings(ds *models.Dataset, month int) models.Report {
	return models.Report{
		Kind:     models.ReportMonthly,
		Title:    fmt.Sprintf("Spendings for Month %d", month),
		XLabel:   "Date",
		YLabel:   amountLabel,
		Month:    month,
		Category: models.NoCategory,
		Rows:     sumByDate(ds.Filter(models.ByMonth(month)), models.NoCategory, ""),
	}
}

// CategorySpendings sums every transaction carrying code. The report holds a
// single row, or none when the code is not present.
func CategorySpendings(ds *models.Dataset, code int) (models.Report, error) {
	if !ds.HasCategories() {
		return models.Report{}, ErrNoCategories
	}

	report := models.Report{
		Kind:     models.ReportCategory,
		Title:    fmt.Sprintf("Spendings for Category %d", code),
		XLabel:   "Category",
		YLabel:   amountLabel,
		Category: code,
	}

	txs := ds.Filter(models.ByCategory(code))
	if len(txs) == 0 {
		return report, nil
	}

	label, _ := ds.Categories.Label(code)
	report.Rows = []models.Spending{{
		Category: code,
		Label:    label,
		Amount:   models.SumAmounts(txs),
	}}
	return report, nil
}

// CategoryMonthSpendings sums amounts per day for transactions carrying code
// and dated in month, in ascending date order.
func CategoryMonthSpendings(ds *models.Dataset, code, month int) (models.Report, error) {
	if !ds.HasCategories() {
		return models.Report{}, ErrNoCategories
	}

	label, _ := ds.Categories.Label(code)
	return models.Report{
		Kind:     models.ReportCategoryMonth,
		Title:    fmt.Sprintf("Spendings for Category %d in Month %d", code, month),
		XLabel:   "Date",
		YLabel:   amountLabel,
		Month:    month,
		Category: code,
		Rows:     sumByDate(ds.Filter(models.ByCategory(code), models.ByMonth(month)), code, label),
	}, nil
}

func sumByDate(txs []models.Transaction, code int, label string) []models.Spending {
	totals := make(map[time.Time]decimal.Decimal)
	for _, tx := range txs {
		day := dateutils.TruncateToDay(tx.Date)
		if sum, ok := totals[day]; ok {
			totals[day] = sum.Add(tx.Amount)
		} else {
			totals[day] = tx.Amount
		}
	}

	rows := make([]models.Spending, 0, len(totals))
	for day, amount := range totals {
		rows = append(rows, models.Spending{
			Category: code,
			Label:    label,
			Date:     day,
			Amount:   amount,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows
}
