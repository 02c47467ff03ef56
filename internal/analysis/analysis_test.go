package analysis

import (
	"testing"
	"time"

	"fjacquet/card-spend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

func tx(date time.Time, code int, amount string) models.Transaction {
	return models.Transaction{Date: date, Category: code, Amount: decimal.RequireFromString(amount)}
}

func fixture() *models.Dataset {
	return &models.Dataset{
		Transactions: []models.Transaction{
			tx(day(time.January, 2), 0, "200"),
			tx(day(time.January, 1), 0, "100"),
			tx(day(time.January, 2), 1, "15.25"),
			tx(day(time.February, 3), 1, "40"),
			tx(day(time.January, 1), 1, "4.75"),
			tx(time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), 0, "1"),
		},
		Categories: models.NewCategoryMapping([]string{"Groceries", "Travel"}),
	}
}

func amounts(rows []models.Spending) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Amount.String())
	}
	return out
}

func TestMonthlySpendings(t *testing.T) {
	report := MonthlySpendings(fixture(), 1)

	assert.Equal(t, models.ReportMonthly, report.Kind)
	assert.Equal(t, "Spendings for Month 1", report.Title)
	require.Len(t, report.Rows, 3)

	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), report.Rows[0].Date)
	assert.Equal(t, day(time.January, 1), report.Rows[1].Date)
	assert.Equal(t, day(time.January, 2), report.Rows[2].Date)
	assert.Equal(t, []string{"1", "104.75", "215.25"}, amounts(report.Rows))
}

func TestMonthlySpendings_TotalMatchesMonthSum(t *testing.T) {
	ds := fixture()
	for month := 0; month <= 13; month++ {
		report := MonthlySpendings(ds, month)
		want := models.SumAmounts(ds.Filter(models.ByMonth(month)))
		assert.True(t, want.Equal(report.Total()), "month %d: want %s got %s", month, want, report.Total())
	}
}

func TestMonthlySpendings_OutOfRangeMonth(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		report := MonthlySpendings(fixture(), month)
		assert.True(t, report.IsEmpty(), "month %d", month)
	}
}

func TestCategorySpendings(t *testing.T) {
	report, err := CategorySpendings(fixture(), 1)
	require.NoError(t, err)

	require.Len(t, report.Rows, 1)
	assert.Equal(t, 1, report.Rows[0].Category)
	assert.Equal(t, "Travel", report.Rows[0].Label)
	assert.Equal(t, "60", report.Rows[0].Amount.String())
	assert.Equal(t, "Spendings for Category 1", report.Title)
}

func TestCategorySpendings_Example(t *testing.T) {
	ds := &models.Dataset{
		Transactions: []models.Transaction{
			tx(day(time.January, 1), 0, "100"),
			tx(day(time.January, 2), 0, "200"),
		},
		Categories: models.NewCategoryMapping([]string{"Shopping"}),
	}

	report, err := CategorySpendings(ds, 0)
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.True(t, decimal.NewFromInt(300).Equal(report.Rows[0].Amount))
}

func TestCategorySpendings_UnknownCode(t *testing.T) {
	report, err := CategorySpendings(fixture(), 9)
	require.NoError(t, err)
	assert.True(t, report.IsEmpty())
}

func TestCategoryMonthSpendings(t *testing.T) {
	report, err := CategoryMonthSpendings(fixture(), 1, 1)
	require.NoError(t, err)

	require.Len(t, report.Rows, 2)
	assert.Equal(t, day(time.January, 1), report.Rows[0].Date)
	assert.Equal(t, day(time.January, 2), report.Rows[1].Date)
	assert.Equal(t, []string{"4.75", "15.25"}, amounts(report.Rows))
	for _, row := range report.Rows {
		assert.Equal(t, 1, row.Category)
		assert.Equal(t, "Travel", row.Label)
	}

	empty, err := CategoryMonthSpendings(fixture(), 1, 13)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestCategoryQueries_WithoutCategories(t *testing.T) {
	ds := &models.Dataset{Transactions: []models.Transaction{tx(day(time.March, 1), models.NoCategory, "1")}}

	_, err := CategorySpendings(ds, 0)
	assert.ErrorIs(t, err, ErrNoCategories)

	_, err = CategoryMonthSpendings(ds, 0, 3)
	assert.ErrorIs(t, err, ErrNoCategories)

	assert.Len(t, MonthlySpendings(ds, 3).Rows, 1, "monthly view does not need categories")
}
