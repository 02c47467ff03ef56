package predictor

import (
	"testing"
	"time"

	"fjacquet/card-spend/internal/analysis"
	"fjacquet/card-spend/internal/logging"
	"fjacquet/card-spend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(d int, code int, amount string) models.Transaction {
	return models.Transaction{
		Date:     time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC),
		Category: code,
		Amount:   decimal.RequireFromString(amount),
	}
}

func dataset(txs ...models.Transaction) *models.Dataset {
	return &models.Dataset{
		Transactions: txs,
		Categories:   models.NewCategoryMapping([]string{"Groceries", "Travel", "Fuel"}),
	}
}

func TestPredict_MeanOfCategory(t *testing.T) {
	ds := dataset(tx(1, 0, "100"), tx(2, 0, "200"))

	p, err := New(logging.NewMockLogger()).Predict(ds, 0)
	require.NoError(t, err)

	assert.True(t, p.Available)
	assert.Equal(t, 2, p.Samples)
	assert.Equal(t, "Groceries", p.Label)
	assert.True(t, decimal.NewFromInt(150).Equal(p.Amount), "got %s", p.Amount)
	assert.Equal(t, "Predicted future spendings for category 0: 150.00", p.String())
}

func TestPredict_MatchesMeanForEveryCategory(t *testing.T) {
	ds := dataset(
		tx(1, 1, "10.50"), tx(2, 1, "20"), tx(3, 1, "30.25"),
		tx(4, 2, "7"),
		tx(5, 0, "1"), tx(6, 0, "3"),
	)
	pred := New(logging.NewMockLogger())

	for _, code := range []int{0, 1, 2} {
		txs := ds.Filter(models.ByCategory(code))
		mean := models.SumAmounts(txs).Div(decimal.NewFromInt(int64(len(txs))))

		p, err := pred.Predict(ds, code)
		require.NoError(t, err)
		assert.True(t, mean.Equal(p.Amount), "category %d: want %s, got %s", code, mean, p.Amount)
	}
}

func TestPredict_CentAmountsMatchMeanExactly(t *testing.T) {
	ds := dataset(tx(1, 0, "0.10"), tx(2, 0, "0.20"))

	p, err := New(logging.NewMockLogger()).Predict(ds, 0)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.15").Equal(p.Amount), "got %s", p.Amount)
}

func TestPredict_NoData(t *testing.T) {
	ds := dataset(tx(1, 0, "100"))
	log := logging.NewMockLogger()

	p, err := New(log).Predict(ds, 2)
	require.NoError(t, err)

	assert.False(t, p.Available)
	assert.True(t, p.Amount.IsZero())
	assert.Equal(t, "Predicted future spendings for category 2: "+NoDataMessage, p.String())
	assert.True(t, log.HasEntry("DEBUG", "No transactions for category"))

	p, err = New(log).Predict(ds, 99)
	require.NoError(t, err)
	assert.False(t, p.Available)
	assert.Empty(t, p.Label)
}

func TestPredict_NoCategoryColumn(t *testing.T) {
	ds := &models.Dataset{Transactions: []models.Transaction{tx(1, models.NoCategory, "5")}}

	_, err := New(logging.NewMockLogger()).Predict(ds, 0)
	assert.ErrorIs(t, err, analysis.ErrNoCategories)
}

func TestNew_NilLogger(t *testing.T) {
	assert.NotNil(t, New(nil).logger)
}
