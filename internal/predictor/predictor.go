// Package predictor produces the per-category spending estimate.
package predictor

import (
	"fmt"

	"fjacquet/card-spend/internal/analysis"
	"fjacquet/card-spend/internal/logging"
	"fjacquet/card-spend/internal/models"
	"fjacquet/card-spend/internal/regression"

	"github.com/shopspring/decimal"
)

// NoDataMessage is shown when a category has no transactions to fit.
const NoDataMessage = "No data available for this category"

// Prediction is the outcome of Predict. When Available is false there was
// nothing to fit and Amount is zero.
type Prediction struct {
	Category  int             `json:"category" yaml:"category"`
	Label     string          `json:"label,omitempty" yaml:"label,omitempty"`
	Available bool            `json:"available" yaml:"available"`
	Amount    decimal.Decimal `json:"amount" yaml:"amount"`
	Samples   int             `json:"samples" yaml:"samples"`
}

// String formats the prediction the way it is shown to the user.
func (p Prediction) String() string {
	value := NoDataMessage
	if p.Available {
		value = p.Amount.StringFixed(2)
	}
	return fmt.Sprintf("Predicted future spendings for category %d: %s", p.Category, value)
}

// Predictor fits a linear model on one category's transactions.
type Predictor struct {
	logger logging.Logger
}

// New creates a Predictor. A nil logger falls back to a logrus adapter.
func New(logger logging.Logger) *Predictor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Predictor{logger: logger}
}

// Predict fits y = a*code + b on the amounts of every transaction carrying
// code and evaluates it at code. Since the feature is the code itself it is
// constant within the sample, so the fit degenerates to the mean amount.
func (p *Predictor) Predict(ds *models.Dataset, code int) (Prediction, error) {
	if !ds.HasCategories() {
		return Prediction{}, analysis.ErrNoCategories
	}

	label, _ := ds.Categories.Label(code)
	result := Prediction{Category: code, Label: label}

	txs := ds.Filter(models.ByCategory(code))
	if len(txs) == 0 {
		p.logger.Debug("No transactions for category",
			logging.F(logging.FieldCategory, code))
		return result, nil
	}

	X := make([][]decimal.Decimal, len(txs))
	y := make([]decimal.Decimal, len(txs))
	for i, t := range txs {
		X[i] = []decimal.Decimal{decimal.NewFromInt(int64(t.Category))}
		y[i] = t.Amount
	}

	model := regression.NewLinearRegression()
	if err := model.Fit(X, y); err != nil {
		return result, fmt.Errorf("fitting category %d: %w", code, err)
	}

	estimate := model.Predict([][]decimal.Decimal{{decimal.NewFromInt(int64(code))}})[0]
	result.Available = true
	result.Amount = estimate
	result.Samples = len(txs)

	p.logger.Debug("Fitted category model",
		logging.F(logging.FieldCategory, code),
		logging.F(logging.FieldCount, len(txs)),
		logging.F("slope", model.Slope.String()),
		logging.F("intercept", model.Intercept.String()))

	return result, nil
}
