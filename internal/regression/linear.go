package regression

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errors returned by Fit.
var (
	ErrNoSamples       = errors.New("no samples to fit")
	ErrSampleMismatch  = errors.New("feature rows and targets differ in length")
	ErrFeatureMismatch = errors.New("every row must have exactly one feature")
)

// LinearRegression is an ordinary least squares fit of y = Slope*x + Intercept
// over a single feature. Sums are kept in decimal so a fit over currency
// amounts reproduces their mean exactly.
//
// When the feature has zero variance the slope is undetermined; Fit then uses
// the minimum-norm solution (Slope 0, Intercept mean(y)), so predictions fall
// back to the mean target.
type LinearRegression struct {
	Slope     decimal.Decimal
	Intercept decimal.Decimal
}

// NewLinearRegression returns an unfitted model.
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

// Fit estimates Slope and Intercept from X (one feature per row) and y.
func (m *LinearRegression) Fit(X [][]decimal.Decimal, y []decimal.Decimal) error {
	if len(X) == 0 {
		return ErrNoSamples
	}
	if len(X) != len(y) {
		return fmt.Errorf("%w: %d rows, %d targets", ErrSampleMismatch, len(X), len(y))
	}

	n := decimal.NewFromInt(int64(len(X)))
	sumX, sumY := decimal.Zero, decimal.Zero
	for i, row := range X {
		if len(row) != 1 {
			return fmt.Errorf("%w: row %d has %d", ErrFeatureMismatch, i, len(row))
		}
		sumX = sumX.Add(row[0])
		sumY = sumY.Add(y[i])
	}
	meanX, meanY := sumX.Div(n), sumY.Div(n)

	sxx, sxy := decimal.Zero, decimal.Zero
	for i, row := range X {
		dx := row[0].Sub(meanX)
		sxx = sxx.Add(dx.Mul(dx))
		sxy = sxy.Add(dx.Mul(y[i].Sub(meanY)))
	}

	if sxx.IsPositive() {
		m.Slope = sxy.Div(sxx)
		m.Intercept = meanY.Sub(m.Slope.Mul(meanX))
		return nil
	}
	m.Slope = decimal.Zero
	m.Intercept = meanY
	return nil
}

// Predict evaluates the fitted line for every row of X.
// An unfitted model predicts 0.
func (m *LinearRegression) Predict(X [][]decimal.Decimal) []decimal.Decimal {
	if len(X) == 0 {
		return nil
	}
	pred := make([]decimal.Decimal, len(X))
	for i, row := range X {
		if len(row) == 0 {
			pred[i] = m.Intercept
			continue
		}
		pred[i] = m.Slope.Mul(row[0]).Add(m.Intercept)
	}
	return pred
}
