// Package regression fits small supervised models on in-memory samples.
package regression

import "github.com/shopspring/decimal"

// Model is a supervised learner over rows of features.
type Model interface {
	Fit(X [][]decimal.Decimal, y []decimal.Decimal) error
	Predict(X [][]decimal.Decimal) []decimal.Decimal
}
