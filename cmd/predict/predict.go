// Package predict handles the spending prediction command
package predict

import (
	"fjacquet/card-spend/cmd/common"
	"fjacquet/card-spend/cmd/root"
	"fjacquet/card-spend/internal/logging"
	"fjacquet/card-spend/internal/validation"

	"github.com/spf13/cobra"
)

var code int

// Cmd represents the predict command
var Cmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict future spendings for a category",
	Long: `Fit a linear regression of transaction amount on category code over the
transactions of one category and evaluate it at that code. With a single
category the fit reduces to the mean amount.`,
	RunE: predictFunc,
}

func init() {
	Cmd.Flags().IntVarP(&code, "code", "c", 0, "Category code")
	_ = Cmd.MarkFlagRequired("code")
}

func predictFunc(cmd *cobra.Command, args []string) error {
	ds, err := root.LoadDataset()
	if err != nil {
		return err
	}

	prediction, err := root.AppContainer.GetPredictor().Predict(ds, code)
	if err != nil {
		return err
	}
	if err := validation.IsValidCategoryCode(code, ds.Categories); err != nil {
		root.Log.WithError(err).Warn("Category code matches no transactions", logging.F(logging.FieldCategory, code))
	}

	return common.ProcessPrediction(root.AppContainer.GetReportGenerator(), prediction, common.CurrentOptions(), cmd.OutOrStdout())
}
