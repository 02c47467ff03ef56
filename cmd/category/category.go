// Package category handles the category spendings command
package category

import (
	"fjacquet/card-spend/cmd/common"
	"fjacquet/card-spend/cmd/root"
	"fjacquet/card-spend/internal/analysis"
	"fjacquet/card-spend/internal/logging"
	"fjacquet/card-spend/internal/validation"

	"github.com/spf13/cobra"
)

var code int

// Cmd represents the category command
var Cmd = &cobra.Command{
	Use:   "category",
	Short: "Show total spendings for a category",
	Long: `Sum the transaction amounts of one category code. Run the categories
command to list the codes.`,
	RunE: categoryFunc,
}

func init() {
	Cmd.Flags().IntVarP(&code, "code", "c", 0, "Category code")
	_ = Cmd.MarkFlagRequired("code")
}

func categoryFunc(cmd *cobra.Command, args []string) error {
	ds, err := root.LoadDataset()
	if err != nil {
		return err
	}

	report, err := analysis.CategorySpendings(ds, code)
	if err != nil {
		return err
	}
	if err := validation.IsValidCategoryCode(code, ds.Categories); err != nil {
		root.Log.WithError(err).Warn("Category code matches no transactions", logging.F(logging.FieldCategory, code))
	}

	return common.ProcessReport(root.AppContainer.GetReportGenerator(), report, common.CurrentOptions(), cmd.OutOrStdout())
}
