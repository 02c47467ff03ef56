// Package categorymonth handles the category-by-month spendings command
package categorymonth

import (
	"fjacquet/card-spend/cmd/common"
	"fjacquet/card-spend/cmd/root"
	"fjacquet/card-spend/internal/analysis"
	"fjacquet/card-spend/internal/logging"
	"fjacquet/card-spend/internal/validation"

	"github.com/spf13/cobra"
)

var (
	code  int
	month int
)

// Cmd represents the category-month command
var Cmd = &cobra.Command{
	Use:   "category-month",
	Short: "Show daily spendings of a category within a month",
	Long:  `Sum the transaction amounts of one category code per day of the given month (1-12).`,
	RunE:  categoryMonthFunc,
}

func init() {
	Cmd.Flags().IntVarP(&code, "code", "c", 0, "Category code")
	Cmd.Flags().IntVarP(&month, "month", "m", 0, "Month number (1-12)")
	_ = Cmd.MarkFlagRequired("code")
	_ = Cmd.MarkFlagRequired("month")
}

func categoryMonthFunc(cmd *cobra.Command, args []string) error {
	ds, err := root.LoadDataset()
	if err != nil {
		return err
	}

	if err := validation.IsValidMonth(month); err != nil {
		root.Log.Warn("Month matches no transactions", logging.F(logging.FieldMonth, month))
	}

	report, err := analysis.CategoryMonthSpendings(ds, code, month)
	if err != nil {
		return err
	}
	if err := validation.IsValidCategoryCode(code, ds.Categories); err != nil {
		root.Log.WithError(err).Warn("Category code matches no transactions", logging.F(logging.FieldCategory, code))
	}

	return common.ProcessReport(root.AppContainer.GetReportGenerator(), report, common.CurrentOptions(), cmd.OutOrStdout())
}
