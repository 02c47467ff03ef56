// Package monthly handles the monthly spendings command
package monthly

import (
	"fjacquet/card-spend/cmd/common"
	"fjacquet/card-spend/cmd/root"
	"fjacquet/card-spend/internal/analysis"
	"fjacquet/card-spend/internal/logging"
	"fjacquet/card-spend/internal/validation"

	"github.com/spf13/cobra"
)

var month int

// Cmd represents the monthly command
var Cmd = &cobra.Command{
	Use:   "monthly",
	Short: "Show spendings per day for a month",
	Long: `Sum the transaction amounts of every day in the given month (1-12),
across all years in the data, and show them as a table and a bar chart.`,
	RunE: monthlyFunc,
}

func init() {
	Cmd.Flags().IntVarP(&month, "month", "m", 0, "Month number (1-12)")
	_ = Cmd.MarkFlagRequired("month")
}

func monthlyFunc(cmd *cobra.Command, args []string) error {
	ds, err := root.LoadDataset()
	if err != nil {
		return err
	}

	if err := validation.IsValidMonth(month); err != nil {
		root.Log.Warn("Month matches no transactions", logging.F(logging.FieldMonth, month))
	}

	report := analysis.MonthlySpendings(ds, month)
	root.Log.Debug("Monthly spendings computed",
		logging.F(logging.FieldMonth, month),
		logging.F(logging.FieldCount, len(report.Rows)))

	return common.ProcessReport(root.AppContainer.GetReportGenerator(), report, common.CurrentOptions(), cmd.OutOrStdout())
}
