// Package categories handles the category mapping listing command
package categories

import (
	"fjacquet/card-spend/cmd/common"
	"fjacquet/card-spend/cmd/root"
	"fjacquet/card-spend/internal/analysis"

	"github.com/spf13/cobra"
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List category codes and labels",
	Long:  `List the code assigned to each category, in order of first appearance in the data.`,
	Args:  cobra.NoArgs,
	RunE:  categoriesFunc,
}

func categoriesFunc(cmd *cobra.Command, args []string) error {
	ds, err := root.LoadDataset()
	if err != nil {
		return err
	}
	if !ds.HasCategories() {
		return analysis.ErrNoCategories
	}

	return common.ProcessMapping(root.AppContainer.GetReportGenerator(), ds.Categories, common.CurrentOptions(), cmd.OutOrStdout())
}
