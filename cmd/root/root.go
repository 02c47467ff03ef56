// Package root contains the root command for the application
package root

import (
	"fmt"
	"sync"

	"fjacquet/card-spend/internal/config"
	"fjacquet/card-spend/internal/container"
	"fjacquet/card-spend/internal/logging"
	"fjacquet/card-spend/internal/menu"
	"fjacquet/card-spend/internal/models"
	"fjacquet/card-spend/internal/validation"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to every command
type CommonFlags struct {
	Input   string
	Format  string
	Output  string
	NoChart bool
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppConfig is the configuration resolved for the running command
	AppConfig *config.Config

	// AppContainer holds the wired dependencies for the running command
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "card-spend",
		Short: "A CLI tool to explore credit card spendings by month and category.",
		Long: `card-spend loads a credit card transaction log (CSV) and reports spendings
by month, by category and by category within a month. It also gives a naive
per-category spending prediction.

Run without a subcommand to use the interactive menu.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initializeApp,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer != nil {
				_ = AppContainer.Close()
			}
		},
		RunE: runMenu,
	}

	// SharedFlags holds the persistent flag values
	SharedFlags = CommonFlags{}

	initOnce sync.Once
)

// Init initializes the root command and all flags. It is safe to call more than once.
func Init() {
	initOnce.Do(func() {
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Transaction CSV file (default from data.file)")
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "text", "Output format: text, csv, json or yaml")
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Write the report to this file instead of stdout")
		Cmd.PersistentFlags().BoolVar(&SharedFlags.NoChart, "no-chart", false, "Do not draw bar charts")
	})
}

// initializeApp resolves configuration, applies flag overrides and builds the container.
func initializeApp(cmd *cobra.Command, args []string) error {
	config.LoadEnv()

	cfg, err := config.InitializeConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if SharedFlags.Input != "" {
		cfg.Data.File = SharedFlags.Input
	}
	if SharedFlags.NoChart {
		cfg.Chart.Enabled = false
	}

	if err := validation.IsValidOutputFormat(SharedFlags.Format); err != nil {
		return err
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	AppConfig = cfg
	AppContainer = c
	Log = c.GetLogger().WithField(logging.FieldCommand, cmd.Name())
	return nil
}

// LoadDataset checks the configured input file and returns the dataset,
// reading it on first use.
func LoadDataset() (*models.Dataset, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("application is not initialized")
	}
	if err := validation.IsValidInputFile(AppConfig.Data.File); err != nil {
		return nil, err
	}
	return AppContainer.Dataset()
}

func runMenu(cmd *cobra.Command, args []string) error {
	ds, err := LoadDataset()
	if err != nil {
		return err
	}

	m := menu.New(menu.Options{
		Dataset:   ds,
		Generator: AppContainer.GetReportGenerator(),
		Predictor: AppContainer.GetPredictor(),
		Chart:     AppContainer.GetChart(),
		Logger:    Log,
	}, cmd.InOrStdin(), cmd.OutOrStdout())

	return m.Run(cmd.Context())
}
