package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fjacquet/card-spend/cmd/categories"
	"fjacquet/card-spend/cmd/category"
	"fjacquet/card-spend/cmd/categorymonth"
	"fjacquet/card-spend/cmd/monthly"
	"fjacquet/card-spend/cmd/predict"
	"fjacquet/card-spend/cmd/root"
	"fjacquet/card-spend/internal/config"

	"github.com/fatih/color"
)

func init() {
	// 1. Load .env before viper reads the environment
	config.LoadEnv()

	// 2. Initialize root command flags
	root.Init()

	// 3. Add all subcommands
	root.Cmd.AddCommand(monthly.Cmd)
	root.Cmd.AddCommand(category.Cmd)
	root.Cmd.AddCommand(categorymonth.Cmd)
	root.Cmd.AddCommand(predict.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := root.Cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		root.Log.WithError(err).Debug("Command failed")
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}
