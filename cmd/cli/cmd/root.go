// Package cmd provides the CLI commands for dynamo-capacity.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dynamo-capacity/internal/config"
	"dynamo-capacity/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dynamo-capacity",
	Short: "Predict DynamoDB capacity consumption for a table design",
	Long: `dynamo-capacity is a capacity-planning calculator for DynamoDB.

It takes a design file declaring tables, their secondary indexes, and the
access patterns exercised against them, validates the design against the
provider's structural limits, and predicts the read/write capacity units
and storage each pattern will consume.

Examples:
  dynamo-capacity estimate design.yaml
  dynamo-capacity estimate --format markdown --pricing design.yaml
  dynamo-capacity validate design.yaml
  dynamo-capacity diff before.yaml after.yaml`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dynamo-capacity.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("dynamo-capacity version 0.1.0")
	},
}
