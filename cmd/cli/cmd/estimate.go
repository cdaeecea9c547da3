// Package cmd - estimate command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dynamo-capacity/adapters/designfile"
	"dynamo-capacity/core/output"
	"dynamo-capacity/core/pricing"
	"dynamo-capacity/internal/config"
	"dynamo-capacity/internal/errors"
	"dynamo-capacity/internal/logging"
)

var (
	outputFormat string
	showPricing  bool
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate <design-file>",
	Short: "Estimate capacity consumption for a table design",
	Long: `Validate a design file and predict the capacity units and storage it
will consume.

The design file declares tables (with optional GSIs) and access patterns;
YAML, JSON, and HCL files are accepted by extension.

Examples:
  dynamo-capacity estimate design.yaml
  dynamo-capacity estimate --format json design.yaml
  dynamo-capacity estimate --format markdown --pricing design.hcl`,
	Args: cobra.ExactArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown, csv)")
	estimateCmd.Flags().BoolVarP(&showPricing, "pricing", "p", false, "include estimated monthly cost")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	format := cfg.Output.DefaultFormat
	if outputFormat != "" {
		format = outputFormat
	}
	formatter, err := output.ForFormat(output.Format(format))
	if err != nil {
		return err
	}

	logging.Info("estimating capacity", zap.String("design", args[0]))

	plan, err := designfile.Load(args[0])
	if err != nil {
		return renderFailure(err)
	}

	report := output.BuildReport(plan)
	if showPricing || cfg.Output.ShowPricing {
		card, err := pricing.DefaultRateCard().WithOverrides(
			cfg.Pricing.RCUHourlyUSD, cfg.Pricing.WCUHourlyUSD, cfg.Pricing.StorageGBMonthUSD)
		if err != nil {
			return err
		}
		report.WithPricing(card)
	}
	// Pricing is computed before the storage section is hidden, so the
	// monthly estimate still covers the storage footprint.
	if !cfg.Output.ShowStorage {
		report.Storage = nil
		report.TotalStorageGB = 0
	}

	return formatter.Render(cmd.OutOrStdout(), report)
}

// renderFailure prints validation violations verbatim to stderr, one line
// each, and returns a short summary error for the exit status.
func renderFailure(err error) error {
	if errors.IsType(err, errors.TypeValidation) {
		var domainErr *errors.Error
		if e, ok := err.(*errors.Error); ok {
			domainErr = e
		}
		if domainErr != nil && domainErr.Cause != nil {
			fmt.Fprintln(os.Stderr, domainErr.Cause.Error())
			return fmt.Errorf("design validation failed")
		}
	}
	return err
}
