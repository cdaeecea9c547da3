// Package cmd - validate command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dynamo-capacity/adapters/designfile"
	"dynamo-capacity/internal/logging"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <design-file>",
	Short: "Validate a table design without estimating",
	Long: `Check a design file against the provider's structural limits and the
design's own referential invariants. Every violation is reported, one line
per failed check, so the whole document can be fixed in one pass.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	logging.Info("validating design", zap.String("design", args[0]))

	if _, err := designfile.Load(args[0]); err != nil {
		return renderFailure(err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "design is valid")
	return nil
}
