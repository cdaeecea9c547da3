// Package cmd - diff command
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"dynamo-capacity/adapters/designfile"
	"dynamo-capacity/core/diff"
	"dynamo-capacity/core/output"
)

var diffJSON bool

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff <before-design> <after-design>",
	Short: "Compare the capacity consumption of two designs",
	Long: `Load two design files, estimate both, and report the per-pattern
capacity deltas between them.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().BoolVar(&diffJSON, "json", false, "emit the diff as JSON")
}

func runDiff(cmd *cobra.Command, args []string) error {
	before, err := loadReport(args[0])
	if err != nil {
		return err
	}
	after, err := loadReport(args[1])
	if err != nil {
		return err
	}

	result := diff.Compare(before, after)
	w := cmd.OutOrStdout()

	if diffJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if result.Empty() {
		fmt.Fprintln(w, "no capacity changes")
		return nil
	}
	for _, name := range result.Added {
		fmt.Fprintf(w, "+ %s\n", name)
	}
	for _, name := range result.Removed {
		fmt.Fprintf(w, "- %s\n", name)
	}
	for _, change := range result.Changed {
		fmt.Fprintf(w, "~ %s: %s -> %s RCU/s, %s -> %s WCU/s\n",
			change.PatternName,
			change.RCUsPerSecondBefore.String(), change.RCUsPerSecondAfter.String(),
			change.WCUsPerSecondBefore.String(), change.WCUsPerSecondAfter.String())
	}
	fmt.Fprintf(w, "total: %s RCU/s, %s WCU/s, %s GB\n",
		signed(result.RCUDeltaPerSecond.String()),
		signed(result.WCUDeltaPerSecond.String()),
		fmt.Sprintf("%+g", result.StorageDeltaGB))
	return nil
}

func loadReport(path string) (*output.PlanReport, error) {
	plan, err := designfile.Load(path)
	if err != nil {
		return nil, renderFailure(err)
	}
	return output.BuildReport(plan), nil
}

func signed(s string) string {
	if len(s) > 0 && s[0] != '-' {
		return "+" + s
	}
	return s
}
