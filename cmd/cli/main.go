// Package main is the entry point for the dynamo-capacity CLI.
package main

import (
	"os"

	"dynamo-capacity/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
