// Package cmd holds the CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "silhouette-tracer",
	Short: "Extract per-person silhouette outlines from a group photo",
	Long: `Silhouette Tracer ingests a single photograph of a group standing in a
row, segments the foreground into one region per person, and emits
normalized vector outlines plus name-tag and hover metadata as JSON for
a web front end.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
