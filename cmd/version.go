package cmd

import (
	"fmt"

	"silhouette-tracer/internal/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("silhouette-tracer %s\n", version.Version)
		fmt.Printf("  Commit: %s\n", version.GitCommit)
		fmt.Printf("  Built:  %s\n", version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
