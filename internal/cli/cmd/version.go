package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "hotbarscroll %s\n", buildInfo.Version)
		fmt.Fprintf(out, "commit: %s\n", buildInfo.Commit)
		fmt.Fprintf(out, "built: %s\n", buildInfo.BuildDate)
		fmt.Fprintf(out, "go: %s\n", buildInfo.GoVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
