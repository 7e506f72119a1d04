package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/wudi/headline/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("headline %s\n", version.Version)
		fmt.Printf("  Go:     %s\n", runtime.Version())
		if version.Commit != "" {
			fmt.Printf("  Commit: %s\n", version.Commit)
		}
		if version.Date != "" {
			fmt.Printf("  Date:   %s\n", version.Date)
		}
	},
}
