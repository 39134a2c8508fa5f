package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/albayan/bayan/internal/store"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bayan %s\n", Version)
		fmt.Fprintf(cmd.OutOrStdout(), "  Go:     %s\n", runtime.Version())
		fmt.Fprintf(cmd.OutOrStdout(), "  Schema: v%d\n", store.LatestVersion)
	},
}
