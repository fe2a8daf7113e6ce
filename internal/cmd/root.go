// Package cmd implements the CLI commands for mergegate.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/mergegate/internal/term"
	"github.com/xdg/mergegate/internal/version"
)

var (
	quietFlag bool
	storeFlag string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mergegate",
	Short: "Merge confirmation gate for coding agents",
	Long: `Mergegate makes an AI coding agent stop for confirmation before it merges
a GitHub pull request.

Installed as a pair of tool-event hooks, it inspects each shell command the
agent is about to run. A "gh pr merge" for a pull request that has not been
confirmed is routed to a manual permission prompt; once a merge has been
confirmed and executed, its pull-request number is recorded so retries of
the same merge run without another prompt.`,
	Version: version.Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		term.SetQuiet(quietFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "Override the approval store path")
}

// Execute runs the root command and returns any error.
func Execute() error {
	return rootCmd.Execute()
}
