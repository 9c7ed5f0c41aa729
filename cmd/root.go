// Package cmd contains the CLI commands for the hpvdraw application.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

// verbose holds the global --verbose flag state.
var verbose bool

// jsonOutput holds the global --json flag state.
var jsonOutput bool

func init() {
	rootCmd = BuildCommandTree(NewSession)
}

// GetVerbose returns the current verbose flag state.
func GetVerbose() bool {
	return verbose
}

// GetJSON returns the current json flag state.
func GetJSON() bool {
	return jsonOutput
}

// NewRootCmd creates a bare root command carrying only the global flags.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hpvdraw",
		Short: "Draw eligible candidates from a pool of identity numbers",
		Long: "hpvdraw builds a pool of 18-character identity numbers, either simulated or read from a file,\n" +
			"samples it and keeps the candidates that pass the eligibility rule.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}

// Root returns the command tree run by main.
func Root() *cobra.Command {
	return rootCmd
}
