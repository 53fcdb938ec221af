// Package main provides the entry point for the stylefang CLI tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/stylefang/cmd/stylefang/commands"
	"github.com/Sumatoshi-tech/stylefang/pkg/version"
)

// Exit codes: 0 clean scan, 1 violations found, 2 input or usage error.
const (
	exitViolations = 1
	exitUsage      = 2
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stylefang",
		Short: "Stylefang - coding style convention checker",
		Long: `Stylefang validates identifiers, method signatures and source lines
against an organization's coding-style conventions.

Commands:
  scan      Check a parsed entity stream against the convention rules
  rules     List the registered checkers`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewScanCommand())
	rootCmd.AddCommand(commands.NewRulesCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		if errors.Is(err, commands.ErrViolationsFound) {
			os.Exit(exitViolations)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "stylefang %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
