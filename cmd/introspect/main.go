package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	// Global flags shared by every collection command
	snapshotPath string
	outputFormat string
	verbose      bool
	noColor      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "introspect",
		Short: "Query application metadata snapshots",
		Long: `Introspect queries metadata snapshots of an application: routes, models,
views, middleware, events, jobs, service providers, traits, and interfaces.

Filters compose under AND semantics; wildcard patterns use "*" as a
zero-or-more placeholder and are anchored on both ends.`,
		Example: `  # List all routes under /admin that use the auth middleware
  introspect routes --path '/admin/*' --middleware auth

  # Count models with a has_many relation
  introspect models --relation-kind has_many --count

  # Views extending the app layout, as JSON
  introspect views --extends layouts.app --format json

  # Interactive exploration
  introspect explore`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&snapshotPath, "snapshot", "", "Path to the snapshot JSON file (default from introspect.yml)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "table", "Output format: json or table")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newRoutesCommand())
	rootCmd.AddCommand(newModelsCommand())
	rootCmd.AddCommand(newViewsCommand())
	rootCmd.AddCommand(newMiddlewaresCommand())
	rootCmd.AddCommand(newEventsCommand())
	rootCmd.AddCommand(newJobsCommand())
	rootCmd.AddCommand(newProvidersCommand())
	rootCmd.AddCommand(newTraitsCommand())
	rootCmd.AddCommand(newInterfacesCommand())
	rootCmd.AddCommand(newExploreCommand())
	rootCmd.AddCommand(newSnapshotCommand())
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("introspect %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}
