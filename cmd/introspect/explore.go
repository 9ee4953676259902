package main

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/conduit-lang/introspect"
)

// newExploreCommand builds the interactive exploration session: pick a
// collection, enter a name pattern, see the matches.
func newExploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Interactively explore a snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			reg, err := loadRegistry(logger)
			if err != nil {
				return err
			}
			inspector := introspect.New(reg)

			for {
				var collection string
				prompt := &survey.Select{
					Message: "Collection to query:",
					Options: []string{
						"routes", "models", "views", "middlewares", "events",
						"jobs", "providers", "traits", "interfaces", "quit",
					},
				}
				if err := survey.AskOne(prompt, &collection); err != nil {
					return err
				}
				if collection == "quit" {
					return nil
				}

				var pattern string
				ask := &survey.Input{
					Message: "Name pattern (* is a wildcard, empty for all):",
					Default: "*",
				}
				if err := survey.AskOne(ask, &pattern); err != nil {
					return err
				}

				if err := exploreCollection(cmd, inspector, collection, pattern); err != nil {
					return err
				}
			}
		},
	}
}

func exploreCollection(cmd *cobra.Command, inspector *introspect.Inspector, collection, pattern string) error {
	w := cmd.OutOrStdout()
	flags := terminalFlags{}

	switch collection {
	case "routes":
		return emit(w, inspector.Routes().WhereName(pattern), flags, routesTable)
	case "models":
		return emit(w, inspector.Models().WhereName(pattern), flags, modelsTable)
	case "views":
		return emit(w, inspector.Views().WhereName(pattern), flags, viewsTable)
	case "middlewares":
		return emit(w, inspector.Middlewares().WhereName(pattern), flags, middlewaresTable)
	case "events":
		return emit(w, inspector.Events().WhereName(pattern), flags, eventsTable)
	case "jobs":
		return emit(w, inspector.Jobs().WhereName(pattern), flags, jobsTable)
	case "providers":
		return emit(w, inspector.Providers().WhereName(pattern), flags, providersTable)
	case "traits":
		return emit(w, inspector.Traits().WhereName(pattern), flags, traitsTable)
	default:
		return emit(w, inspector.Interfaces().WhereName(pattern), flags, interfacesTable)
	}
}
