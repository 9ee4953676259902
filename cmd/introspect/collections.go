package main

import (
	"github.com/spf13/cobra"

	"github.com/conduit-lang/introspect"
	"github.com/conduit-lang/introspect/descriptor"
)

func newModelsCommand() *cobra.Command {
	var (
		name         string
		table        string
		trait        string
		relationKind string
		relationTo   string
		implements   string
		flags        terminalFlags
	)

	cmd := &cobra.Command{
		Use:   "models",
		Short: "Query model descriptors",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			reg, err := loadRegistry(logger)
			if err != nil {
				return err
			}

			q := introspect.Models(reg)
			if name != "" {
				q.WhereName(name)
			}
			if table != "" {
				q.WhereTable(table)
			}
			if trait != "" {
				q.WhereUsesTrait(trait)
			}
			if relationKind != "" {
				q.WhereHasRelationKind(descriptor.RelationKind(relationKind))
			}
			if relationTo != "" {
				q.WhereHasRelationTo(relationTo)
			}
			if implements != "" {
				q.WhereImplements(implements)
			}

			return emit(cmd.OutOrStdout(), q, flags, modelsTable)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Filter by model name (wildcard pattern)")
	cmd.Flags().StringVar(&table, "table", "", "Filter by table name")
	cmd.Flags().StringVar(&trait, "trait", "", "Filter by used trait")
	cmd.Flags().StringVar(&relationKind, "relation-kind", "", "Filter by relation kind (has_many, belongs_to, ...)")
	cmd.Flags().StringVar(&relationTo, "relation-to", "", "Filter by relation target model")
	cmd.Flags().StringVar(&implements, "implements", "", "Filter by implemented interface")
	addTerminalFlags(cmd, &flags)

	return cmd
}

func newViewsCommand() *cobra.Command {
	var (
		name      string
		prefix    string
		extends   string
		component string
		flags     terminalFlags
	)

	cmd := &cobra.Command{
		Use:   "views",
		Short: "Query view templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			reg, err := loadRegistry(logger)
			if err != nil {
				return err
			}

			q := introspect.Views(reg)
			if name != "" {
				q.WhereName(name)
			}
			if prefix != "" {
				q.WhereNameStartsWith(prefix)
			}
			if extends != "" {
				q.WhereExtends(extends)
			}
			if component != "" {
				q.WhereUsesComponent(component)
			}

			return emit(cmd.OutOrStdout(), q, flags, viewsTable)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Filter by view name (wildcard pattern)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Filter by name prefix (wildcard-capable)")
	cmd.Flags().StringVar(&extends, "extends", "", "Filter by extended layout")
	cmd.Flags().StringVar(&component, "component", "", "Filter by rendered component")
	addTerminalFlags(cmd, &flags)

	return cmd
}

func newMiddlewaresCommand() *cobra.Command {
	var (
		name   string
		class  string
		group  string
		global bool
		flags  terminalFlags
	)

	cmd := &cobra.Command{
		Use:   "middlewares",
		Short: "Query middleware registrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			reg, err := loadRegistry(logger)
			if err != nil {
				return err
			}

			q := introspect.Middlewares(reg)
			if name != "" {
				q.WhereName(name)
			}
			if class != "" {
				q.WhereClass(class)
			}
			if group != "" {
				q.WhereInGroup(group)
			}
			if global {
				q.WhereGlobal()
			}

			return emit(cmd.OutOrStdout(), q, flags, middlewaresTable)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Filter by alias (wildcard pattern)")
	cmd.Flags().StringVar(&class, "class", "", "Filter by implementing class (wildcard pattern)")
	cmd.Flags().StringVar(&group, "group", "", "Filter by middleware group")
	cmd.Flags().BoolVar(&global, "global", false, "Only global middleware")
	addTerminalFlags(cmd, &flags)

	return cmd
}

func newEventsCommand() *cobra.Command {
	var (
		name      string
		listener  string
		broadcast bool
		flags     terminalFlags
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Query event descriptors",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			reg, err := loadRegistry(logger)
			if err != nil {
				return err
			}

			q := introspect.Events(reg)
			if name != "" {
				q.WhereName(name)
			}
			if listener != "" {
				q.WhereHasListener(listener)
			}
			if broadcast {
				q.WhereBroadcast()
			}

			return emit(cmd.OutOrStdout(), q, flags, eventsTable)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Filter by event name (wildcard pattern)")
	cmd.Flags().StringVar(&listener, "listener", "", "Filter by attached listener class")
	cmd.Flags().BoolVar(&broadcast, "broadcast", false, "Only broadcasting events")
	addTerminalFlags(cmd, &flags)

	return cmd
}

func newJobsCommand() *cobra.Command {
	var (
		name  string
		queue string
		sync  bool
		flags terminalFlags
	)

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Query job descriptors",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			reg, err := loadRegistry(logger)
			if err != nil {
				return err
			}

			q := introspect.Jobs(reg)
			if name != "" {
				q.WhereName(name)
			}
			if queue != "" {
				q.WhereOnQueue(queue)
			}
			if sync {
				q.WhereSync()
			}

			return emit(cmd.OutOrStdout(), q, flags, jobsTable)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Filter by job name (wildcard pattern)")
	cmd.Flags().StringVar(&queue, "queue", "", "Filter by queue")
	cmd.Flags().BoolVar(&sync, "sync", false, "Only synchronous jobs")
	addTerminalFlags(cmd, &flags)

	return cmd
}

func newProvidersCommand() *cobra.Command {
	var (
		name     string
		provides string
		deferred bool
		flags    terminalFlags
	)

	cmd := &cobra.Command{
		Use:   "providers",
		Short: "Query service provider descriptors",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			reg, err := loadRegistry(logger)
			if err != nil {
				return err
			}

			q := introspect.Providers(reg)
			if name != "" {
				q.WhereName(name)
			}
			if provides != "" {
				q.WhereProvides(provides)
			}
			if deferred {
				q.WhereDeferred()
			}

			return emit(cmd.OutOrStdout(), q, flags, providersTable)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Filter by provider name (wildcard pattern)")
	cmd.Flags().StringVar(&provides, "provides", "", "Filter by bound service")
	cmd.Flags().BoolVar(&deferred, "deferred", false, "Only deferred providers")
	addTerminalFlags(cmd, &flags)

	return cmd
}

func newTraitsCommand() *cobra.Command {
	var (
		name   string
		usedBy string
		flags  terminalFlags
	)

	cmd := &cobra.Command{
		Use:   "traits",
		Short: "Query trait descriptors",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			reg, err := loadRegistry(logger)
			if err != nil {
				return err
			}

			q := introspect.Traits(reg)
			if name != "" {
				q.WhereName(name)
			}
			if usedBy != "" {
				q.WhereUsedBy(usedBy)
			}

			return emit(cmd.OutOrStdout(), q, flags, traitsTable)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Filter by trait name (wildcard pattern)")
	cmd.Flags().StringVar(&usedBy, "used-by", "", "Filter by using class")
	addTerminalFlags(cmd, &flags)

	return cmd
}

func newInterfacesCommand() *cobra.Command {
	var (
		name          string
		implementedBy string
		flags         terminalFlags
	)

	cmd := &cobra.Command{
		Use:   "interfaces",
		Short: "Query interface descriptors",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			reg, err := loadRegistry(logger)
			if err != nil {
				return err
			}

			q := introspect.Interfaces(reg)
			if name != "" {
				q.WhereName(name)
			}
			if implementedBy != "" {
				q.WhereImplementedBy(implementedBy)
			}

			return emit(cmd.OutOrStdout(), q, flags, interfacesTable)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Filter by interface name (wildcard pattern)")
	cmd.Flags().StringVar(&implementedBy, "implemented-by", "", "Filter by implementing class")
	addTerminalFlags(cmd, &flags)

	return cmd
}
