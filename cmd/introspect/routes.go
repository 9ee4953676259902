package main

import (
	"github.com/spf13/cobra"

	"github.com/conduit-lang/introspect"
	"github.com/conduit-lang/introspect/descriptor"
)

func newRoutesCommand() *cobra.Command {
	var (
		name       string
		nameNot    string
		path       string
		method     string
		middleware []string
		matchAll   bool
		without    string
		controller string
		flags      terminalFlags
	)

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Query registered routes",
		Example: `  # All routes named admin.*
  introspect routes --name 'admin.*'

  # GET routes under /api that use auth and verified
  introspect routes --method GET --path '/api/*' --middleware auth --middleware verified --all

  # Routes handled by UserController@index
  introspect routes --controller UserController@index

  # Does any route skip the auth middleware?
  introspect routes --without-middleware auth --exists`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			reg, err := loadRegistry(logger)
			if err != nil {
				return err
			}

			q := introspect.Routes(reg)
			if name != "" {
				q.WhereName(name)
			}
			if nameNot != "" {
				q.WhereNameDoesntMatch(nameNot)
			}
			if path != "" {
				q.WherePath(path)
			}
			if method != "" {
				q.WhereUsesMethod(method)
			}
			switch len(middleware) {
			case 0:
			case 1:
				q.WhereUsesMiddleware(middleware[0])
			default:
				mode := introspect.MatchAny
				if matchAll {
					mode = introspect.MatchAll
				}
				q.WhereUsesMiddlewares(middleware, mode)
			}
			if without != "" {
				q.WhereDoesntUseMiddleware(without)
			}
			if controller != "" {
				binding := descriptor.ParseBinding(controller)
				if binding.Method != "" {
					q.WhereUsesController(binding.Class, binding.Method)
				} else {
					q.WhereUsesController(binding.Class)
				}
			}

			return emit(cmd.OutOrStdout(), q, flags, routesTable)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Filter by route name (wildcard pattern)")
	cmd.Flags().StringVar(&nameNot, "name-not", "", "Exclude routes whose name matches the pattern")
	cmd.Flags().StringVar(&path, "path", "", "Filter by path (wildcard pattern)")
	cmd.Flags().StringVar(&method, "method", "", "Filter by HTTP method")
	cmd.Flags().StringArrayVar(&middleware, "middleware", nil, "Filter by middleware (repeatable)")
	cmd.Flags().BoolVar(&matchAll, "all", false, "Require every --middleware instead of any")
	cmd.Flags().StringVar(&without, "without-middleware", "", "Exclude routes using the middleware")
	cmd.Flags().StringVar(&controller, "controller", "", "Filter by controller binding (Class or Class@method)")
	addTerminalFlags(cmd, &flags)

	return cmd
}

func addTerminalFlags(cmd *cobra.Command, flags *terminalFlags) {
	cmd.Flags().BoolVar(&flags.count, "count", false, "Print only the match count")
	cmd.Flags().BoolVar(&flags.exists, "exists", false, "Print only whether any record matches")
	cmd.Flags().BoolVar(&flags.first, "first", false, "Print only the first match")
}
