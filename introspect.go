// Package introspect provides fluent query builders over introspected
// application metadata: routes, models, views, middleware registrations,
// events, jobs, service providers, traits, and interfaces.
//
// Each builder composes any number of named filters under AND semantics,
// widened by independently configured OR branches, and evaluates them
// against the full candidate collection fetched from a provider:
//
//	routes, err := introspect.New(reg).Routes().
//		WherePath("/admin/*").
//		WhereUsesMiddleware("auth").
//		Or(func(q *introspect.RoutesQuery) {
//			q.WhereName("public.*")
//		}).
//		Get()
//
// Providers supply the records; the builders never ask for a subset and do
// all scoping client-side after retrieval.
package introspect

import (
	"errors"

	"github.com/conduit-lang/introspect/descriptor"
)

// ErrNoProvider is returned by a terminal operation invoked on a builder
// without a provider, such as one handed to an Or configuration callback.
var ErrNoProvider = errors.New("introspect: query has no provider")

// MatchMode selects how a multi-valued membership filter combines its
// targets.
type MatchMode int

const (
	// MatchAny requires at least one target to be present.
	MatchAny MatchMode = iota
	// MatchAll requires every target to be present.
	MatchAll
)

// String returns the string representation of the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchAll:
		return "all"
	default:
		return "any"
	}
}

// Per-domain provider contracts. A provider returns the complete,
// currently-registered set of records of its kind; fetch failures propagate
// to terminal callers unchanged.
type (
	// RouteProvider supplies route descriptors.
	RouteProvider interface {
		Routes() ([]descriptor.Route, error)
	}
	// ModelProvider supplies model descriptors.
	ModelProvider interface {
		Models() ([]descriptor.Model, error)
	}
	// ViewProvider supplies view descriptors.
	ViewProvider interface {
		Views() ([]descriptor.View, error)
	}
	// MiddlewareProvider supplies middleware registrations.
	MiddlewareProvider interface {
		Middleware() ([]descriptor.Middleware, error)
	}
	// EventProvider supplies event descriptors.
	EventProvider interface {
		Events() ([]descriptor.Event, error)
	}
	// JobProvider supplies job descriptors.
	JobProvider interface {
		Jobs() ([]descriptor.Job, error)
	}
	// ServiceProviderProvider supplies service provider descriptors.
	ServiceProviderProvider interface {
		Providers() ([]descriptor.Provider, error)
	}
	// TraitProvider supplies trait descriptors.
	TraitProvider interface {
		Traits() ([]descriptor.Trait, error)
	}
	// InterfaceProvider supplies interface descriptors.
	InterfaceProvider interface {
		Interfaces() ([]descriptor.Interface, error)
	}
)

// Func adapters let plain functions satisfy the provider contracts.
type (
	// RouteProviderFunc adapts a function to RouteProvider.
	RouteProviderFunc func() ([]descriptor.Route, error)
	// ModelProviderFunc adapts a function to ModelProvider.
	ModelProviderFunc func() ([]descriptor.Model, error)
	// ViewProviderFunc adapts a function to ViewProvider.
	ViewProviderFunc func() ([]descriptor.View, error)
)

// Routes calls the adapted function.
func (f RouteProviderFunc) Routes() ([]descriptor.Route, error) { return f() }

// Models calls the adapted function.
func (f ModelProviderFunc) Models() ([]descriptor.Model, error) { return f() }

// Views calls the adapted function.
func (f ViewProviderFunc) Views() ([]descriptor.View, error) { return f() }

// Source bundles every per-domain provider. A loaded registry.Registry
// satisfies it.
type Source interface {
	RouteProvider
	ModelProvider
	ViewProvider
	MiddlewareProvider
	EventProvider
	JobProvider
	ServiceProviderProvider
	TraitProvider
	InterfaceProvider
}

// Inspector is the entry point for building queries against one metadata
// source.
type Inspector struct {
	source Source
}

// New creates an inspector over the given source.
func New(source Source) *Inspector {
	return &Inspector{source: source}
}

// Routes starts a route query.
func (i *Inspector) Routes() *RoutesQuery { return Routes(i.source) }

// Models starts a model query.
func (i *Inspector) Models() *ModelsQuery { return Models(i.source) }

// Views starts a view query.
func (i *Inspector) Views() *ViewsQuery { return Views(i.source) }

// Middlewares starts a middleware query.
func (i *Inspector) Middlewares() *MiddlewaresQuery { return Middlewares(i.source) }

// Events starts an event query.
func (i *Inspector) Events() *EventsQuery { return Events(i.source) }

// Jobs starts a job query.
func (i *Inspector) Jobs() *JobsQuery { return Jobs(i.source) }

// Providers starts a service provider query.
func (i *Inspector) Providers() *ProvidersQuery { return Providers(i.source) }

// Traits starts a trait query.
func (i *Inspector) Traits() *TraitsQuery { return Traits(i.source) }

// Interfaces starts an interface query.
func (i *Inspector) Interfaces() *InterfacesQuery { return Interfaces(i.source) }
