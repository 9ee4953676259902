package introspect

import (
	"strings"

	"github.com/conduit-lang/introspect/descriptor"
	"github.com/conduit-lang/introspect/query"
)

// RoutesQuery is a fluent filter over registered routes. Filter methods
// mutate and return the same builder; registering the same filter twice
// replaces the earlier capture (last write wins).
type RoutesQuery struct {
	provider RouteProvider
	set      *query.Set[descriptor.Route]
}

// Routes creates a route query against the given provider.
func Routes(provider RouteProvider) *RoutesQuery {
	return &RoutesQuery{provider: provider, set: query.NewSet[descriptor.Route]()}
}

// WhereName matches the route name against a wildcard pattern. A pattern
// without "*" is exact equality; unnamed routes only match the empty
// pattern.
func (q *RoutesQuery) WhereName(pattern string) *RoutesQuery {
	p := query.CompilePattern(pattern)
	q.set.Put("name", func(r descriptor.Route) bool {
		return p.Match(r.Name)
	})
	return q
}

// WhereNameDoesntMatch excludes routes whose name matches the wildcard
// pattern. Evaluated against the record at query time as the negation of
// WhereName.
func (q *RoutesQuery) WhereNameDoesntMatch(pattern string) *RoutesQuery {
	p := query.CompilePattern(pattern)
	q.set.Put("name_not", func(r descriptor.Route) bool {
		return !p.Match(r.Name)
	})
	return q
}

// WhereNameStartsWith matches routes whose name has the literal prefix.
func (q *RoutesQuery) WhereNameStartsWith(prefix string) *RoutesQuery {
	q.set.Put("name_prefix", func(r descriptor.Route) bool {
		return strings.HasPrefix(r.Name, prefix)
	})
	return q
}

// WhereNameEndsWith matches routes whose name has the literal suffix.
func (q *RoutesQuery) WhereNameEndsWith(suffix string) *RoutesQuery {
	q.set.Put("name_suffix", func(r descriptor.Route) bool {
		return strings.HasSuffix(r.Name, suffix)
	})
	return q
}

// WhereNameContains matches routes whose name contains the literal
// substring.
func (q *RoutesQuery) WhereNameContains(substring string) *RoutesQuery {
	q.set.Put("name_contains", func(r descriptor.Route) bool {
		return strings.Contains(r.Name, substring)
	})
	return q
}

// WherePath matches the route path against a wildcard pattern. Both the
// pattern and the record path are normalized to a single leading "/" before
// matching.
func (q *RoutesQuery) WherePath(pattern string) *RoutesQuery {
	p := query.CompilePattern(query.NormalizePath(pattern))
	q.set.Put("path", func(r descriptor.Route) bool {
		return p.Match(query.NormalizePath(r.Path))
	})
	return q
}

// WherePathStartsWith matches routes whose normalized path has the given
// prefix, itself normalized.
func (q *RoutesQuery) WherePathStartsWith(prefix string) *RoutesQuery {
	normalized := query.NormalizePath(prefix)
	q.set.Put("path_prefix", func(r descriptor.Route) bool {
		return strings.HasPrefix(query.NormalizePath(r.Path), normalized)
	})
	return q
}

// WherePathContains matches routes whose path contains the literal
// substring.
func (q *RoutesQuery) WherePathContains(substring string) *RoutesQuery {
	q.set.Put("path_contains", func(r descriptor.Route) bool {
		return strings.Contains(query.NormalizePath(r.Path), substring)
	})
	return q
}

// WhereUsesMethod matches routes that respond to the given HTTP method.
// Comparison is case-insensitive; an unrecognized method string simply
// matches nothing.
func (q *RoutesQuery) WhereUsesMethod(method string) *RoutesQuery {
	target := strings.ToUpper(method)
	q.set.Put("method", func(r descriptor.Route) bool {
		for _, m := range r.Methods {
			if strings.ToUpper(m) == target {
				return true
			}
		}
		return false
	})
	return q
}

// WhereUsesMiddleware matches routes with the given middleware assigned.
// Parameterized tokens compare by base name: a route carrying
// "throttle:60,1" matches target "throttle", not "throttle:60,1".
func (q *RoutesQuery) WhereUsesMiddleware(name string) *RoutesQuery {
	q.set.Put("middleware", func(r descriptor.Route) bool {
		return routeUsesMiddleware(r, name)
	})
	return q
}

// WhereUsesMiddlewares matches routes against several middleware targets at
// once. MatchAll requires every target to be assigned, MatchAny at least
// one. An empty target list matches nothing.
func (q *RoutesQuery) WhereUsesMiddlewares(names []string, mode MatchMode) *RoutesQuery {
	targets := make([]string, len(names))
	copy(targets, names)
	q.set.Put("middlewares", func(r descriptor.Route) bool {
		if len(targets) == 0 {
			return false
		}
		for _, name := range targets {
			used := routeUsesMiddleware(r, name)
			if mode == MatchAll && !used {
				return false
			}
			if mode != MatchAll && used {
				return true
			}
		}
		return mode == MatchAll
	})
	return q
}

// WhereDoesntUseMiddleware excludes routes with the given middleware
// assigned, using the same base-name comparison as WhereUsesMiddleware.
func (q *RoutesQuery) WhereDoesntUseMiddleware(name string) *RoutesQuery {
	q.set.Put("middleware_not", func(r descriptor.Route) bool {
		return !routeUsesMiddleware(r, name)
	})
	return q
}

// WhereUsesController matches routes bound to the given controller class,
// normalizing both binding shapes (combined "Class@method" identifier or
// separate class/method pair). When a method is supplied it must match as
// well.
func (q *RoutesQuery) WhereUsesController(controller string, method ...string) *RoutesQuery {
	target := ""
	if len(method) > 0 {
		target = method[0]
	}
	q.set.Put("controller", func(r descriptor.Route) bool {
		return r.Binding().Matches(controller, target)
	})
	return q
}

// WhereOnDomain matches routes constrained to the given host, compared via
// wildcard pattern.
func (q *RoutesQuery) WhereOnDomain(pattern string) *RoutesQuery {
	p := query.CompilePattern(pattern)
	q.set.Put("domain", func(r descriptor.Route) bool {
		return p.Match(r.Domain)
	})
	return q
}

// Or attaches an independently configured OR branch. The callback receives a
// fresh builder holding only a filter set; a record matches the overall
// query if it satisfies the main filters or any branch. Returns the original
// builder for further chaining.
func (q *RoutesQuery) Or(configure func(*RoutesQuery)) *RoutesQuery {
	configure(&RoutesQuery{set: q.set.Branch()})
	return q
}

// Get returns all matching routes in provider order.
func (q *RoutesQuery) Get() ([]descriptor.Route, error) {
	records, err := q.fetch()
	if err != nil {
		return nil, err
	}
	return query.Filter(records, q.set), nil
}

// First returns the first matching route in provider order, or nil when
// nothing matches.
func (q *RoutesQuery) First() (*descriptor.Route, error) {
	records, err := q.fetch()
	if err != nil {
		return nil, err
	}
	return query.First(records, q.set), nil
}

// Exists reports whether any route matches.
func (q *RoutesQuery) Exists() (bool, error) {
	records, err := q.fetch()
	if err != nil {
		return false, err
	}
	return query.Any(records, q.set), nil
}

// Count returns the number of matching routes.
func (q *RoutesQuery) Count() (int, error) {
	records, err := q.fetch()
	if err != nil {
		return 0, err
	}
	return query.Count(records, q.set), nil
}

func (q *RoutesQuery) fetch() ([]descriptor.Route, error) {
	if q.provider == nil {
		return nil, ErrNoProvider
	}
	return q.provider.Routes()
}

// routeUsesMiddleware reports whether any of the route's tokens has the
// target as its base name. The target is never compared against the full
// parameterized token text, so "throttle:60,1" as a target matches nothing.
func routeUsesMiddleware(r descriptor.Route, name string) bool {
	for _, token := range r.Middleware {
		if query.BaseName(token) == name {
			return true
		}
	}
	return false
}
