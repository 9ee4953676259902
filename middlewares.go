package introspect

import (
	"strings"

	"github.com/conduit-lang/introspect/descriptor"
	"github.com/conduit-lang/introspect/query"
)

// MiddlewaresQuery is a fluent filter over middleware registrations.
type MiddlewaresQuery struct {
	provider MiddlewareProvider
	set      *query.Set[descriptor.Middleware]
}

// Middlewares creates a middleware query against the given provider.
func Middlewares(provider MiddlewareProvider) *MiddlewaresQuery {
	return &MiddlewaresQuery{provider: provider, set: query.NewSet[descriptor.Middleware]()}
}

// WhereName matches the registered alias against a wildcard pattern.
func (q *MiddlewaresQuery) WhereName(pattern string) *MiddlewaresQuery {
	p := query.CompilePattern(pattern)
	q.set.Put("name", func(m descriptor.Middleware) bool {
		return p.Match(m.Name)
	})
	return q
}

// WhereClass matches the implementing class against a wildcard pattern.
func (q *MiddlewaresQuery) WhereClass(pattern string) *MiddlewaresQuery {
	p := query.CompilePattern(pattern)
	q.set.Put("class", func(m descriptor.Middleware) bool {
		return p.Match(m.Class)
	})
	return q
}

// WhereClassEndsWith matches middleware whose class has the literal suffix.
func (q *MiddlewaresQuery) WhereClassEndsWith(suffix string) *MiddlewaresQuery {
	q.set.Put("class_suffix", func(m descriptor.Middleware) bool {
		return strings.HasSuffix(m.Class, suffix)
	})
	return q
}

// WhereGlobal matches middleware that runs on every request.
func (q *MiddlewaresQuery) WhereGlobal() *MiddlewaresQuery {
	q.set.Put("global", func(m descriptor.Middleware) bool {
		return m.Global
	})
	return q
}

// WhereInGroup matches middleware belonging to the given group.
func (q *MiddlewaresQuery) WhereInGroup(group string) *MiddlewaresQuery {
	q.set.Put("group", func(m descriptor.Middleware) bool {
		return containsString(m.Groups, group)
	})
	return q
}

// Or attaches an independently configured OR branch.
func (q *MiddlewaresQuery) Or(configure func(*MiddlewaresQuery)) *MiddlewaresQuery {
	configure(&MiddlewaresQuery{set: q.set.Branch()})
	return q
}

// Get returns all matching registrations in provider order.
func (q *MiddlewaresQuery) Get() ([]descriptor.Middleware, error) {
	records, err := q.fetch()
	if err != nil {
		return nil, err
	}
	return query.Filter(records, q.set), nil
}

// First returns the first matching registration, or nil when nothing
// matches.
func (q *MiddlewaresQuery) First() (*descriptor.Middleware, error) {
	records, err := q.fetch()
	if err != nil {
		return nil, err
	}
	return query.First(records, q.set), nil
}

// Exists reports whether any registration matches.
func (q *MiddlewaresQuery) Exists() (bool, error) {
	records, err := q.fetch()
	if err != nil {
		return false, err
	}
	return query.Any(records, q.set), nil
}

// Count returns the number of matching registrations.
func (q *MiddlewaresQuery) Count() (int, error) {
	records, err := q.fetch()
	if err != nil {
		return 0, err
	}
	return query.Count(records, q.set), nil
}

func (q *MiddlewaresQuery) fetch() ([]descriptor.Middleware, error) {
	if q.provider == nil {
		return nil, ErrNoProvider
	}
	return q.provider.Middleware()
}
