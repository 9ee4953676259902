package introspect

import (
	"github.com/conduit-lang/introspect/descriptor"
	"github.com/conduit-lang/introspect/query"
)

// ProvidersQuery is a fluent filter over service provider descriptors.
type ProvidersQuery struct {
	provider ServiceProviderProvider
	set      *query.Set[descriptor.Provider]
}

// Providers creates a service provider query against the given provider.
func Providers(provider ServiceProviderProvider) *ProvidersQuery {
	return &ProvidersQuery{provider: provider, set: query.NewSet[descriptor.Provider]()}
}

// WhereName matches the provider class name against a wildcard pattern.
func (q *ProvidersQuery) WhereName(pattern string) *ProvidersQuery {
	p := query.CompilePattern(pattern)
	q.set.Put("name", func(sp descriptor.Provider) bool {
		return p.Match(sp.Name)
	})
	return q
}

// WhereDeferred matches deferred providers.
func (q *ProvidersQuery) WhereDeferred() *ProvidersQuery {
	q.set.Put("deferred", func(sp descriptor.Provider) bool {
		return sp.Deferred
	})
	return q
}

// WhereEager matches providers registered on every boot.
func (q *ProvidersQuery) WhereEager() *ProvidersQuery {
	q.set.Put("eager", func(sp descriptor.Provider) bool {
		return !sp.Deferred
	})
	return q
}

// WhereProvides matches providers that bind the given service.
func (q *ProvidersQuery) WhereProvides(service string) *ProvidersQuery {
	q.set.Put("provides", func(sp descriptor.Provider) bool {
		return containsString(sp.Provides, service)
	})
	return q
}

// Or attaches an independently configured OR branch.
func (q *ProvidersQuery) Or(configure func(*ProvidersQuery)) *ProvidersQuery {
	configure(&ProvidersQuery{set: q.set.Branch()})
	return q
}

// Get returns all matching providers in provider order.
func (q *ProvidersQuery) Get() ([]descriptor.Provider, error) {
	records, err := q.fetch()
	if err != nil {
		return nil, err
	}
	return query.Filter(records, q.set), nil
}

// First returns the first matching provider, or nil when nothing matches.
func (q *ProvidersQuery) First() (*descriptor.Provider, error) {
	records, err := q.fetch()
	if err != nil {
		return nil, err
	}
	return query.First(records, q.set), nil
}

// Exists reports whether any provider matches.
func (q *ProvidersQuery) Exists() (bool, error) {
	records, err := q.fetch()
	if err != nil {
		return false, err
	}
	return query.Any(records, q.set), nil
}

// Count returns the number of matching providers.
func (q *ProvidersQuery) Count() (int, error) {
	records, err := q.fetch()
	if err != nil {
		return 0, err
	}
	return query.Count(records, q.set), nil
}

func (q *ProvidersQuery) fetch() ([]descriptor.Provider, error) {
	if q.provider == nil {
		return nil, ErrNoProvider
	}
	return q.provider.Providers()
}
