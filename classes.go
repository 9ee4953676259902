package introspect

import (
	"github.com/conduit-lang/introspect/descriptor"
	"github.com/conduit-lang/introspect/query"
)

// TraitsQuery is a fluent filter over trait descriptors.
type TraitsQuery struct {
	provider TraitProvider
	set      *query.Set[descriptor.Trait]
}

// Traits creates a trait query against the given provider.
func Traits(provider TraitProvider) *TraitsQuery {
	return &TraitsQuery{provider: provider, set: query.NewSet[descriptor.Trait]()}
}

// WhereName matches the trait name against a wildcard pattern.
func (q *TraitsQuery) WhereName(pattern string) *TraitsQuery {
	p := query.CompilePattern(pattern)
	q.set.Put("name", func(t descriptor.Trait) bool {
		return p.Match(t.Name)
	})
	return q
}

// WhereUsedBy matches traits used by the given class.
func (q *TraitsQuery) WhereUsedBy(class string) *TraitsQuery {
	q.set.Put("used_by", func(t descriptor.Trait) bool {
		return containsString(t.UsedBy, class)
	})
	return q
}

// WhereHasMethod matches traits declaring the given method.
func (q *TraitsQuery) WhereHasMethod(method string) *TraitsQuery {
	q.set.Put("method", func(t descriptor.Trait) bool {
		return containsString(t.Methods, method)
	})
	return q
}

// Or attaches an independently configured OR branch.
func (q *TraitsQuery) Or(configure func(*TraitsQuery)) *TraitsQuery {
	configure(&TraitsQuery{set: q.set.Branch()})
	return q
}

// Get returns all matching traits in provider order.
func (q *TraitsQuery) Get() ([]descriptor.Trait, error) {
	records, err := q.fetch()
	if err != nil {
		return nil, err
	}
	return query.Filter(records, q.set), nil
}

// First returns the first matching trait, or nil when nothing matches.
func (q *TraitsQuery) First() (*descriptor.Trait, error) {
	records, err := q.fetch()
	if err != nil {
		return nil, err
	}
	return query.First(records, q.set), nil
}

// Exists reports whether any trait matches.
func (q *TraitsQuery) Exists() (bool, error) {
	records, err := q.fetch()
	if err != nil {
		return false, err
	}
	return query.Any(records, q.set), nil
}

// Count returns the number of matching traits.
func (q *TraitsQuery) Count() (int, error) {
	records, err := q.fetch()
	if err != nil {
		return 0, err
	}
	return query.Count(records, q.set), nil
}

func (q *TraitsQuery) fetch() ([]descriptor.Trait, error) {
	if q.provider == nil {
		return nil, ErrNoProvider
	}
	return q.provider.Traits()
}

// InterfacesQuery is a fluent filter over interface descriptors.
type InterfacesQuery struct {
	provider InterfaceProvider
	set      *query.Set[descriptor.Interface]
}

// Interfaces creates an interface query against the given provider.
func Interfaces(provider InterfaceProvider) *InterfacesQuery {
	return &InterfacesQuery{provider: provider, set: query.NewSet[descriptor.Interface]()}
}

// WhereName matches the interface name against a wildcard pattern.
func (q *InterfacesQuery) WhereName(pattern string) *InterfacesQuery {
	p := query.CompilePattern(pattern)
	q.set.Put("name", func(i descriptor.Interface) bool {
		return p.Match(i.Name)
	})
	return q
}

// WhereExtends matches interfaces extending the given interface.
func (q *InterfacesQuery) WhereExtends(iface string) *InterfacesQuery {
	q.set.Put("extends", func(i descriptor.Interface) bool {
		return containsString(i.Extends, iface)
	})
	return q
}

// WhereImplementedBy matches interfaces implemented by the given class.
func (q *InterfacesQuery) WhereImplementedBy(class string) *InterfacesQuery {
	q.set.Put("implemented_by", func(i descriptor.Interface) bool {
		return containsString(i.ImplementedBy, class)
	})
	return q
}

// WhereHasMethod matches interfaces declaring the given method.
func (q *InterfacesQuery) WhereHasMethod(method string) *InterfacesQuery {
	q.set.Put("method", func(i descriptor.Interface) bool {
		return containsString(i.Methods, method)
	})
	return q
}

// Or attaches an independently configured OR branch.
func (q *InterfacesQuery) Or(configure func(*InterfacesQuery)) *InterfacesQuery {
	configure(&InterfacesQuery{set: q.set.Branch()})
	return q
}

// Get returns all matching interfaces in provider order.
func (q *InterfacesQuery) Get() ([]descriptor.Interface, error) {
	records, err := q.fetch()
	if err != nil {
		return nil, err
	}
	return query.Filter(records, q.set), nil
}

// First returns the first matching interface, or nil when nothing matches.
func (q *InterfacesQuery) First() (*descriptor.Interface, error) {
	records, err := q.fetch()
	if err != nil {
		return nil, err
	}
	return query.First(records, q.set), nil
}

// Exists reports whether any interface matches.
func (q *InterfacesQuery) Exists() (bool, error) {
	records, err := q.fetch()
	if err != nil {
		return false, err
	}
	return query.Any(records, q.set), nil
}

// Count returns the number of matching interfaces.
func (q *InterfacesQuery) Count() (int, error) {
	records, err := q.fetch()
	if err != nil {
		return 0, err
	}
	return query.Count(records, q.set), nil
}

func (q *InterfacesQuery) fetch() ([]descriptor.Interface, error) {
	if q.provider == nil {
		return nil, ErrNoProvider
	}
	return q.provider.Interfaces()
}
