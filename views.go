package introspect

import (
	"strings"

	"github.com/conduit-lang/introspect/descriptor"
	"github.com/conduit-lang/introspect/query"
)

// ViewsQuery is a fluent filter over view templates.
//
// Unlike the other builders, the prefix and suffix filters here document
// wildcard support: a captured prefix or suffix containing "*" is routed
// through the pattern matcher instead of plain string comparison.
type ViewsQuery struct {
	provider ViewProvider
	set      *query.Set[descriptor.View]
}

// Views creates a view query against the given provider.
func Views(provider ViewProvider) *ViewsQuery {
	return &ViewsQuery{provider: provider, set: query.NewSet[descriptor.View]()}
}

// WhereName matches the dotted view name against a wildcard pattern.
func (q *ViewsQuery) WhereName(pattern string) *ViewsQuery {
	p := query.CompilePattern(pattern)
	q.set.Put("name", func(v descriptor.View) bool {
		return p.Match(v.Name)
	})
	return q
}

// WhereNameDoesntMatch excludes views whose name matches the pattern.
func (q *ViewsQuery) WhereNameDoesntMatch(pattern string) *ViewsQuery {
	p := query.CompilePattern(pattern)
	q.set.Put("name_not", func(v descriptor.View) bool {
		return !p.Match(v.Name)
	})
	return q
}

// WhereNameStartsWith matches views by name prefix. A prefix containing "*"
// is treated as a wildcard pattern anchored at the start of the name.
func (q *ViewsQuery) WhereNameStartsWith(prefix string) *ViewsQuery {
	test := prefixTest(prefix)
	q.set.Put("name_prefix", func(v descriptor.View) bool {
		return test(v.Name)
	})
	return q
}

// WhereNameEndsWith matches views by name suffix. A suffix containing "*" is
// treated as a wildcard pattern anchored at the end of the name.
func (q *ViewsQuery) WhereNameEndsWith(suffix string) *ViewsQuery {
	test := suffixTest(suffix)
	q.set.Put("name_suffix", func(v descriptor.View) bool {
		return test(v.Name)
	})
	return q
}

// WhereNameContains matches views whose name contains the literal substring.
func (q *ViewsQuery) WhereNameContains(substring string) *ViewsQuery {
	q.set.Put("name_contains", func(v descriptor.View) bool {
		return strings.Contains(v.Name, substring)
	})
	return q
}

// WherePathStartsWith matches views whose normalized template path has the
// given prefix.
func (q *ViewsQuery) WherePathStartsWith(prefix string) *ViewsQuery {
	normalized := query.NormalizePath(prefix)
	q.set.Put("path_prefix", func(v descriptor.View) bool {
		return strings.HasPrefix(query.NormalizePath(v.Path), normalized)
	})
	return q
}

// WhereExtends matches views extending the given layout.
func (q *ViewsQuery) WhereExtends(layout string) *ViewsQuery {
	q.set.Put("extends", func(v descriptor.View) bool {
		return v.Extends == layout
	})
	return q
}

// WhereUsesComponent matches views that render the given component.
func (q *ViewsQuery) WhereUsesComponent(component string) *ViewsQuery {
	q.set.Put("component", func(v descriptor.View) bool {
		return containsString(v.Components, component)
	})
	return q
}

// Or attaches an independently configured OR branch.
func (q *ViewsQuery) Or(configure func(*ViewsQuery)) *ViewsQuery {
	configure(&ViewsQuery{set: q.set.Branch()})
	return q
}

// Get returns all matching views in provider order.
func (q *ViewsQuery) Get() ([]descriptor.View, error) {
	records, err := q.fetch()
	if err != nil {
		return nil, err
	}
	return query.Filter(records, q.set), nil
}

// First returns the first matching view, or nil when nothing matches.
func (q *ViewsQuery) First() (*descriptor.View, error) {
	records, err := q.fetch()
	if err != nil {
		return nil, err
	}
	return query.First(records, q.set), nil
}

// Exists reports whether any view matches.
func (q *ViewsQuery) Exists() (bool, error) {
	records, err := q.fetch()
	if err != nil {
		return false, err
	}
	return query.Any(records, q.set), nil
}

// Count returns the number of matching views.
func (q *ViewsQuery) Count() (int, error) {
	records, err := q.fetch()
	if err != nil {
		return 0, err
	}
	return query.Count(records, q.set), nil
}

func (q *ViewsQuery) fetch() ([]descriptor.View, error) {
	if q.provider == nil {
		return nil, ErrNoProvider
	}
	return q.provider.Views()
}

// prefixTest builds the comparison for a possibly-wildcarded prefix.
func prefixTest(prefix string) func(string) bool {
	if query.HasWildcard(prefix) {
		p := query.CompilePattern(prefix + "*")
		return p.Match
	}
	return func(s string) bool { return strings.HasPrefix(s, prefix) }
}

// suffixTest builds the comparison for a possibly-wildcarded suffix.
func suffixTest(suffix string) func(string) bool {
	if query.HasWildcard(suffix) {
		p := query.CompilePattern("*" + suffix)
		return p.Match
	}
	return func(s string) bool { return strings.HasSuffix(s, suffix) }
}
