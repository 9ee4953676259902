package introspect

import (
	"strings"

	"github.com/conduit-lang/introspect/descriptor"
	"github.com/conduit-lang/introspect/query"
)

// ModelsQuery is a fluent filter over model descriptors.
type ModelsQuery struct {
	provider ModelProvider
	set      *query.Set[descriptor.Model]
}

// Models creates a model query against the given provider.
func Models(provider ModelProvider) *ModelsQuery {
	return &ModelsQuery{provider: provider, set: query.NewSet[descriptor.Model]()}
}

// WhereName matches the model name against a wildcard pattern.
func (q *ModelsQuery) WhereName(pattern string) *ModelsQuery {
	p := query.CompilePattern(pattern)
	q.set.Put("name", func(m descriptor.Model) bool {
		return p.Match(m.Name)
	})
	return q
}

// WhereNameDoesntMatch excludes models whose name matches the pattern.
func (q *ModelsQuery) WhereNameDoesntMatch(pattern string) *ModelsQuery {
	p := query.CompilePattern(pattern)
	q.set.Put("name_not", func(m descriptor.Model) bool {
		return !p.Match(m.Name)
	})
	return q
}

// WhereNameStartsWith matches models whose name has the literal prefix.
func (q *ModelsQuery) WhereNameStartsWith(prefix string) *ModelsQuery {
	q.set.Put("name_prefix", func(m descriptor.Model) bool {
		return strings.HasPrefix(m.Name, prefix)
	})
	return q
}

// WhereNameEndsWith matches models whose name has the literal suffix.
func (q *ModelsQuery) WhereNameEndsWith(suffix string) *ModelsQuery {
	q.set.Put("name_suffix", func(m descriptor.Model) bool {
		return strings.HasSuffix(m.Name, suffix)
	})
	return q
}

// WhereTable matches models by exact table name.
func (q *ModelsQuery) WhereTable(table string) *ModelsQuery {
	q.set.Put("table", func(m descriptor.Model) bool {
		return m.Table == table
	})
	return q
}

// WhereHasField matches models declaring a field with the given name.
func (q *ModelsQuery) WhereHasField(name string) *ModelsQuery {
	q.set.Put("field", func(m descriptor.Model) bool {
		return containsString(m.Fields, name)
	})
	return q
}

// WhereHasFillable matches models with the given mass-assignable field.
func (q *ModelsQuery) WhereHasFillable(name string) *ModelsQuery {
	q.set.Put("fillable", func(m descriptor.Model) bool {
		return containsString(m.Fillable, name)
	})
	return q
}

// WhereUsesTrait matches models that use the given trait.
func (q *ModelsQuery) WhereUsesTrait(trait string) *ModelsQuery {
	q.set.Put("trait", func(m descriptor.Model) bool {
		return containsString(m.Traits, trait)
	})
	return q
}

// WhereDoesntUseTrait excludes models that use the given trait.
func (q *ModelsQuery) WhereDoesntUseTrait(trait string) *ModelsQuery {
	q.set.Put("trait_not", func(m descriptor.Model) bool {
		return !containsString(m.Traits, trait)
	})
	return q
}

// WhereImplements matches models implementing the given interface.
func (q *ModelsQuery) WhereImplements(iface string) *ModelsQuery {
	q.set.Put("implements", func(m descriptor.Model) bool {
		return containsString(m.Implements, iface)
	})
	return q
}

// WhereHasRelation matches models declaring a relation with the given name.
func (q *ModelsQuery) WhereHasRelation(name string) *ModelsQuery {
	q.set.Put("relation", func(m descriptor.Model) bool {
		for _, rel := range m.Relations {
			if rel.Name == name {
				return true
			}
		}
		return false
	})
	return q
}

// WhereHasRelationKind matches models declaring a relation whose kind is the
// given kind or a nominal subtype of it: filtering on HasMany also matches
// MorphMany relations.
func (q *ModelsQuery) WhereHasRelationKind(kind descriptor.RelationKind) *ModelsQuery {
	q.set.Put("relation_kind", func(m descriptor.Model) bool {
		for _, rel := range m.Relations {
			if rel.Kind.IsA(kind) {
				return true
			}
		}
		return false
	})
	return q
}

// WhereHasRelationTo matches models declaring a relation targeting the given
// model.
func (q *ModelsQuery) WhereHasRelationTo(target string) *ModelsQuery {
	q.set.Put("relation_target", func(m descriptor.Model) bool {
		for _, rel := range m.Relations {
			if rel.Target == target {
				return true
			}
		}
		return false
	})
	return q
}

// Or attaches an independently configured OR branch.
func (q *ModelsQuery) Or(configure func(*ModelsQuery)) *ModelsQuery {
	configure(&ModelsQuery{set: q.set.Branch()})
	return q
}

// Get returns all matching models in provider order.
func (q *ModelsQuery) Get() ([]descriptor.Model, error) {
	records, err := q.fetch()
	if err != nil {
		return nil, err
	}
	return query.Filter(records, q.set), nil
}

// First returns the first matching model, or nil when nothing matches.
func (q *ModelsQuery) First() (*descriptor.Model, error) {
	records, err := q.fetch()
	if err != nil {
		return nil, err
	}
	return query.First(records, q.set), nil
}

// Exists reports whether any model matches.
func (q *ModelsQuery) Exists() (bool, error) {
	records, err := q.fetch()
	if err != nil {
		return false, err
	}
	return query.Any(records, q.set), nil
}

// Count returns the number of matching models.
func (q *ModelsQuery) Count() (int, error) {
	records, err := q.fetch()
	if err != nil {
		return 0, err
	}
	return query.Count(records, q.set), nil
}

func (q *ModelsQuery) fetch() ([]descriptor.Model, error) {
	if q.provider == nil {
		return nil, ErrNoProvider
	}
	return q.provider.Models()
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}
