package introspect

import (
	"github.com/conduit-lang/introspect/descriptor"
	"github.com/conduit-lang/introspect/query"
)

// EventsQuery is a fluent filter over event descriptors.
type EventsQuery struct {
	provider EventProvider
	set      *query.Set[descriptor.Event]
}

// Events creates an event query against the given provider.
func Events(provider EventProvider) *EventsQuery {
	return &EventsQuery{provider: provider, set: query.NewSet[descriptor.Event]()}
}

// WhereName matches the event class name against a wildcard pattern.
func (q *EventsQuery) WhereName(pattern string) *EventsQuery {
	p := query.CompilePattern(pattern)
	q.set.Put("name", func(e descriptor.Event) bool {
		return p.Match(e.Name)
	})
	return q
}

// WhereHasListener matches events with the given listener class attached.
func (q *EventsQuery) WhereHasListener(listener string) *EventsQuery {
	q.set.Put("listener", func(e descriptor.Event) bool {
		return containsString(e.Listeners, listener)
	})
	return q
}

// WhereHasListeners matches events with at least one listener.
func (q *EventsQuery) WhereHasListeners() *EventsQuery {
	q.set.Put("has_listeners", func(e descriptor.Event) bool {
		return len(e.Listeners) > 0
	})
	return q
}

// WhereBroadcast matches events that broadcast.
func (q *EventsQuery) WhereBroadcast() *EventsQuery {
	q.set.Put("broadcast", func(e descriptor.Event) bool {
		return e.Broadcast
	})
	return q
}

// Or attaches an independently configured OR branch.
func (q *EventsQuery) Or(configure func(*EventsQuery)) *EventsQuery {
	configure(&EventsQuery{set: q.set.Branch()})
	return q
}

// Get returns all matching events in provider order.
func (q *EventsQuery) Get() ([]descriptor.Event, error) {
	records, err := q.fetch()
	if err != nil {
		return nil, err
	}
	return query.Filter(records, q.set), nil
}

// First returns the first matching event, or nil when nothing matches.
func (q *EventsQuery) First() (*descriptor.Event, error) {
	records, err := q.fetch()
	if err != nil {
		return nil, err
	}
	return query.First(records, q.set), nil
}

// Exists reports whether any event matches.
func (q *EventsQuery) Exists() (bool, error) {
	records, err := q.fetch()
	if err != nil {
		return false, err
	}
	return query.Any(records, q.set), nil
}

// Count returns the number of matching events.
func (q *EventsQuery) Count() (int, error) {
	records, err := q.fetch()
	if err != nil {
		return 0, err
	}
	return query.Count(records, q.set), nil
}

func (q *EventsQuery) fetch() ([]descriptor.Event, error) {
	if q.provider == nil {
		return nil, ErrNoProvider
	}
	return q.provider.Events()
}
