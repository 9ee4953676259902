package introspect

import (
	"github.com/conduit-lang/introspect/descriptor"
	"github.com/conduit-lang/introspect/query"
)

// JobsQuery is a fluent filter over job descriptors.
type JobsQuery struct {
	provider JobProvider
	set      *query.Set[descriptor.Job]
}

// Jobs creates a job query against the given provider.
func Jobs(provider JobProvider) *JobsQuery {
	return &JobsQuery{provider: provider, set: query.NewSet[descriptor.Job]()}
}

// WhereName matches the job class name against a wildcard pattern.
func (q *JobsQuery) WhereName(pattern string) *JobsQuery {
	p := query.CompilePattern(pattern)
	q.set.Put("name", func(j descriptor.Job) bool {
		return p.Match(j.Name)
	})
	return q
}

// WhereOnQueue matches jobs dispatched to the given queue.
func (q *JobsQuery) WhereOnQueue(queue string) *JobsQuery {
	q.set.Put("queue", func(j descriptor.Job) bool {
		return j.Queue == queue
	})
	return q
}

// WhereOnConnection matches jobs using the given queue connection.
func (q *JobsQuery) WhereOnConnection(connection string) *JobsQuery {
	q.set.Put("connection", func(j descriptor.Job) bool {
		return j.Connection == connection
	})
	return q
}

// WhereQueued matches jobs that are dispatched asynchronously.
func (q *JobsQuery) WhereQueued() *JobsQuery {
	q.set.Put("queued", func(j descriptor.Job) bool {
		return j.ShouldQueue
	})
	return q
}

// WhereSync matches jobs that run synchronously.
func (q *JobsQuery) WhereSync() *JobsQuery {
	q.set.Put("sync", func(j descriptor.Job) bool {
		return !j.ShouldQueue
	})
	return q
}

// WhereUnique matches jobs declared unique.
func (q *JobsQuery) WhereUnique() *JobsQuery {
	q.set.Put("unique", func(j descriptor.Job) bool {
		return j.Unique
	})
	return q
}

// Or attaches an independently configured OR branch.
func (q *JobsQuery) Or(configure func(*JobsQuery)) *JobsQuery {
	configure(&JobsQuery{set: q.set.Branch()})
	return q
}

// Get returns all matching jobs in provider order.
func (q *JobsQuery) Get() ([]descriptor.Job, error) {
	records, err := q.fetch()
	if err != nil {
		return nil, err
	}
	return query.Filter(records, q.set), nil
}

// First returns the first matching job, or nil when nothing matches.
func (q *JobsQuery) First() (*descriptor.Job, error) {
	records, err := q.fetch()
	if err != nil {
		return nil, err
	}
	return query.First(records, q.set), nil
}

// Exists reports whether any job matches.
func (q *JobsQuery) Exists() (bool, error) {
	records, err := q.fetch()
	if err != nil {
		return false, err
	}
	return query.Any(records, q.set), nil
}

// Count returns the number of matching jobs.
func (q *JobsQuery) Count() (int, error) {
	records, err := q.fetch()
	if err != nil {
		return 0, err
	}
	return query.Count(records, q.set), nil
}

func (q *JobsQuery) fetch() ([]descriptor.Job, error) {
	if q.provider == nil {
		return nil, ErrNoProvider
	}
	return q.provider.Jobs()
}
