package query

// Predicate is a pure boolean test over one descriptor record. Predicates
// must not mutate the record or any builder state when invoked.
type Predicate[R any] func(R) bool

// Set is an ordered collection of named filter predicates combined under AND
// semantics, plus zero or more OR branches that widen the match set. Each
// branch is itself a full Set and may hold nested branches of its own.
//
// Registering the same kind twice replaces the earlier predicate (last write
// wins); kinds that accumulate, such as multi-valued middleware filters,
// capture their whole list in a single registration.
type Set[R any] struct {
	kinds    []string
	filters  map[string]Predicate[R]
	branches []*Set[R]
}

// NewSet creates an empty filter set. An empty set with no branches matches
// every record.
func NewSet[R any]() *Set[R] {
	return &Set[R]{filters: make(map[string]Predicate[R])}
}

// Put registers a predicate under the given kind. A kind already present is
// overwritten in place, keeping its original position in evaluation order.
func (s *Set[R]) Put(kind string, test Predicate[R]) {
	if _, exists := s.filters[kind]; !exists {
		s.kinds = append(s.kinds, kind)
	}
	s.filters[kind] = test
}

// Branch appends a new empty OR branch and returns it for configuration.
// The branch cannot reference the set that created it, so evaluation cannot
// cycle.
func (s *Set[R]) Branch() *Set[R] {
	branch := NewSet[R]()
	s.branches = append(s.branches, branch)
	return branch
}

// Len returns the number of registered filter kinds in the main set.
func (s *Set[R]) Len() int {
	return len(s.kinds)
}

// Empty reports whether the set constrains nothing: no main filters and no
// OR branches.
func (s *Set[R]) Empty() bool {
	return len(s.kinds) == 0 && len(s.branches) == 0
}

// Matches evaluates the record against the composed query.
//
// With no OR branches the result is the AND of all main filters (vacuously
// true when none are registered). With branches present, the record matches
// if it satisfies the main set or any branch; an empty main set is excluded
// from the OR reduction entirely, so a branches-only query matches iff at
// least one branch matches.
func (s *Set[R]) Matches(record R) bool {
	if len(s.branches) == 0 {
		return s.matchesMain(record)
	}
	if len(s.kinds) > 0 && s.matchesMain(record) {
		return true
	}
	for _, branch := range s.branches {
		if branch.Matches(record) {
			return true
		}
	}
	return false
}

// matchesMain evaluates the AND-combined main filters, short-circuiting on
// the first failure.
func (s *Set[R]) matchesMain(record R) bool {
	for _, kind := range s.kinds {
		if !s.filters[kind](record) {
			return false
		}
	}
	return true
}

// Filter returns all records matching the set, preserving input order.
func Filter[R any](records []R, s *Set[R]) []R {
	var result []R
	for _, record := range records {
		if s.Matches(record) {
			result = append(result, record)
		}
	}
	return result
}

// First returns a copy of the first matching record in input order, or nil
// when nothing matches.
func First[R any](records []R, s *Set[R]) *R {
	for _, record := range records {
		if s.Matches(record) {
			match := record
			return &match
		}
	}
	return nil
}

// Count returns the number of matching records.
func Count[R any](records []R, s *Set[R]) int {
	n := 0
	for _, record := range records {
		if s.Matches(record) {
			n++
		}
	}
	return n
}

// Any reports whether at least one record matches, short-circuiting on the
// first hit.
func Any[R any](records []R, s *Set[R]) bool {
	for _, record := range records {
		if s.Matches(record) {
			return true
		}
	}
	return false
}
