// Package descriptor defines the normalized, read-only record shapes that
// introspection providers produce and query builders filter: routes, models,
// views, middleware registrations, events, jobs, providers, traits, and
// interfaces.
package descriptor

import "time"

// Snapshot is the top-level container for one application's introspection
// metadata. It is the unit of registration and JSON serialization.
type Snapshot struct {
	ID         string       `json:"id,omitempty"`          // Unique snapshot identifier
	Version    string       `json:"version"`               // Schema version for evolution
	Generated  time.Time    `json:"generated"`             // Timestamp of metadata generation
	SourceHash string       `json:"source_hash,omitempty"` // Hash of source files for cache invalidation
	Routes     []Route      `json:"routes,omitempty"`
	Models     []Model      `json:"models,omitempty"`
	Views      []View       `json:"views,omitempty"`
	Middleware []Middleware `json:"middleware,omitempty"`
	Events     []Event      `json:"events,omitempty"`
	Jobs       []Job        `json:"jobs,omitempty"`
	Providers  []Provider   `json:"providers,omitempty"`
	Traits     []Trait      `json:"traits,omitempty"`
	Interfaces []Interface  `json:"interfaces,omitempty"`
}

// Route describes one registered HTTP route.
type Route struct {
	Name       string   `json:"name,omitempty"`       // Named route, empty when unnamed
	Path       string   `json:"path"`                 // URL path pattern
	Methods    []string `json:"methods"`              // Assigned HTTP methods
	Middleware []string `json:"middleware,omitempty"` // Assigned middleware tokens, possibly parameterized ("throttle:60,1")
	Action     string   `json:"action,omitempty"`     // Combined handler identifier ("UserController@index")
	Controller string   `json:"controller,omitempty"` // Handler class when the binding is a pair
	Handler    string   `json:"handler,omitempty"`    // Handler method when the binding is a pair
	Domain     string   `json:"domain,omitempty"`     // Host constraint
	Operation  string   `json:"operation,omitempty"`  // CRUD operation (list, show, create, update, delete)
}

// Binding resolves the route's controller binding regardless of which of the
// two shapes the provider used.
func (r Route) Binding() Binding {
	if r.Controller != "" {
		return Binding{Class: r.Controller, Method: r.Handler}
	}
	return ParseBinding(r.Action)
}

// Model describes one model class.
type Model struct {
	Name       string     `json:"name"`
	Table      string     `json:"table,omitempty"`
	FilePath   string     `json:"file_path,omitempty"`
	Fields     []string   `json:"fields,omitempty"`
	Fillable   []string   `json:"fillable,omitempty"`
	Guarded    []string   `json:"guarded,omitempty"`
	Relations  []Relation `json:"relations,omitempty"`
	Traits     []string   `json:"traits,omitempty"`
	Implements []string   `json:"implements,omitempty"`
	Observers  []string   `json:"observers,omitempty"`
}

// Relation describes one declared relation on a model.
type Relation struct {
	Name   string       `json:"name"`
	Kind   RelationKind `json:"kind"`
	Target string       `json:"target"` // Related model name
}

// View describes one view template.
type View struct {
	Name       string   `json:"name"`                 // Dot notation ("admin.users.index")
	Path       string   `json:"path,omitempty"`       // Template file location
	Extends    string   `json:"extends,omitempty"`    // Parent layout, if any
	Components []string `json:"components,omitempty"` // Components the template renders
	Composers  []string `json:"composers,omitempty"`  // Registered view composers
}

// Middleware describes one middleware registration.
type Middleware struct {
	Name   string   `json:"name"`             // Registered alias
	Class  string   `json:"class,omitempty"`  // Implementing class
	Global bool     `json:"global,omitempty"` // Runs on every request
	Groups []string `json:"groups,omitempty"` // Middleware groups it belongs to
}

// Event describes one event class and its listeners.
type Event struct {
	Name      string   `json:"name"`
	Listeners []string `json:"listeners,omitempty"`
	Broadcast bool     `json:"broadcast,omitempty"`
}

// Job describes one queueable job class.
type Job struct {
	Name        string `json:"name"`
	Queue       string `json:"queue,omitempty"`
	Connection  string `json:"connection,omitempty"`
	ShouldQueue bool   `json:"should_queue,omitempty"` // False for synchronous jobs
	Unique      bool   `json:"unique,omitempty"`
}

// Provider describes one registered service provider.
type Provider struct {
	Name     string   `json:"name"`
	Deferred bool     `json:"deferred,omitempty"`
	Provides []string `json:"provides,omitempty"`
	Bootable bool     `json:"bootable,omitempty"`
}

// Trait describes one trait and where it is used.
type Trait struct {
	Name    string   `json:"name"`
	UsedBy  []string `json:"used_by,omitempty"`
	Methods []string `json:"methods,omitempty"`
}

// Interface describes one interface and its implementors.
type Interface struct {
	Name          string   `json:"name"`
	Extends       []string `json:"extends,omitempty"`
	ImplementedBy []string `json:"implemented_by,omitempty"`
	Methods       []string `json:"methods,omitempty"`
}
