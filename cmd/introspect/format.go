package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/conduit-lang/introspect/descriptor"
)

// terminalQuery is the shared terminal surface of every query builder.
type terminalQuery[R any] interface {
	Get() ([]R, error)
	First() (*R, error)
	Exists() (bool, error)
	Count() (int, error)
}

// terminalFlags selects which terminal operation a command runs. Get is the
// default when none is set.
type terminalFlags struct {
	count  bool
	exists bool
	first  bool
}

// emit runs the selected terminal operation and renders the result.
func emit[R any](w io.Writer, q terminalQuery[R], flags terminalFlags, table func(io.Writer, []R)) error {
	switch {
	case flags.count:
		n, err := q.Count()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, n)
		return nil

	case flags.exists:
		ok, err := q.Exists()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, ok)
		return nil

	case flags.first:
		record, err := q.First()
		if err != nil {
			return err
		}
		if record == nil {
			fmt.Fprintln(w, "No match.")
			return nil
		}
		if outputFormat == "json" {
			return renderJSON(w, record)
		}
		table(w, []R{*record})
		return nil

	default:
		records, err := q.Get()
		if err != nil {
			return err
		}
		if outputFormat == "json" {
			return renderJSON(w, records)
		}
		if len(records) == 0 {
			fmt.Fprintln(w, "No matches.")
			return nil
		}
		table(w, records)
		return nil
	}
}

func renderJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func routesTable(w io.Writer, routes []descriptor.Route) {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)

	bold.Fprintf(w, "ROUTES (%d)\n\n", len(routes))
	for _, r := range routes {
		cyan.Fprintf(w, "%-8s", strings.Join(r.Methods, "|"))
		fmt.Fprintf(w, " %-40s", r.Path)
		if r.Name != "" {
			fmt.Fprintf(w, " %-24s", r.Name)
		}
		if binding := r.Binding(); !binding.IsZero() {
			fmt.Fprintf(w, " %s", binding)
		}
		if len(r.Middleware) > 0 {
			fmt.Fprintf(w, "  [%s]", strings.Join(r.Middleware, ", "))
		}
		fmt.Fprintln(w)
	}
}

func modelsTable(w io.Writer, models []descriptor.Model) {
	bold := color.New(color.Bold)

	bold.Fprintf(w, "MODELS (%d)\n\n", len(models))
	for _, m := range models {
		fmt.Fprintf(w, "  %-24s", m.Name)
		if m.Table != "" {
			fmt.Fprintf(w, " table=%s", m.Table)
		}
		if len(m.Relations) > 0 {
			names := make([]string, len(m.Relations))
			for i, rel := range m.Relations {
				names[i] = fmt.Sprintf("%s(%s)", rel.Name, rel.Kind)
			}
			fmt.Fprintf(w, "  relations: %s", strings.Join(names, ", "))
		}
		fmt.Fprintln(w)
	}
}

func viewsTable(w io.Writer, views []descriptor.View) {
	color.New(color.Bold).Fprintf(w, "VIEWS (%d)\n\n", len(views))
	for _, v := range views {
		fmt.Fprintf(w, "  %-32s", v.Name)
		if v.Extends != "" {
			fmt.Fprintf(w, " extends=%s", v.Extends)
		}
		if v.Path != "" {
			fmt.Fprintf(w, " %s", v.Path)
		}
		fmt.Fprintln(w)
	}
}

func middlewaresTable(w io.Writer, middleware []descriptor.Middleware) {
	color.New(color.Bold).Fprintf(w, "MIDDLEWARE (%d)\n\n", len(middleware))
	green := color.New(color.FgGreen)
	for _, m := range middleware {
		fmt.Fprintf(w, "  %-20s %-48s", m.Name, m.Class)
		if m.Global {
			green.Fprint(w, " global")
		}
		if len(m.Groups) > 0 {
			fmt.Fprintf(w, " [%s]", strings.Join(m.Groups, ", "))
		}
		fmt.Fprintln(w)
	}
}

func eventsTable(w io.Writer, events []descriptor.Event) {
	color.New(color.Bold).Fprintf(w, "EVENTS (%d)\n\n", len(events))
	for _, e := range events {
		fmt.Fprintf(w, "  %-40s %d listener(s)", e.Name, len(e.Listeners))
		if e.Broadcast {
			fmt.Fprint(w, " broadcast")
		}
		fmt.Fprintln(w)
	}
}

func jobsTable(w io.Writer, jobs []descriptor.Job) {
	color.New(color.Bold).Fprintf(w, "JOBS (%d)\n\n", len(jobs))
	for _, j := range jobs {
		fmt.Fprintf(w, "  %-40s", j.Name)
		if j.ShouldQueue {
			queue := j.Queue
			if queue == "" {
				queue = "default"
			}
			fmt.Fprintf(w, " queue=%s", queue)
		} else {
			fmt.Fprint(w, " sync")
		}
		fmt.Fprintln(w)
	}
}

func providersTable(w io.Writer, providers []descriptor.Provider) {
	color.New(color.Bold).Fprintf(w, "PROVIDERS (%d)\n\n", len(providers))
	for _, p := range providers {
		fmt.Fprintf(w, "  %-48s", p.Name)
		if p.Deferred {
			fmt.Fprint(w, " deferred")
		}
		if len(p.Provides) > 0 {
			fmt.Fprintf(w, " provides: %s", strings.Join(p.Provides, ", "))
		}
		fmt.Fprintln(w)
	}
}

func traitsTable(w io.Writer, traits []descriptor.Trait) {
	color.New(color.Bold).Fprintf(w, "TRAITS (%d)\n\n", len(traits))
	for _, t := range traits {
		fmt.Fprintf(w, "  %-40s used by %d class(es)\n", t.Name, len(t.UsedBy))
	}
}

func interfacesTable(w io.Writer, interfaces []descriptor.Interface) {
	color.New(color.Bold).Fprintf(w, "INTERFACES (%d)\n\n", len(interfaces))
	for _, i := range interfaces {
		fmt.Fprintf(w, "  %-48s %d implementor(s)\n", i.Name, len(i.ImplementedBy))
	}
}
