// Package chiroutes adapts a live chi router into a route descriptor
// provider, so a running application's routing table can be queried with the
// introspect builders without an intermediate snapshot.
package chiroutes

import (
	"fmt"
	"net/http"
	"reflect"
	"runtime"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/conduit-lang/introspect"
	"github.com/conduit-lang/introspect/descriptor"
	"github.com/conduit-lang/introspect/query"
)

// Provider returns a RouteProvider that walks the router on every fetch.
// chi reports one entry per method and pattern; entries for the same pattern
// are merged into a single descriptor with all methods, preserving
// registration order.
func Provider(r chi.Routes) introspect.RouteProvider {
	return introspect.RouteProviderFunc(func() ([]descriptor.Route, error) {
		return Collect(r)
	})
}

// Collect walks the router once and returns its routes as descriptors.
// Merging is keyed by the raw chi pattern, so a "/x" route and a "/x/*"
// mount stay separate descriptors even though both normalize to "/x".
func Collect(r chi.Routes) ([]descriptor.Route, error) {
	var routes []descriptor.Route
	index := make(map[string]int)

	walker := func(method, pattern string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		i, seen := index[pattern]
		if !seen {
			i = len(routes)
			index[pattern] = i
			routes = append(routes, descriptor.Route{
				Path:       query.NormalizePath(strings.TrimSuffix(pattern, "/*")),
				Action:     handlerName(handler),
				Middleware: middlewareNames(middlewares),
			})
		}
		if !containsMethod(routes[i].Methods, method) {
			routes[i].Methods = append(routes[i].Methods, method)
		}
		return nil
	}

	if err := chi.Walk(r, walker); err != nil {
		return nil, fmt.Errorf("failed to walk router: %w", err)
	}
	return routes, nil
}

func containsMethod(methods []string, method string) bool {
	for _, m := range methods {
		if m == method {
			return true
		}
	}
	return false
}

// handlerName resolves the handler's function name for the action field.
// Anonymous handlers yield their closure name, which is still stable and
// filterable.
func handlerName(handler http.Handler) string {
	v := reflect.ValueOf(handler)
	if v.Kind() != reflect.Func {
		return fmt.Sprintf("%T", handler)
	}
	fn := runtime.FuncForPC(v.Pointer())
	if fn == nil {
		return ""
	}
	return shortFuncName(fn.Name())
}

func middlewareNames(middlewares []func(http.Handler) http.Handler) []string {
	if len(middlewares) == 0 {
		return nil
	}
	names := make([]string, 0, len(middlewares))
	for _, mw := range middlewares {
		fn := runtime.FuncForPC(reflect.ValueOf(mw).Pointer())
		if fn == nil {
			continue
		}
		names = append(names, shortFuncName(fn.Name()))
	}
	return names
}

// shortFuncName trims the package path and closure suffixes from a runtime
// function name: "pkg/mw.Auth.func1" becomes "Auth".
func shortFuncName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	for _, suffix := range []string{".func1", "-fm"} {
		name = strings.TrimSuffix(name, suffix)
	}
	return name
}
