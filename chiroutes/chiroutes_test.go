package chiroutes

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/introspect"
)

func noopHandler(w http.ResponseWriter, r *http.Request) {}

func testRouter() chi.Router {
	r := chi.NewRouter()
	r.Get("/users", noopHandler)
	r.Post("/users", noopHandler)
	r.Get("/users/{id}", noopHandler)
	r.Route("/admin", func(r chi.Router) {
		r.Get("/dashboard", noopHandler)
	})
	return r
}

func TestCollect_MergesMethods(t *testing.T) {
	routes, err := Collect(testRouter())
	require.NoError(t, err)

	users := -1
	for i, route := range routes {
		if route.Path == "/users" {
			users = i
			break
		}
	}
	require.GreaterOrEqual(t, users, 0, "expected a /users descriptor")
	assert.ElementsMatch(t, []string{"GET", "POST"}, routes[users].Methods)
}

func TestCollect_NormalizesNestedPatterns(t *testing.T) {
	routes, err := Collect(testRouter())
	require.NoError(t, err)

	paths := make([]string, len(routes))
	for i, route := range routes {
		paths[i] = route.Path
	}
	assert.Contains(t, paths, "/admin/dashboard")
	assert.Contains(t, paths, "/users/{id}")
}

func TestCollect_KeepsWildcardMountSeparate(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/files", noopHandler)
	r.Get("/files/*", noopHandler)

	routes, err := Collect(r)
	require.NoError(t, err)

	// Both registrations normalize to the same path but remain distinct
	// descriptors, and neither accumulates a duplicate method.
	files := 0
	for _, route := range routes {
		if route.Path == "/files" {
			files++
			assert.Equal(t, []string{"GET"}, route.Methods)
		}
	}
	assert.Equal(t, 2, files)
}

func TestProvider_FeedsQueryBuilder(t *testing.T) {
	provider := Provider(testRouter())

	routes, err := introspect.Routes(provider).
		WherePath("/users/*").
		Get()
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "/users/{id}", routes[0].Path)

	posts, err := introspect.Routes(provider).WhereUsesMethod("POST").Count()
	require.NoError(t, err)
	assert.Equal(t, 1, posts)
}

func TestShortFuncName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"github.com/acme/app/middleware.Auth.func1", "Auth"},
		{"main.loggingMiddleware", "loggingMiddleware"},
		{"github.com/acme/app.(*Server).handleUsers-fm", "(*Server).handleUsers"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, shortFuncName(tt.in), "input %q", tt.in)
	}
}
