package introspect

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/introspect/descriptor"
)

func staticRoutes(routes ...descriptor.Route) RouteProvider {
	return RouteProviderFunc(func() ([]descriptor.Route, error) {
		return routes, nil
	})
}

func routeFixtures() RouteProvider {
	return staticRoutes(
		descriptor.Route{
			Name:       "admin.users",
			Path:       "/admin/users",
			Methods:    []string{"GET"},
			Middleware: []string{"auth", "verified"},
			Action:     "UserController@index",
		},
		descriptor.Route{
			Name:       "admin.roles",
			Path:       "/admin/roles",
			Methods:    []string{"GET", "POST"},
			Middleware: []string{"auth"},
			Controller: "RoleController",
			Handler:    "index",
		},
		descriptor.Route{
			Name:       "public.home",
			Path:       "/",
			Methods:    []string{"GET"},
			Middleware: []string{"guest", "throttle:60,1"},
		},
	)
}

func TestRoutesQuery_NoFiltersMatchesEverything(t *testing.T) {
	routes, err := Routes(routeFixtures()).Get()
	require.NoError(t, err)
	assert.Len(t, routes, 3)
}

func TestRoutesQuery_WhereName(t *testing.T) {
	routes, err := Routes(routeFixtures()).WhereName("admin.*").Get()
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Equal(t, "admin.users", routes[0].Name)
	assert.Equal(t, "admin.roles", routes[1].Name)
}

func TestRoutesQuery_WhereNameDoesntMatch(t *testing.T) {
	routes, err := Routes(routeFixtures()).WhereNameDoesntMatch("admin.*").Get()
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "public.home", routes[0].Name)
}

func TestRoutesQuery_ANDSemantics(t *testing.T) {
	routes, err := Routes(routeFixtures()).
		WhereName("admin.*").
		WhereUsesMethod("POST").
		Get()
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "admin.roles", routes[0].Name)
}

func TestRoutesQuery_PathNormalization(t *testing.T) {
	provider := staticRoutes(
		descriptor.Route{Name: "no-slash", Path: "admin/users"},
		descriptor.Route{Name: "slash", Path: "/admin/roles"},
	)

	routes, err := Routes(provider).WherePath("admin/*").Get()
	require.NoError(t, err)
	assert.Len(t, routes, 2, "pattern and record paths both normalize to a leading slash")
}

func TestRoutesQuery_MethodCaseInsensitive(t *testing.T) {
	routes, err := Routes(routeFixtures()).WhereUsesMethod("post").Get()
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "admin.roles", routes[0].Name)
}

func TestRoutesQuery_ParameterizedMiddleware(t *testing.T) {
	// The base name before ":" is compared, never the full token text.
	routes, err := Routes(routeFixtures()).WhereUsesMiddleware("throttle").Get()
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "public.home", routes[0].Name)

	none, err := Routes(routeFixtures()).WhereUsesMiddleware("throttle:60,1").Get()
	require.NoError(t, err)
	assert.Empty(t, none, "a full parameterized token as the target matches nothing")

	// The same rule applies to the multi-target filter.
	none, err = Routes(routeFixtures()).
		WhereUsesMiddlewares([]string{"throttle:60,1"}, MatchAny).
		Get()
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRoutesQuery_MiddlewaresAllMode(t *testing.T) {
	routes, err := Routes(routeFixtures()).
		WhereUsesMiddlewares([]string{"auth", "verified"}, MatchAll).
		Get()
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "admin.users", routes[0].Name)
}

func TestRoutesQuery_MiddlewaresAnyMode(t *testing.T) {
	routes, err := Routes(routeFixtures()).
		WhereUsesMiddlewares([]string{"auth", "guest"}, MatchAny).
		Get()
	require.NoError(t, err)
	assert.Len(t, routes, 3)
}

func TestRoutesQuery_MiddlewaresEmptyTargets(t *testing.T) {
	for _, mode := range []MatchMode{MatchAny, MatchAll} {
		routes, err := Routes(routeFixtures()).
			WhereUsesMiddlewares(nil, mode).
			Get()
		require.NoError(t, err)
		assert.Empty(t, routes, "empty target list matches nothing in mode %s", mode)
	}
}

func TestRoutesQuery_DoesntUseMiddleware(t *testing.T) {
	routes, err := Routes(routeFixtures()).WhereDoesntUseMiddleware("auth").Get()
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "public.home", routes[0].Name)
}

func TestRoutesQuery_ControllerBindingShapes(t *testing.T) {
	// Combined "Class@method" identifier.
	routes, err := Routes(routeFixtures()).WhereUsesController("UserController", "index").Get()
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "admin.users", routes[0].Name)

	// Method omitted: class alone.
	routes, err = Routes(routeFixtures()).WhereUsesController("UserController").Get()
	require.NoError(t, err)
	assert.Len(t, routes, 1)

	// Wrong method.
	routes, err = Routes(routeFixtures()).WhereUsesController("UserController", "store").Get()
	require.NoError(t, err)
	assert.Empty(t, routes)

	// Pair shape on the record side.
	routes, err = Routes(routeFixtures()).WhereUsesController("RoleController", "index").Get()
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "admin.roles", routes[0].Name)
}

func TestRoutesQuery_OrWidening(t *testing.T) {
	routes, err := Routes(routeFixtures()).
		WhereName("admin.users").
		Or(func(q *RoutesQuery) {
			q.WhereUsesMiddleware("guest")
		}).
		Get()
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Equal(t, "admin.users", routes[0].Name)
	assert.Equal(t, "public.home", routes[1].Name)
}

func TestRoutesQuery_OrOnlyWithEmptyMain(t *testing.T) {
	routes, err := Routes(routeFixtures()).
		Or(func(q *RoutesQuery) {
			q.WhereName("public.*")
		}).
		Get()
	require.NoError(t, err)
	require.Len(t, routes, 1, "a branches-only query must not match every record")
	assert.Equal(t, "public.home", routes[0].Name)
}

func TestRoutesQuery_NestedOr(t *testing.T) {
	routes, err := Routes(routeFixtures()).
		WhereName("nothing").
		Or(func(q *RoutesQuery) {
			q.WhereName("also-nothing").
				Or(func(q *RoutesQuery) {
					q.WhereUsesMethod("POST")
				})
		}).
		Get()
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "admin.roles", routes[0].Name)
}

func TestRoutesQuery_LastWriteWins(t *testing.T) {
	routes, err := Routes(routeFixtures()).
		WhereName("admin.*").
		WhereName("public.*").
		Get()
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "public.home", routes[0].Name)
}

func TestRoutesQuery_Terminals(t *testing.T) {
	q := Routes(routeFixtures()).WhereUsesMiddleware("auth")

	count, err := q.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	exists, err := q.Exists()
	require.NoError(t, err)
	assert.True(t, exists)

	first, err := q.First()
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "admin.users", first.Name)
}

func TestRoutesQuery_TerminalIdempotence(t *testing.T) {
	q := Routes(routeFixtures()).WhereName("admin.*")

	a, err := q.Get()
	require.NoError(t, err)
	b, err := q.Get()
	require.NoError(t, err)
	assert.Equal(t, a, b)

	n1, _ := q.Count()
	n2, _ := q.Count()
	assert.Equal(t, n1, n2)
}

func TestRoutesQuery_FirstNoMatch(t *testing.T) {
	first, err := Routes(routeFixtures()).WhereName("missing.*").First()
	require.NoError(t, err)
	assert.Nil(t, first)

	exists, err := Routes(routeFixtures()).WhereName("missing.*").Exists()
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRoutesQuery_ProviderErrorPropagates(t *testing.T) {
	fetchErr := errors.New("metadata store unavailable")
	failing := RouteProviderFunc(func() ([]descriptor.Route, error) {
		return nil, fetchErr
	})

	_, err := Routes(failing).WhereName("*").Get()
	assert.ErrorIs(t, err, fetchErr)

	_, err = Routes(failing).Count()
	assert.ErrorIs(t, err, fetchErr)
}

func TestRoutesQuery_NoProvider(t *testing.T) {
	var q RoutesQuery
	_, err := q.Get()
	assert.ErrorIs(t, err, ErrNoProvider)
}
