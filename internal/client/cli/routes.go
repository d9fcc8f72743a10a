package cli

import "github.com/dmitrijs2005/tinylink/internal/client/guard"

// commandRoutes maps each REPL command to the destination it navigates to.
var commandRoutes = map[string]guard.Route{
	"login":    guard.RouteLogin,
	"register": guard.RouteRegister,
	"shorten":  guard.RouteDashboard,
	"l":        guard.RouteDashboard,
	"list":     guard.RouteDashboard,
	"update":   guard.RouteDashboard,
	"watch":    guard.RouteDashboard,
	"whoami":   guard.RouteDashboard,
	"logout":   guard.RouteDashboard,
}

// routeGuards is the access-rule table: the dashboard requires a session,
// the public entry points require its absence.
var routeGuards = map[guard.Route]guard.Guard{
	guard.RouteRoot:      guard.AnonymousOnly{RedirectTo: guard.RouteDashboard},
	guard.RouteLogin:     guard.AnonymousOnly{RedirectTo: guard.RouteDashboard},
	guard.RouteRegister:  guard.AnonymousOnly{RedirectTo: guard.RouteDashboard},
	guard.RouteDashboard: guard.AuthenticatedOnly{RedirectTo: guard.RouteLogin},
}

func guardFor(route guard.Route) guard.Guard {
	if g, ok := routeGuards[route]; ok {
		return g
	}
	return guard.AllowAll{}
}
