// Package guard implements navigation-time access control: a view is either
// rendered or the user is redirected, based on the current session.
package guard

import "github.com/dmitrijs2005/tinylink/internal/client/session"

// Route names a navigable destination.
type Route string

const (
	RouteRoot      Route = "/"
	RouteLogin     Route = "/login"
	RouteRegister  Route = "/register"
	RouteDashboard Route = "/dashboard"
)

// Outcome is the result of resolving a guard: exactly one of render or
// redirect. Allowed=true means render the destination; otherwise RedirectTo
// says where the user is sent instead.
type Outcome struct {
	Allowed    bool
	RedirectTo Route
}

// Guard decides whether a destination renders for the given session.
// Callers must re-resolve on every session change, not only on first
// navigation, so that a cleared session immediately revokes access.
type Guard interface {
	Resolve(s session.Session) Outcome
}

// AuthenticatedOnly renders its destination only for authenticated
// sessions; everyone else is redirected to RedirectTo (the login entry).
type AuthenticatedOnly struct {
	RedirectTo Route
}

func (g AuthenticatedOnly) Resolve(s session.Session) Outcome {
	if !s.Authenticated {
		return Outcome{RedirectTo: g.RedirectTo}
	}
	return Outcome{Allowed: true}
}

// AnonymousOnly renders its destination only for unauthenticated sessions;
// a logged-in user is redirected to RedirectTo (the authenticated landing
// view).
type AnonymousOnly struct {
	RedirectTo Route
}

func (g AnonymousOnly) Resolve(s session.Session) Outcome {
	if s.Authenticated {
		return Outcome{RedirectTo: g.RedirectTo}
	}
	return Outcome{Allowed: true}
}

// AllowAll renders unconditionally (for destinations with no access rule).
type AllowAll struct{}

func (AllowAll) Resolve(session.Session) Outcome {
	return Outcome{Allowed: true}
}
