package guard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tinylink/internal/client/session"
)

var sessionStates = map[string]session.Session{
	"unauthenticated": {},
	"authenticated": {
		Token:         "tok",
		Identity:      session.Identity{Email: "a@b.io", Username: "a"},
		Authenticated: true,
	},
}

func TestAuthenticatedOnly_NeverRendersWhenUnauthenticated(t *testing.T) {
	g := AuthenticatedOnly{RedirectTo: RouteLogin}

	out := g.Resolve(sessionStates["unauthenticated"])
	require.False(t, out.Allowed)
	require.Equal(t, RouteLogin, out.RedirectTo)

	out = g.Resolve(sessionStates["authenticated"])
	require.True(t, out.Allowed)
	require.Empty(t, out.RedirectTo)
}

func TestAnonymousOnly_RedirectsAuthenticatedUsers(t *testing.T) {
	g := AnonymousOnly{RedirectTo: RouteDashboard}

	out := g.Resolve(sessionStates["authenticated"])
	require.False(t, out.Allowed)
	require.Equal(t, RouteDashboard, out.RedirectTo)

	out = g.Resolve(sessionStates["unauthenticated"])
	require.True(t, out.Allowed)
}

// For every session state, each guard yields exactly one of render or
// redirect, and the two guard kinds never both render or both redirect.
func TestGuards_MutuallyExclusiveAcrossAllStates(t *testing.T) {
	authOnly := AuthenticatedOnly{RedirectTo: RouteLogin}
	anonOnly := AnonymousOnly{RedirectTo: RouteDashboard}

	for name, s := range sessionStates {
		t.Run(name, func(t *testing.T) {
			a := authOnly.Resolve(s)
			b := anonOnly.Resolve(s)

			require.NotEqual(t, a.Allowed, b.Allowed, "guards must disagree for every state")

			requireSingleOutcome(t, a)
			requireSingleOutcome(t, b)
		})
	}
}

func requireSingleOutcome(t *testing.T, o Outcome) {
	t.Helper()
	if o.Allowed {
		require.Empty(t, o.RedirectTo)
	} else {
		require.NotEmpty(t, o.RedirectTo)
	}
}
