package gate

import (
	"strings"

	"github.com/jrsteele09/go-jobboard/internal/errors"
	"github.com/jrsteele09/go-jobboard/internal/utils"
	"github.com/jrsteele09/go-jobboard/sessions"
)

// SessionReader is the part of sessions.Service the gate needs.
type SessionReader interface {
	Current() (sessions.Session, error)
}

// Outcome of a route check.
type Outcome int

const (
	Allow Outcome = iota
	Redirect
	NotFound
)

// Decision is the result of checking a route against the current session.
type Decision struct {
	Outcome  Outcome
	Redirect string // set when Outcome is Redirect
}

func (d Decision) Allowed() bool {
	return d.Outcome == Allow
}

// NavLink is one entry of the navigation bar.
type NavLink struct {
	Label string
	Route string
}

// Gate derives login state and role from the session store. Only presence of
// the stored values is checked; tokens are never validated against the server.
type Gate struct {
	sessions SessionReader
}

func New(sessions SessionReader) *Gate {
	return &Gate{sessions: sessions}
}

// IsLoggedIn is true when both the auth token and the user id are stored.
func (g *Gate) IsLoggedIn() bool {
	sess, ok := g.current()
	return ok && sess.LoggedIn()
}

// Role returns the stored account type of a logged in user, nil otherwise.
func (g *Gate) Role() *sessions.AccountType {
	sess, ok := g.current()
	if !ok || !sess.LoggedIn() {
		return nil
	}
	role, ok := sess.Role()
	if !ok {
		return nil
	}
	return utils.Ptr(role)
}

// Check decides whether route may be rendered for the current session.
func (g *Gate) Check(route string) Decision {
	route = normaliseRoute(route)
	switch {
	case route == RouteEmployerDashboard:
		return g.requireRole(sessions.AccountEmployer)
	case route == RouteJobSeekerDashboard:
		return g.requireRole(sessions.AccountJobSeeker)
	case isPublic(route):
		return Decision{Outcome: Allow}
	}
	return Decision{Outcome: NotFound}
}

// Require returns nil when the current session holds role, otherwise an error
// wrapping ErrUnauthenticated or ErrForbiddenRole.
func (g *Gate) Require(role sessions.AccountType) error {
	if !g.IsLoggedIn() {
		return errors.Wrapf(errors.ErrUnauthenticated, "%s required", role)
	}
	current := g.Role()
	if current == nil || *current != role {
		return errors.Wrapf(errors.ErrForbiddenRole, "%s required", role)
	}
	return nil
}

// CanApply reports whether the current user may apply to a job.
func (g *Gate) CanApply() bool {
	return g.Require(sessions.AccountJobSeeker) == nil
}

// DashboardFor returns the dashboard route for role, empty for nil.
func DashboardFor(role *sessions.AccountType) string {
	if role == nil {
		return ""
	}
	switch *role {
	case sessions.AccountEmployer:
		return RouteEmployerDashboard
	case sessions.AccountJobSeeker:
		return RouteJobSeekerDashboard
	}
	return ""
}

// NavLinks returns the navigation entries for the current session.
func (g *Gate) NavLinks() []NavLink {
	links := []NavLink{{Label: "Jobs", Route: RouteJobs}}
	if dashboard := DashboardFor(g.Role()); dashboard != "" {
		links = append(links, NavLink{Label: "Dashboard", Route: dashboard})
	}
	if g.IsLoggedIn() {
		links = append(links, NavLink{Label: "Logout", Route: RouteHome})
	} else {
		links = append(links, NavLink{Label: "Login", Route: RouteLogin})
	}
	return links
}

func (g *Gate) requireRole(role sessions.AccountType) Decision {
	if g.Require(role) != nil {
		return Decision{Outcome: Redirect, Redirect: RouteLogin}
	}
	return Decision{Outcome: Allow}
}

// current treats an unreadable store as an empty session.
func (g *Gate) current() (sessions.Session, bool) {
	sess, err := g.sessions.Current()
	if err != nil {
		return sessions.Session{}, false
	}
	return sess, true
}

func isPublic(route string) bool {
	switch route {
	case RouteHome, RouteJobs, RouteLogin, RouteRegister:
		return true
	}
	id, ok := strings.CutPrefix(route, RouteJobs+"/")
	return ok && id != "" && !strings.Contains(id, "/")
}

func normaliseRoute(route string) string {
	if i := strings.IndexAny(route, "?#"); i >= 0 {
		route = route[:i]
	}
	if len(route) > 1 {
		route = strings.TrimSuffix(route, "/")
	}
	if route == "" {
		return RouteHome
	}
	return route
}
