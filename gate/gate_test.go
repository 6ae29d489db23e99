package gate_test

import (
	"errors"
	"testing"

	"github.com/jrsteele09/go-jobboard/gate"
	jberrors "github.com/jrsteele09/go-jobboard/internal/errors"
	"github.com/jrsteele09/go-jobboard/sessions"
	fakesessionrepo "github.com/jrsteele09/go-jobboard/sessions/repofakes"
	"github.com/stretchr/testify/require"
)

type testFixture struct {
	store *fakesessionrepo.FakeSessionStore
	svc   *sessions.Service
	gate  *gate.Gate
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()
	store := fakesessionrepo.NewFakeSessionStore()
	svc := sessions.NewService(store)
	return &testFixture{store: store, svc: svc, gate: gate.New(svc)}
}

func (f *testFixture) login(t *testing.T, accountType sessions.AccountType) {
	t.Helper()
	require.NoError(t, f.svc.Begin(sessions.LoginResult{
		Token:       "token",
		UserID:      "user-1",
		UserName:    "Test User",
		AccountType: accountType,
	}))
}

func TestGate_EmployerRouteRedirects(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		f := setupTestFixture(t)
		d := f.gate.Check(gate.RouteEmployerDashboard)
		require.Equal(t, gate.Redirect, d.Outcome)
		require.Equal(t, gate.RouteLogin, d.Redirect)
	})

	t.Run("job seeker", func(t *testing.T) {
		f := setupTestFixture(t)
		f.login(t, sessions.AccountJobSeeker)
		d := f.gate.Check(gate.RouteEmployerDashboard)
		require.Equal(t, gate.Redirect, d.Outcome)
		require.Equal(t, gate.RouteLogin, d.Redirect)
	})

	t.Run("employer", func(t *testing.T) {
		f := setupTestFixture(t)
		f.login(t, sessions.AccountEmployer)
		require.True(t, f.gate.Check(gate.RouteEmployerDashboard).Allowed())
		require.True(t, f.gate.Check(gate.RouteEmployerDashboard+"/").Allowed())
	})
}

func TestGate_JobSeekerRoute(t *testing.T) {
	f := setupTestFixture(t)
	require.Equal(t, gate.RouteLogin, f.gate.Check(gate.RouteJobSeekerDashboard).Redirect)

	f.login(t, sessions.AccountEmployer)
	require.Equal(t, gate.RouteLogin, f.gate.Check(gate.RouteJobSeekerDashboard).Redirect)

	f.login(t, sessions.AccountJobSeeker)
	require.True(t, f.gate.Check(gate.RouteJobSeekerDashboard).Allowed())
}

func TestGate_TokenWithoutUserIsNotLoggedIn(t *testing.T) {
	f := setupTestFixture(t)
	require.NoError(t, f.store.Set(sessions.KeyAuthToken, "token"))
	require.NoError(t, f.store.Set(sessions.KeyAccountType, "employer"))

	require.False(t, f.gate.IsLoggedIn())
	require.Nil(t, f.gate.Role())
	require.Equal(t, gate.Redirect, f.gate.Check(gate.RouteEmployerDashboard).Outcome)
}

func TestGate_PublicAndUnknownRoutes(t *testing.T) {
	f := setupTestFixture(t)
	for _, route := range []string{"", "/", "/jobs", "/jobs/abc123", "/login", "/register?next=/jobs"} {
		require.True(t, f.gate.Check(route).Allowed(), route)
	}
	for _, route := range []string{"/contact", "/jobs/abc/edit", "/admin"} {
		require.Equal(t, gate.NotFound, f.gate.Check(route).Outcome, route)
	}
}

func TestGate_ObservesExternalClear(t *testing.T) {
	f := setupTestFixture(t)
	f.login(t, sessions.AccountEmployer)
	require.True(t, f.gate.IsLoggedIn())

	require.NoError(t, f.store.Clear())

	require.False(t, f.gate.IsLoggedIn())
	require.Equal(t, gate.Redirect, f.gate.Check(gate.RouteEmployerDashboard).Outcome)
}

func TestGate_Require(t *testing.T) {
	f := setupTestFixture(t)
	err := f.gate.Require(sessions.AccountEmployer)
	require.True(t, errors.Is(err, jberrors.ErrUnauthenticated))

	f.login(t, sessions.AccountJobSeeker)
	err = f.gate.Require(sessions.AccountEmployer)
	require.True(t, errors.Is(err, jberrors.ErrForbiddenRole))
	require.True(t, f.gate.CanApply())
}

func TestGate_NavLinks(t *testing.T) {
	f := setupTestFixture(t)
	require.Equal(t, []gate.NavLink{
		{Label: "Jobs", Route: gate.RouteJobs},
		{Label: "Login", Route: gate.RouteLogin},
	}, f.gate.NavLinks())

	f.login(t, sessions.AccountEmployer)
	require.Equal(t, []gate.NavLink{
		{Label: "Jobs", Route: gate.RouteJobs},
		{Label: "Dashboard", Route: gate.RouteEmployerDashboard},
		{Label: "Logout", Route: gate.RouteHome},
	}, f.gate.NavLinks())
}

func TestDashboardFor(t *testing.T) {
	seeker := sessions.AccountJobSeeker
	require.Equal(t, gate.RouteJobSeekerDashboard, gate.DashboardFor(&seeker))
	require.Empty(t, gate.DashboardFor(nil))
}
