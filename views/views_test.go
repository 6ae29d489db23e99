package views_test

import (
	"context"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jrsteele09/go-jobboard/api"
	"github.com/jrsteele09/go-jobboard/gate"
	"github.com/jrsteele09/go-jobboard/internal/config"
	jberrors "github.com/jrsteele09/go-jobboard/internal/errors"
	"github.com/jrsteele09/go-jobboard/server"
	"github.com/jrsteele09/go-jobboard/server/jobrepo"
	"github.com/jrsteele09/go-jobboard/sessions"
	fakesessionrepo "github.com/jrsteele09/go-jobboard/sessions/repofakes"
	"github.com/jrsteele09/go-jobboard/views"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	lock      sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(message string) {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.errors = append(n.errors, message)
}

func (n *recordingNotifier) reset() {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.successes = nil
	n.errors = nil
}

func (n *recordingNotifier) lastError() string {
	n.lock.Lock()
	defer n.lock.Unlock()
	if len(n.errors) == 0 {
		return ""
	}
	return n.errors[len(n.errors)-1]
}

// user is one client side: its own session store, API client and gate
type user struct {
	store  *fakesessionrepo.FakeSessionStore
	svc    *sessions.Service
	client *api.Client
	gate   *gate.Gate
	notify *recordingNotifier
}

type testFixture struct {
	ctx   context.Context
	cfg   config.Config
	ts    *httptest.Server
	repos server.Repos
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()
	t.Setenv("MOCK_SECRET", "views-test-secret")
	t.Setenv("ENV", "TEST")
	cfg := config.New()
	repos := server.NewInMemoryRepos()
	require.NoError(t, server.SeedDemoData(repos))
	ts := httptest.NewServer(server.New(cfg, repos))
	t.Cleanup(ts.Close)
	return &testFixture{ctx: context.Background(), cfg: cfg, ts: ts, repos: repos}
}

func (f *testFixture) newUser(t *testing.T) *user {
	t.Helper()
	store := fakesessionrepo.NewFakeSessionStore()
	svc := sessions.NewService(store)
	return &user{
		store:  store,
		svc:    svc,
		client: api.New(f.cfg, svc, api.WithBaseURL(f.ts.URL)),
		gate:   gate.New(svc),
		notify: &recordingNotifier{},
	}
}

func (f *testFixture) loggedIn(t *testing.T, accountType sessions.AccountType, email string) *user {
	t.Helper()
	u := f.newUser(t)
	_, err := views.NewLoginForm(u.client, u.svc, u.notify).Submit(f.ctx, accountType.String(), email, server.DemoPassword)
	require.NoError(t, err)
	u.notify.reset()
	return u
}

// employerSession starts an employer session without a backend, for views
// driven by fake APIs
func employerSession(t *testing.T) (*sessions.Service, *gate.Gate) {
	t.Helper()
	svc := sessions.NewService(fakesessionrepo.NewFakeSessionStore())
	require.NoError(t, svc.Begin(sessions.LoginResult{
		Token:       "token-1",
		UserID:      "emp-1",
		UserName:    "Boss",
		AccountType: sessions.AccountEmployer,
	}))
	return svc, gate.New(svc)
}

func (f *testFixture) employer(t *testing.T) *user {
	return f.loggedIn(t, sessions.AccountEmployer, server.DemoEmployerEmail)
}

func (f *testFixture) seeker(t *testing.T) *user {
	return f.loggedIn(t, sessions.AccountJobSeeker, server.DemoJobSeekerEmail)
}

func TestLoginForm(t *testing.T) {
	f := setupTestFixture(t)

	t.Run("writes session and returns dashboard", func(t *testing.T) {
		u := f.newUser(t)
		route, err := views.NewLoginForm(u.client, u.svc, u.notify).Submit(f.ctx, "Employer", server.DemoEmployerEmail, server.DemoPassword)
		require.NoError(t, err)
		require.Equal(t, gate.RouteEmployerDashboard, route)
		require.Equal(t, len(sessions.AllKeys), u.store.Len())
		require.True(t, u.gate.IsLoggedIn())
		require.Equal(t, []string{"Login successful! Redirecting..."}, u.notify.successes)
	})

	t.Run("bad password leaves store empty", func(t *testing.T) {
		u := f.newUser(t)
		_, err := views.NewLoginForm(u.client, u.svc, u.notify).Submit(f.ctx, "jobSeeker", server.DemoJobSeekerEmail, "wrong")
		require.Error(t, err)
		require.Zero(t, u.store.Len())
		require.Equal(t, "Invalid email or password", u.notify.lastError())
	})

	t.Run("blank fields are rejected before calling the API", func(t *testing.T) {
		u := f.newUser(t)
		_, err := views.NewLoginForm(u.client, u.svc, u.notify).Submit(f.ctx, "jobSeeker", "", "pw")
		require.ErrorIs(t, err, jberrors.ErrValidation)

		_, err = views.NewLoginForm(u.client, u.svc, u.notify).Submit(f.ctx, "admin", "a@b.c", "pw")
		require.ErrorIs(t, err, jberrors.ErrValidation)
	})

	t.Run("logout clears the session", func(t *testing.T) {
		u := f.seeker(t)
		route, err := views.Logout(u.svc, u.notify)
		require.NoError(t, err)
		require.Equal(t, gate.RouteHome, route)
		require.Zero(t, u.store.Len())
		require.Equal(t, gate.RouteLogin, u.gate.Check(gate.RouteJobSeekerDashboard).Redirect)
	})
}

func TestRegisterForm(t *testing.T) {
	f := setupTestFixture(t)
	u := f.newUser(t)
	form := views.NewRegisterForm(u.client, u.notify)

	_, err := form.Submit(f.ctx, api.Registration{FullName: "New Co", Email: "new@example.com", Password: "pw", AccountType: "employer"})
	require.ErrorIs(t, err, jberrors.ErrValidation)
	require.Contains(t, u.notify.lastError(), "company name is required")

	route, err := form.Submit(f.ctx, api.Registration{FullName: "New Co", Email: "new@example.com", Password: "pw", AccountType: "employer", CompanyName: "NewCo"})
	require.NoError(t, err)
	require.Equal(t, gate.RouteLogin, route)

	_, err = form.Submit(f.ctx, api.Registration{FullName: "New Co", Email: "new@example.com", Password: "pw", AccountType: "employer", CompanyName: "NewCo"})
	require.Error(t, err)
	require.Equal(t, "An account with this email already exists", u.notify.lastError())
}

func TestJobList_RowsKeyedByID(t *testing.T) {
	f := setupTestFixture(t)
	u := f.newUser(t)
	list := views.NewJobList(u.client, u.notify)

	require.NoError(t, list.Load(f.ctx))
	jobs := list.Jobs()
	rows := list.Rows()
	require.Len(t, rows, len(jobs))
	require.Len(t, rows, 3)
	for i, row := range rows {
		require.Equal(t, jobs[i].ID, row.Key)
		require.Equal(t, jobs[i].JobTitle, row.Title)
	}

	list.SetCategory("development")
	require.NoError(t, list.Load(f.ctx))
	require.Len(t, list.Rows(), 2)

	list.SetCategory("")
	list.SetSearch("designer")
	require.NoError(t, list.Load(f.ctx))
	require.Len(t, list.Rows(), 1)
	require.Equal(t, api.CategoryAll, list.Filter().Category)
}

// blockingJobs answers the first ListJobs call only once release is closed
type blockingJobs struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func (b *blockingJobs) ListJobs(ctx context.Context, filter api.JobFilter) ([]api.Job, error) {
	if b.calls.Add(1) == 1 {
		close(b.started)
		<-b.release
		return []api.Job{{ID: "old"}}, nil
	}
	return []api.Job{{ID: "new-1"}, {ID: "new-2"}}, nil
}

func (b *blockingJobs) GetJob(ctx context.Context, id string) (*api.Job, error) {
	return nil, jberrors.ErrNotFound
}

func TestJobList_DropsStaleResponse(t *testing.T) {
	backend := &blockingJobs{started: make(chan struct{}), release: make(chan struct{})}
	list := views.NewJobList(backend, &recordingNotifier{})

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- list.Load(context.Background())
	}()
	<-backend.started

	require.NoError(t, list.Load(context.Background()))
	close(backend.release)
	require.ErrorIs(t, <-firstDone, jberrors.ErrStaleResponse)

	rows := list.Rows()
	require.Len(t, rows, 2)
	require.Equal(t, "new-1", rows[0].Key)
}

func TestJobDetails_Apply(t *testing.T) {
	f := setupTestFixture(t)
	jobs, err := f.repos.Jobs.List(jobrepo.Filter{})
	require.NoError(t, err)
	jobID := jobs[0].ID

	t.Run("anonymous is sent to login", func(t *testing.T) {
		u := f.newUser(t)
		details := views.NewJobDetails(u.client, u.gate, u.svc, u.notify)
		require.NoError(t, details.Load(f.ctx, jobID))
		decision, err := details.Apply(f.ctx)
		require.ErrorIs(t, err, jberrors.ErrUnauthenticated)
		require.Equal(t, gate.Redirect, decision.Outcome)
		require.Equal(t, gate.RouteLogin, decision.Redirect)
	})

	t.Run("employer is sent to login", func(t *testing.T) {
		u := f.employer(t)
		details := views.NewJobDetails(u.client, u.gate, u.svc, u.notify)
		require.NoError(t, details.Load(f.ctx, jobID))
		decision, err := details.Apply(f.ctx)
		require.ErrorIs(t, err, jberrors.ErrForbiddenRole)
		require.Equal(t, gate.RouteLogin, decision.Redirect)
	})

	t.Run("job seeker applies once", func(t *testing.T) {
		u := f.seeker(t)
		details := views.NewJobDetails(u.client, u.gate, u.svc, u.notify)
		require.NoError(t, details.Load(f.ctx, jobID))
		decision, err := details.Apply(f.ctx)
		require.NoError(t, err)
		require.True(t, decision.Allowed())
		require.Equal(t, []string{"Successfully applied to job."}, u.notify.successes)

		_, err = details.Apply(f.ctx)
		require.Error(t, err)
		require.Equal(t, "You have already applied to this job", u.notify.lastError())
	})

	t.Run("unknown job", func(t *testing.T) {
		u := f.newUser(t)
		details := views.NewJobDetails(u.client, u.gate, u.svc, u.notify)
		require.Error(t, details.Load(f.ctx, "missing"))
		require.Nil(t, details.Job())
		require.Equal(t, "Job not found", u.notify.lastError())
	})
}

func validForm(title string) views.JobForm {
	return views.JobForm{
		Title:        title,
		Type:         "Full-time",
		Category:     "development",
		Description:  "Ship features",
		Requirements: "Go, SQL , ,Docker",
		SalaryMin:    "60,000",
		SalaryMax:    "90000",
		CompanyName:  "Acme Corp",
	}
}

func TestListings_FailuresLeaveListUnchanged(t *testing.T) {
	f := setupTestFixture(t)
	u := f.employer(t)
	listings := views.NewListings(u.client, u.gate, u.svc, u.notify)
	require.NoError(t, listings.Load(f.ctx))
	before := listings.Jobs()
	require.Len(t, before, 3)

	_, err := listings.Update(f.ctx, "missing", validForm("Ghost"))
	require.Error(t, err)
	require.Equal(t, before, listings.Jobs())

	require.Error(t, listings.Delete(f.ctx, "missing"))
	require.Equal(t, before, listings.Jobs())

	bad := validForm("Bad salary")
	bad.SalaryMin = "lots"
	_, err = listings.Create(f.ctx, bad)
	require.ErrorIs(t, err, jberrors.ErrValidation)
	require.Equal(t, before, listings.Jobs())

	untyped := validForm("No type")
	untyped.Type = " "
	_, err = listings.Create(f.ctx, untyped)
	require.Error(t, err)
	require.Equal(t, "Job type is required", u.notify.lastError())
	require.Equal(t, before, listings.Jobs())

	uncategorised := views.FormFromJob(before[0])
	uncategorised.Category = ""
	_, err = listings.Update(f.ctx, before[0].ID, uncategorised)
	require.Error(t, err)
	require.Equal(t, "Category is required", u.notify.lastError())
	require.Equal(t, before, listings.Jobs())

	inverted := validForm("Inverted")
	inverted.SalaryMin, inverted.SalaryMax = "90000", "10"
	_, err = listings.Create(f.ctx, inverted)
	require.Error(t, err)
	require.Equal(t, "Maximum salary must not be below minimum salary", u.notify.lastError())
	require.Equal(t, before, listings.Jobs())
}

func TestListings_CreateEditUpdateDelete(t *testing.T) {
	f := setupTestFixture(t)
	u := f.employer(t)
	listings := views.NewListings(u.client, u.gate, u.svc, u.notify)
	require.NoError(t, listings.Load(f.ctx))

	created, err := listings.Create(f.ctx, validForm("Platform Engineer"))
	require.NoError(t, err)
	require.Equal(t, []string{"Go", "SQL", "Docker"}, created.Requirements)
	require.True(t, created.SalaryRange.Min.Equal(decimal.NewFromInt(60000)))
	require.Len(t, listings.Rows(), 4)
	require.Equal(t, created.ID, listings.Rows()[0].Key)

	form, err := listings.Edit(f.ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Go,SQL,Docker", form.Requirements)
	require.Equal(t, "Platform Engineer", form.Title)

	form.Title = "Staff Platform Engineer"
	updated, err := listings.Update(f.ctx, created.ID, form)
	require.NoError(t, err)
	require.Equal(t, "Staff Platform Engineer", updated.JobTitle)
	require.Equal(t, "Staff Platform Engineer", listings.Jobs()[0].JobTitle)

	require.NoError(t, listings.Delete(f.ctx, created.ID))
	require.Len(t, listings.Rows(), 3)
	require.Contains(t, u.notify.successes, "Deleted successfully")
}

func TestListings_RequiresEmployer(t *testing.T) {
	f := setupTestFixture(t)
	u := f.seeker(t)
	listings := views.NewListings(u.client, u.gate, u.svc, u.notify)
	require.ErrorIs(t, listings.Load(f.ctx), jberrors.ErrForbiddenRole)
	require.Empty(t, listings.Jobs())
}

func TestApplications_SetStatusAndAnalysis(t *testing.T) {
	f := setupTestFixture(t)
	seeker := f.seeker(t)
	list := views.NewJobList(seeker.client, seeker.notify)
	require.NoError(t, list.Load(f.ctx))
	details := views.NewJobDetails(seeker.client, seeker.gate, seeker.svc, seeker.notify)
	for _, job := range list.Jobs()[:2] {
		require.NoError(t, details.Load(f.ctx, job.ID))
		_, err := details.Apply(f.ctx)
		require.NoError(t, err)
	}

	employer := f.employer(t)
	apps := views.NewApplications(employer.client, employer.gate, employer.svc, employer.notify)
	require.NoError(t, apps.Load(f.ctx))
	rows := apps.Rows()
	require.Len(t, rows, 2)
	require.NotEqual(t, "Unknown Title", rows[0].JobTitle)
	require.Equal(t, api.StatusPending, rows[0].Status)

	require.NoError(t, apps.SetStatus(f.ctx, rows[0].Key, api.StatusApproved))
	require.Equal(t, api.StatusApproved, apps.Rows()[0].Status)

	require.ErrorIs(t, apps.SetStatus(f.ctx, "missing", api.StatusRejected), jberrors.ErrNotFound)
	require.ErrorIs(t, apps.SetStatus(f.ctx, rows[1].Key, "maybe"), jberrors.ErrValidation)
	require.Equal(t, api.StatusPending, apps.Rows()[1].Status)

	analysis := views.NewAnalysis(employer.client, employer.gate, employer.svc, employer.notify)
	require.NoError(t, analysis.Load(f.ctx))
	require.Equal(t, views.Stats{Listings: 3, Applications: 2, Pending: 1, Approved: 1}, analysis.Stats())
}

func TestMyApplications_EnrichesWithFallbacks(t *testing.T) {
	f := setupTestFixture(t)
	seeker := f.seeker(t)
	list := views.NewJobList(seeker.client, seeker.notify)
	require.NoError(t, list.Load(f.ctx))
	details := views.NewJobDetails(seeker.client, seeker.gate, seeker.svc, seeker.notify)
	for _, job := range list.Jobs()[:2] {
		require.NoError(t, details.Load(f.ctx, job.ID))
		_, err := details.Apply(f.ctx)
		require.NoError(t, err)
	}
	deleted := list.Jobs()[0].ID
	require.NoError(t, f.repos.Jobs.Delete(deleted))

	mine := views.NewMyApplications(seeker.client, seeker.gate, seeker.svc, seeker.notify)
	var progressed, reportedTotal atomic.Int32
	mine.OnProgress(func(done, total int) {
		progressed.Add(1)
		reportedTotal.Store(int32(total))
	})

	count, err := mine.Load(f.ctx)
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.EqualValues(t, 2, progressed.Load())
	require.EqualValues(t, 2, reportedTotal.Load())

	for _, applied := range mine.Applied() {
		require.Equal(t, "Acme Corp", applied.CompanyName)
		if applied.Application.JobID == deleted {
			require.Equal(t, "Unknown Title", applied.JobTitle)
		} else {
			require.NotEqual(t, "Unknown Title", applied.JobTitle)
		}
	}
}

func TestJobForm_Input(t *testing.T) {
	input, err := validForm("Dev").Input("emp-1")
	require.NoError(t, err)
	require.Equal(t, "emp-1", input.EmployerID)
	require.Equal(t, []string{"Go", "SQL", "Docker"}, input.Requirements)
	require.True(t, input.SalaryRange.Min.Equal(decimal.NewFromInt(60000)))

	_, err = views.JobForm{}.Input("emp-1")
	require.ErrorIs(t, err, jberrors.ErrValidation)
}

func TestFormatSalary(t *testing.T) {
	require.Equal(t, "Not disclosed", views.FormatSalary(api.SalaryRange{}))
	require.Equal(t, "$50,000 - $80,000", views.FormatSalary(api.SalaryRange{Min: decimal.NewFromInt(50000), Max: decimal.NewFromInt(80000)}))
	require.Equal(t, "$1,200", views.FormatSalary(api.SalaryRange{Min: decimal.NewFromInt(1200)}))
}

// listingsBackend is an employer's listings held in memory. When hold is set,
// CreateJob stores the job and then waits for it to be closed before replying.
type listingsBackend struct {
	lock    sync.Mutex
	jobs    []api.Job
	started chan struct{}
	hold    chan struct{}
}

func (b *listingsBackend) ListEmployerJobs(ctx context.Context, employerID string) ([]api.Job, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	return append([]api.Job(nil), b.jobs...), nil
}

func (b *listingsBackend) GetJob(ctx context.Context, id string) (*api.Job, error) {
	return nil, jberrors.ErrNotFound
}

func (b *listingsBackend) CreateJob(ctx context.Context, input api.JobInput) (*api.JobMutation, error) {
	job := api.Job{ID: "job-new", JobTitle: input.JobTitle}
	b.lock.Lock()
	b.jobs = append([]api.Job{job}, b.jobs...)
	b.lock.Unlock()
	if b.hold != nil {
		close(b.started)
		<-b.hold
	}
	return &api.JobMutation{Message: "Job created", Job: &job}, nil
}

func (b *listingsBackend) UpdateJob(ctx context.Context, id string, input api.JobInput) (*api.JobMutation, error) {
	return nil, jberrors.ErrNotFound
}

func (b *listingsBackend) DeleteJob(ctx context.Context, id string) error {
	return jberrors.ErrNotFound
}

func TestListings_CreateOvertakenByLoadDoesNotDuplicate(t *testing.T) {
	svc, g := employerSession(t)
	backend := &listingsBackend{
		jobs:    []api.Job{{ID: "job-old", JobTitle: "Old"}},
		started: make(chan struct{}),
		hold:    make(chan struct{}),
	}
	listings := views.NewListings(backend, g, svc, &recordingNotifier{})
	require.NoError(t, listings.Load(context.Background()))

	created := make(chan error, 1)
	go func() {
		_, err := listings.Create(context.Background(), validForm("New"))
		created <- err
	}()
	<-backend.started

	require.NoError(t, listings.Load(context.Background()))
	close(backend.hold)
	require.NoError(t, <-created)

	jobs := listings.Jobs()
	require.Len(t, jobs, 2)
	require.Equal(t, "job-new", jobs[0].ID)
	require.Equal(t, "job-old", jobs[1].ID)
}

// applicationsBackend acknowledges status changes with an empty body, the same
// shape the other mutation endpoints reply with.
type applicationsBackend struct {
	lock    sync.Mutex
	apps    []api.Application
	loads   atomic.Int32
	reply   *api.Application
	started chan struct{}
	hold    chan struct{}
}

func (b *applicationsBackend) ListEmployerJobs(ctx context.Context, employerID string) ([]api.Job, error) {
	return []api.Job{{ID: "job-1", JobTitle: "Go Developer"}}, nil
}

func (b *applicationsBackend) EmployerApplications(ctx context.Context, employerID string) ([]api.Application, error) {
	b.loads.Add(1)
	b.lock.Lock()
	defer b.lock.Unlock()
	return append([]api.Application(nil), b.apps...), nil
}

func (b *applicationsBackend) UpdateApplicationStatus(ctx context.Context, id string, status api.ApplicationStatus) (*api.Application, error) {
	b.lock.Lock()
	for i := range b.apps {
		if b.apps[i].ID == id {
			b.apps[i].Status = status
		}
	}
	b.lock.Unlock()
	if b.hold != nil {
		close(b.started)
		<-b.hold
	}
	return b.reply, nil
}

func newApplicationsBackend() *applicationsBackend {
	return &applicationsBackend{
		apps: []api.Application{{ID: "a1", JobID: "job-1", EmployerID: "emp-1", Status: api.StatusPending}},
	}
}

func TestApplications_SetStatusKeepsRequestedStatusOnEmptyReply(t *testing.T) {
	svc, g := employerSession(t)

	for name, reply := range map[string]*api.Application{
		"empty application": {},
		"no body":           nil,
	} {
		t.Run(name, func(t *testing.T) {
			backend := newApplicationsBackend()
			backend.reply = reply
			apps := views.NewApplications(backend, g, svc, &recordingNotifier{})
			require.NoError(t, apps.Load(context.Background()))

			require.NoError(t, apps.SetStatus(context.Background(), "a1", api.StatusApproved))
			require.Equal(t, api.StatusApproved, apps.Rows()[0].Status)

			require.NoError(t, apps.SetStatus(context.Background(), "a1", "Accepted"))
			require.Equal(t, api.StatusApproved, apps.Rows()[0].Status)
		})
	}
}

func TestApplications_SetStatusOvertakenByLoadReloads(t *testing.T) {
	svc, g := employerSession(t)
	backend := newApplicationsBackend()
	backend.reply = &api.Application{ID: "a1", Status: api.StatusRejected}
	backend.started = make(chan struct{})
	backend.hold = make(chan struct{})
	apps := views.NewApplications(backend, g, svc, &recordingNotifier{})
	require.NoError(t, apps.Load(context.Background()))

	done := make(chan error, 1)
	go func() {
		done <- apps.SetStatus(context.Background(), "a1", api.StatusRejected)
	}()
	<-backend.started

	require.NoError(t, apps.Load(context.Background()))
	close(backend.hold)
	require.NoError(t, <-done)

	require.EqualValues(t, 3, backend.loads.Load())
	require.Equal(t, api.StatusRejected, apps.Rows()[0].Status)
	require.Equal(t, "Go Developer", apps.Rows()[0].JobTitle)
}
