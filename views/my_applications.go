package views

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/jrsteele09/go-jobboard/api"
	"github.com/jrsteele09/go-jobboard/gate"
	"github.com/jrsteele09/go-jobboard/internal/errors"
	"github.com/jrsteele09/go-jobboard/sessions"
)

const (
	unknownCompany = "Unknown Company"
	maxLookups     = 4
)

// AppliedJob is an application enriched with the job and company it is for.
type AppliedJob struct {
	Application api.Application
	JobTitle    string
	CompanyName string
}

// MyApplications lists the job seeker's applications.
type MyApplications struct {
	client   MyApplicationsAPI
	gate     *gate.Gate
	sessions gate.SessionReader
	notify   Notifier
	seq      sequence

	// progress, when set, is called once per enriched application
	progress func(done, total int)

	lock    sync.RWMutex
	applied []AppliedJob
}

func NewMyApplications(client MyApplicationsAPI, g *gate.Gate, sess gate.SessionReader, notify Notifier) *MyApplications {
	return &MyApplications{client: client, gate: g, sessions: sess, notify: notify, applied: make([]AppliedJob, 0)}
}

// OnProgress registers a callback invoked after each application is enriched.
// It may be called from several goroutines at once.
func (v *MyApplications) OnProgress(fn func(done, total int)) {
	v.progress = fn
}

// Load fetches the applications, then looks up each job title and company
// name. Lookups that fail fall back to placeholder text instead of failing
// the load. It returns the number of applications found.
func (v *MyApplications) Load(ctx context.Context) (int, error) {
	if err := v.gate.Require(sessions.AccountJobSeeker); err != nil {
		v.notify.Error(api.UserMessage(err, "Please log in as a job seeker."))
		return 0, err
	}
	sess, err := v.sessions.Current()
	if err != nil {
		return 0, errors.Wrapf(err, "read session")
	}

	n := v.seq.begin()
	apps, err := v.client.AppliedJobs(ctx, sess.UserID)
	if err != nil {
		v.notify.Error(api.UserMessage(err, "Failed to fetch applied jobs"))
		return 0, errors.Wrapf(err, "load applied jobs")
	}

	applied := make([]AppliedJob, len(apps))
	var done atomic.Int32
	semaphore := make(chan struct{}, maxLookups)
	var wg sync.WaitGroup
	for i, app := range apps {
		wg.Add(1)
		go func() {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() {
				<-semaphore
				n := done.Add(1)
				if v.progress != nil {
					v.progress(int(n), len(apps))
				}
			}()
			applied[i] = AppliedJob{
				Application: app,
				JobTitle:    v.jobTitle(ctx, app.JobID),
				CompanyName: v.companyName(ctx, app.EmployerID),
			}
		}()
	}
	wg.Wait()

	v.lock.Lock()
	defer v.lock.Unlock()
	if !v.seq.commit(n) {
		return len(apps), errors.ErrStaleResponse
	}
	v.applied = applied
	return len(apps), nil
}

func (v *MyApplications) jobTitle(ctx context.Context, jobID string) string {
	jobs, err := v.client.ListJobs(ctx, api.JobFilter{ID: jobID})
	if err != nil || len(jobs) == 0 || jobs[0].JobTitle == "" {
		return unknownTitle
	}
	return jobs[0].JobTitle
}

func (v *MyApplications) companyName(ctx context.Context, employerID string) string {
	if employerID == "" {
		return unknownCompany
	}
	employer, err := v.client.GetEmployer(ctx, employerID)
	if err != nil || employer.CompanyName == "" {
		return unknownCompany
	}
	return employer.CompanyName
}

func (v *MyApplications) Applied() []AppliedJob {
	v.lock.RLock()
	defer v.lock.RUnlock()
	return slices.Clone(v.applied)
}
