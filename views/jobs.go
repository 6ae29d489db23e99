package views

import (
	"context"
	"slices"
	"sync"

	"github.com/jrsteele09/go-jobboard/api"
	"github.com/jrsteele09/go-jobboard/gate"
	"github.com/jrsteele09/go-jobboard/internal/errors"
	"github.com/jrsteele09/go-jobboard/sessions"
)

// JobList is the public job browser with search and category filters.
type JobList struct {
	client JobsAPI
	notify Notifier
	seq    sequence

	lock   sync.RWMutex
	filter api.JobFilter
	jobs   []api.Job
}

func NewJobList(client JobsAPI, notify Notifier) *JobList {
	return &JobList{
		client: client,
		notify: notify,
		filter: api.JobFilter{Category: api.CategoryAll},
		jobs:   make([]api.Job, 0),
	}
}

func (v *JobList) SetSearch(search string) {
	v.lock.Lock()
	defer v.lock.Unlock()
	v.filter.Search = search
}

// SetCategory selects a category; empty selects all.
func (v *JobList) SetCategory(category string) {
	v.lock.Lock()
	defer v.lock.Unlock()
	if category == "" {
		category = api.CategoryAll
	}
	v.filter.Category = category
}

func (v *JobList) Filter() api.JobFilter {
	v.lock.RLock()
	defer v.lock.RUnlock()
	return v.filter
}

// Load fetches the jobs matching the current filter. A response that arrives
// after a newer Load has already applied is dropped with ErrStaleResponse.
func (v *JobList) Load(ctx context.Context) error {
	n := v.seq.begin()
	jobs, err := v.client.ListJobs(ctx, v.Filter())
	if err != nil {
		v.notify.Error(api.UserMessage(err, "Failed to load jobs"))
		return errors.Wrapf(err, "load jobs")
	}
	v.lock.Lock()
	defer v.lock.Unlock()
	if !v.seq.commit(n) {
		return errors.ErrStaleResponse
	}
	v.jobs = jobs
	return nil
}

func (v *JobList) Jobs() []api.Job {
	v.lock.RLock()
	defer v.lock.RUnlock()
	return slices.Clone(v.jobs)
}

// Rows returns one row per job, keyed by its id.
func (v *JobList) Rows() []JobRow {
	return jobRows(v.Jobs())
}

// JobDetails shows one job and lets a job seeker apply to it.
type JobDetails struct {
	client   ApplyAPI
	gate     *gate.Gate
	sessions gate.SessionReader
	notify   Notifier

	lock sync.RWMutex
	job  *api.Job
}

func NewJobDetails(client ApplyAPI, g *gate.Gate, sess gate.SessionReader, notify Notifier) *JobDetails {
	return &JobDetails{client: client, gate: g, sessions: sess, notify: notify}
}

func (v *JobDetails) Load(ctx context.Context, id string) error {
	job, err := v.client.GetJob(ctx, id)
	if err != nil {
		v.notify.Error(api.UserMessage(err, "Job not found"))
		return errors.Wrapf(err, "load job %s", id)
	}
	v.lock.Lock()
	defer v.lock.Unlock()
	v.job = job
	return nil
}

// Job returns the loaded job, nil before a successful Load.
func (v *JobDetails) Job() *api.Job {
	v.lock.RLock()
	defer v.lock.RUnlock()
	if v.job == nil {
		return nil
	}
	job := *v.job
	return &job
}

// Apply submits an application for the loaded job. When the session cannot
// apply the returned decision redirects to the login page.
func (v *JobDetails) Apply(ctx context.Context) (gate.Decision, error) {
	if err := v.gate.Require(sessions.AccountJobSeeker); err != nil {
		v.notify.Error("Please log in as a job seeker to apply.")
		return gate.Decision{Outcome: gate.Redirect, Redirect: gate.RouteLogin}, err
	}
	job := v.Job()
	if job == nil {
		return gate.Decision{Outcome: gate.Allow}, errors.Wrapf(errors.ErrValidation, "no job loaded")
	}
	sess, err := v.sessions.Current()
	if err != nil {
		v.notify.Error("Failed to apply.")
		return gate.Decision{Outcome: gate.Allow}, errors.Wrapf(err, "read session")
	}

	_, err = v.client.Apply(ctx, api.ApplyRequest{
		JobID:      job.ID,
		UserID:     sess.UserID,
		EmployerID: job.Employer.ID,
	})
	if err != nil {
		v.notify.Error(api.UserMessage(err, "Something went wrong while applying."))
		return gate.Decision{Outcome: gate.Allow}, errors.Wrapf(err, "apply to %s", job.ID)
	}
	v.notify.Success("Successfully applied to job.")
	return gate.Decision{Outcome: gate.Allow}, nil
}
