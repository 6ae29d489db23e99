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

const unknownTitle = "Unknown Title"

// ApplicationRow is one line of the employer's applications table.
type ApplicationRow struct {
	Key       string
	Applicant string
	Email     string
	JobTitle  string
	Status    api.ApplicationStatus
}

// Applications lists the applications made to the employer's jobs and lets
// the employer approve or reject them.
type Applications struct {
	client   ApplicationsAPI
	gate     *gate.Gate
	sessions gate.SessionReader
	notify   Notifier
	seq      sequence

	lock   sync.RWMutex
	apps   []api.Application
	titles map[string]string
}

func NewApplications(client ApplicationsAPI, g *gate.Gate, sess gate.SessionReader, notify Notifier) *Applications {
	return &Applications{
		client:   client,
		gate:     g,
		sessions: sess,
		notify:   notify,
		apps:     make([]api.Application, 0),
		titles:   make(map[string]string),
	}
}

// Load fetches the applications and the employer's job titles to label them.
// Titles are best effort; a failed listing lookup leaves them unknown.
func (v *Applications) Load(ctx context.Context) error {
	if err := v.gate.Require(sessions.AccountEmployer); err != nil {
		v.notify.Error(api.UserMessage(err, "Please log in as an employer."))
		return err
	}
	sess, err := v.sessions.Current()
	if err != nil {
		return errors.Wrapf(err, "read session")
	}

	n := v.seq.begin()
	apps, err := v.client.EmployerApplications(ctx, sess.UserID)
	if err != nil {
		v.notify.Error(api.UserMessage(err, "Failed to fetch applications"))
		return errors.Wrapf(err, "load applications")
	}
	titles := make(map[string]string)
	if jobs, err := v.client.ListEmployerJobs(ctx, sess.UserID); err == nil {
		for _, job := range jobs {
			titles[job.ID] = job.JobTitle
		}
	}
	v.lock.Lock()
	defer v.lock.Unlock()
	if !v.seq.commit(n) {
		return errors.ErrStaleResponse
	}
	v.apps = apps
	v.titles = titles
	return nil
}

func (v *Applications) Applications() []api.Application {
	v.lock.RLock()
	defer v.lock.RUnlock()
	return slices.Clone(v.apps)
}

func (v *Applications) Rows() []ApplicationRow {
	v.lock.RLock()
	defer v.lock.RUnlock()
	rows := make([]ApplicationRow, 0, len(v.apps))
	for _, app := range v.apps {
		title, ok := v.titles[app.JobID]
		if !ok {
			title = unknownTitle
		}
		rows = append(rows, ApplicationRow{
			Key:       app.ID,
			Applicant: app.FullName,
			Email:     app.Email,
			JobTitle:  title,
			Status:    app.Status,
		})
	}
	return rows
}

// SetStatus updates one application on the server and, only once that
// succeeds, in the local list.
func (v *Applications) SetStatus(ctx context.Context, id string, status api.ApplicationStatus) error {
	parsed, ok := api.ParseApplicationStatus(string(status))
	if !ok {
		v.notify.Error("Unknown application status.")
		return errors.Wrapf(errors.ErrValidation, "status %q", status)
	}
	status = parsed
	v.lock.RLock()
	known := slices.ContainsFunc(v.apps, func(a api.Application) bool { return a.ID == id })
	v.lock.RUnlock()
	if !known {
		v.notify.Error("Application not found.")
		return errors.Wrapf(errors.ErrNotFound, "application %s", id)
	}

	n := v.seq.begin()
	updated, err := v.client.UpdateApplicationStatus(ctx, id, status)
	if err != nil {
		v.notify.Error(api.UserMessage(err, "Failed to update application"))
		return errors.Wrapf(err, "update application %s", id)
	}
	v.notify.Success("Application status updated.")

	// An acknowledgement without a body still means the requested status holds.
	if updated != nil && updated.Status != "" {
		status = updated.Status
	}
	v.lock.Lock()
	if v.seq.commit(n) {
		if i := slices.IndexFunc(v.apps, func(a api.Application) bool { return a.ID == id }); i >= 0 {
			v.apps[i].Status = status
		}
		v.lock.Unlock()
		return nil
	}
	v.lock.Unlock()

	if err := v.Load(ctx); err != nil && !errors.Is(err, errors.ErrStaleResponse) {
		return err
	}
	return nil
}
