package views

import (
	"context"
	"sync"

	"github.com/jrsteele09/go-jobboard/api"
	"github.com/jrsteele09/go-jobboard/gate"
	"github.com/jrsteele09/go-jobboard/internal/errors"
	"github.com/jrsteele09/go-jobboard/sessions"
)

// Stats summarises an employer's listings and the applications they drew.
type Stats struct {
	Listings     int
	Applications int
	Pending      int
	Approved     int
	Rejected     int
}

// Summarise counts applications by status.
func Summarise(jobs []api.Job, apps []api.Application) Stats {
	stats := Stats{Listings: len(jobs), Applications: len(apps)}
	for _, app := range apps {
		switch app.Status {
		case api.StatusApproved:
			stats.Approved++
		case api.StatusRejected:
			stats.Rejected++
		default:
			stats.Pending++
		}
	}
	return stats
}

// Analysis is the employer dashboard overview.
type Analysis struct {
	client   ApplicationsAPI
	gate     *gate.Gate
	sessions gate.SessionReader
	notify   Notifier

	lock  sync.RWMutex
	stats Stats
}

func NewAnalysis(client ApplicationsAPI, g *gate.Gate, sess gate.SessionReader, notify Notifier) *Analysis {
	return &Analysis{client: client, gate: g, sessions: sess, notify: notify}
}

func (v *Analysis) Load(ctx context.Context) error {
	if err := v.gate.Require(sessions.AccountEmployer); err != nil {
		v.notify.Error(api.UserMessage(err, "Please log in as an employer."))
		return err
	}
	sess, err := v.sessions.Current()
	if err != nil {
		return errors.Wrapf(err, "read session")
	}
	jobs, err := v.client.ListEmployerJobs(ctx, sess.UserID)
	if err != nil {
		v.notify.Error(api.UserMessage(err, "Failed to load listings"))
		return errors.Wrapf(err, "load listings")
	}
	apps, err := v.client.EmployerApplications(ctx, sess.UserID)
	if err != nil {
		v.notify.Error(api.UserMessage(err, "Failed to fetch applications"))
		return errors.Wrapf(err, "load applications")
	}

	v.lock.Lock()
	defer v.lock.Unlock()
	v.stats = Summarise(jobs, apps)
	return nil
}

func (v *Analysis) Stats() Stats {
	v.lock.RLock()
	defer v.lock.RUnlock()
	return v.stats
}
