package applicationrepo

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-jobboard/api"
	jberrors "github.com/jrsteele09/go-jobboard/internal/errors"
)

var ErrDuplicate = errors.New("already applied to this job")

// InMemoryApplicationRepo is an in-memory implementation of Repo. Lists
// keep insertion order.
type InMemoryApplicationRepo struct {
	mu    sync.RWMutex
	apps  map[string]api.Application
	order []string
}

func NewInMemoryApplicationRepo() *InMemoryApplicationRepo {
	return &InMemoryApplicationRepo{
		apps: make(map[string]api.Application),
	}
}

func (r *InMemoryApplicationRepo) Insert(app api.Application) (api.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.apps {
		if existing.UserID == app.UserID && existing.JobID == app.JobID {
			return api.Application{}, ErrDuplicate
		}
	}
	if app.ID == "" {
		app.ID = uuid.New().String()
	}
	if app.Status == "" {
		app.Status = api.StatusPending
	}
	r.apps[app.ID] = app
	r.order = append(r.order, app.ID)
	return app, nil
}

func (r *InMemoryApplicationRepo) Get(id string) (api.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	app, ok := r.apps[id]
	if !ok {
		return api.Application{}, jberrors.ErrNotFound
	}
	return app, nil
}

func (r *InMemoryApplicationRepo) SetStatus(id string, status api.ApplicationStatus) (api.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	app, ok := r.apps[id]
	if !ok {
		return api.Application{}, jberrors.ErrNotFound
	}
	app.Status = status
	r.apps[id] = app
	return app, nil
}

func (r *InMemoryApplicationRepo) ListByUser(userID string) ([]api.Application, error) {
	return r.list(func(app api.Application) bool { return app.UserID == userID }), nil
}

func (r *InMemoryApplicationRepo) ListByEmployer(employerID string) ([]api.Application, error) {
	return r.list(func(app api.Application) bool { return app.EmployerID == employerID }), nil
}

func (r *InMemoryApplicationRepo) list(match func(api.Application) bool) []api.Application {
	r.mu.RLock()
	defer r.mu.RUnlock()

	apps := make([]api.Application, 0)
	for _, id := range r.order {
		if app := r.apps[id]; match(app) {
			apps = append(apps, app)
		}
	}
	return apps
}
