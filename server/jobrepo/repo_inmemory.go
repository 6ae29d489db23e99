package jobrepo

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-jobboard/api"
	"github.com/jrsteele09/go-jobboard/internal/errors"
)

// InMemoryJobRepo is an in-memory implementation of Repo
type InMemoryJobRepo struct {
	mu   sync.RWMutex
	jobs map[string]api.Job
}

func NewInMemoryJobRepo() *InMemoryJobRepo {
	return &InMemoryJobRepo{
		jobs: make(map[string]api.Job),
	}
}

// Insert assigns an id and creation time when missing
func (r *InMemoryJobRepo) Insert(job api.Job) (api.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}
	job.Requirements = append([]string(nil), job.Requirements...)
	r.jobs[job.ID] = job
	return job, nil
}

// Update replaces a job, keeping its creation time and employer
func (r *InMemoryJobRepo) Update(job api.Job) (api.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.jobs[job.ID]
	if !ok {
		return api.Job{}, errors.ErrNotFound
	}
	job.CreatedAt = existing.CreatedAt
	job.Employer = existing.Employer
	job.Requirements = append([]string(nil), job.Requirements...)
	r.jobs[job.ID] = job
	return job, nil
}

func (r *InMemoryJobRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[id]; !ok {
		return errors.ErrNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *InMemoryJobRepo) Get(id string) (api.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok {
		return api.Job{}, errors.ErrNotFound
	}
	return job, nil
}

// List returns matching jobs, newest first
func (r *InMemoryJobRepo) List(filter Filter) ([]api.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	jobs := make([]api.Job, 0)
	for _, job := range r.jobs {
		if filter.ID != "" && job.ID != filter.ID {
			continue
		}
		if filter.EmployerID != "" && job.Employer.ID != filter.EmployerID {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(job.Category, filter.Category) {
			continue
		}
		if search != "" && !matchesSearch(job, search) {
			continue
		}
		jobs = append(jobs, job)
	}

	sort.Slice(jobs, func(i, j int) bool {
		if jobs[i].CreatedAt.Equal(jobs[j].CreatedAt) {
			return jobs[i].ID < jobs[j].ID
		}
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
	return jobs, nil
}

func matchesSearch(job api.Job, search string) bool {
	for _, field := range []string{job.JobTitle, job.JobDescription, job.Company.Name} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}
