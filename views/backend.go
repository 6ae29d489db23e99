package views

import (
	"context"

	"github.com/jrsteele09/go-jobboard/api"
	"github.com/jrsteele09/go-jobboard/sessions"
)

// The interfaces below are the slices of *api.Client each view calls.

type JobsAPI interface {
	ListJobs(ctx context.Context, filter api.JobFilter) ([]api.Job, error)
	GetJob(ctx context.Context, id string) (*api.Job, error)
}

type ApplyAPI interface {
	GetJob(ctx context.Context, id string) (*api.Job, error)
	Apply(ctx context.Context, req api.ApplyRequest) (*api.Message, error)
}

type ListingsAPI interface {
	ListEmployerJobs(ctx context.Context, employerID string) ([]api.Job, error)
	GetJob(ctx context.Context, id string) (*api.Job, error)
	CreateJob(ctx context.Context, input api.JobInput) (*api.JobMutation, error)
	UpdateJob(ctx context.Context, id string, input api.JobInput) (*api.JobMutation, error)
	DeleteJob(ctx context.Context, id string) error
}

type ApplicationsAPI interface {
	ListEmployerJobs(ctx context.Context, employerID string) ([]api.Job, error)
	EmployerApplications(ctx context.Context, employerID string) ([]api.Application, error)
	UpdateApplicationStatus(ctx context.Context, applicationID string, status api.ApplicationStatus) (*api.Application, error)
}

type MyApplicationsAPI interface {
	AppliedJobs(ctx context.Context, userID string) ([]api.Application, error)
	ListJobs(ctx context.Context, filter api.JobFilter) ([]api.Job, error)
	GetEmployer(ctx context.Context, employerID string) (*api.Employer, error)
}

type AuthAPI interface {
	Login(ctx context.Context, accountType sessions.AccountType, creds api.Credentials) (*api.LoginResponse, error)
	Register(ctx context.Context, reg api.Registration) (*api.Message, error)
}

var (
	_ JobsAPI           = (*api.Client)(nil)
	_ ApplyAPI          = (*api.Client)(nil)
	_ ListingsAPI       = (*api.Client)(nil)
	_ ApplicationsAPI   = (*api.Client)(nil)
	_ MyApplicationsAPI = (*api.Client)(nil)
	_ AuthAPI           = (*api.Client)(nil)
)
