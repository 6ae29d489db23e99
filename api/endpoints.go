package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jrsteele09/go-jobboard/sessions"
)

// REST paths of the job board API
const (
	PathJobs                 = "/api/jobs"
	PathJobsCreate           = "/api/jobs/create"
	PathJobsByEmployer       = "/api/jobs/employer/"
	PathJobSeekerLogin       = "/api/jobseeker/login"
	PathJobSeekerRegister    = "/api/jobseeker/register"
	PathJobSeekerApply       = "/api/jobseeker/apply"
	PathJobSeekerAppliedJobs = "/api/jobseeker/appliedjobs"
	PathEmployerLogin        = "/api/employer/login"
	PathEmployerRegister     = "/api/employer/register"
	PathEmployerApplications = "/api/employer/getjobseakerappliedjob"
	PathEmployerGet          = "/api/employer/getEmployer"
	PathEmployerApplication  = "/api/employer/applications/"
)

func jobPath(id string) string {
	return PathJobs + "/" + url.PathEscape(id)
}

// ListJobs returns the listings matching filter.
func (c *Client) ListJobs(ctx context.Context, filter JobFilter) ([]Job, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Category != "" && filter.Category != CategoryAll {
		query.Set("category", filter.Category)
	}
	if filter.ID != "" {
		query.Set("_id", filter.ID)
	}
	jobs := make([]Job, 0)
	err := c.do(ctx, request{method: http.MethodGet, path: PathJobs, query: query, fallback: "Failed to load jobs"}, &jobs)
	return jobs, err
}

// GetJob returns a single listing.
func (c *Client) GetJob(ctx context.Context, id string) (*Job, error) {
	var job Job
	if err := c.do(ctx, request{method: http.MethodGet, path: jobPath(id), fallback: "Job not found"}, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// ListEmployerJobs returns the listings owned by employerID.
func (c *Client) ListEmployerJobs(ctx context.Context, employerID string) ([]Job, error) {
	jobs := make([]Job, 0)
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     PathJobsByEmployer + url.PathEscape(employerID),
		auth:     true,
		fallback: "Failed to load listings",
	}, &jobs)
	return jobs, err
}

func (c *Client) CreateJob(ctx context.Context, input JobInput) (*JobMutation, error) {
	var resp JobMutation
	if err := c.do(ctx, request{method: http.MethodPost, path: PathJobsCreate, body: input, auth: true, fallback: "Operation failed"}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateJob(ctx context.Context, id string, input JobInput) (*JobMutation, error) {
	var resp JobMutation
	if err := c.do(ctx, request{method: http.MethodPut, path: jobPath(id), body: input, auth: true, fallback: "Operation failed"}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteJob(ctx context.Context, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: jobPath(id), auth: true, fallback: "Failed to delete job"}, nil)
}

// Login authenticates against the endpoint for accountType.
func (c *Client) Login(ctx context.Context, accountType sessions.AccountType, creds Credentials) (*LoginResponse, error) {
	path := PathJobSeekerLogin
	if accountType == sessions.AccountEmployer {
		path = PathEmployerLogin
	}
	var resp LoginResponse
	if err := c.do(ctx, request{method: http.MethodPost, path: path, body: creds, fallback: "Login failed"}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account. CompanyName is only sent for employers.
func (c *Client) Register(ctx context.Context, reg Registration) (*Message, error) {
	path := PathJobSeekerRegister
	if reg.AccountType == sessions.AccountEmployer {
		path = PathEmployerRegister
	} else {
		reg.CompanyName = ""
	}
	var resp Message
	if err := c.do(ctx, request{method: http.MethodPost, path: path, body: reg, fallback: "Registration failed"}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Apply(ctx context.Context, req ApplyRequest) (*Message, error) {
	var resp Message
	if err := c.do(ctx, request{method: http.MethodPost, path: PathJobSeekerApply, body: req, auth: true, fallback: "Something went wrong while applying."}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AppliedJobs returns the applications submitted by userID.
func (c *Client) AppliedJobs(ctx context.Context, userID string) ([]Application, error) {
	apps := make([]Application, 0)
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     PathJobSeekerAppliedJobs,
		body:     map[string]string{"userId": userID},
		auth:     true,
		fallback: "Failed to fetch applied jobs",
	}, &apps)
	return apps, err
}

// EmployerApplications returns the applications made to employerID's listings.
func (c *Client) EmployerApplications(ctx context.Context, employerID string) ([]Application, error) {
	apps := make([]Application, 0)
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     PathEmployerApplications,
		body:     map[string]string{"employerId": employerID},
		auth:     true,
		fallback: "Failed to fetch applications",
	}, &apps)
	return apps, err
}

func (c *Client) GetEmployer(ctx context.Context, employerID string) (*Employer, error) {
	var emp Employer
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     PathEmployerGet,
		body:     map[string]string{"employerId": employerID},
		fallback: "Failed to fetch employer details",
	}, &emp)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// UpdateApplicationStatus sets the status of one application.
func (c *Client) UpdateApplicationStatus(ctx context.Context, applicationID string, status ApplicationStatus) (*Application, error) {
	var app Application
	err := c.do(ctx, request{
		method:   http.MethodPut,
		path:     PathEmployerApplication + url.PathEscape(applicationID),
		body:     map[string]ApplicationStatus{"status": status},
		auth:     true,
		fallback: "Failed to update application",
	}, &app)
	if err != nil {
		return nil, err
	}
	return &app, nil
}
