package views

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/jrsteele09/go-jobboard/api"
	"github.com/jrsteele09/go-jobboard/gate"
	"github.com/jrsteele09/go-jobboard/internal/errors"
	"github.com/jrsteele09/go-jobboard/internal/utils"
	"github.com/jrsteele09/go-jobboard/sessions"
	"github.com/shopspring/decimal"
)

// JobForm holds the raw text of the create/edit listing form.
type JobForm struct {
	Title          string
	Type           string
	Category       string
	Description    string
	Requirements   string // comma separated
	SalaryMin      string
	SalaryMax      string
	CompanyName    string
	CompanyAddress string
	CompanyAbout   string
}

// FormFromJob prefills a form for editing job.
func FormFromJob(job api.Job) JobForm {
	return JobForm{
		Title:          job.JobTitle,
		Type:           job.JobType,
		Category:       job.Category,
		Description:    job.JobDescription,
		Requirements:   strings.Join(job.Requirements, ","),
		SalaryMin:      job.SalaryRange.Min.String(),
		SalaryMax:      job.SalaryRange.Max.String(),
		CompanyName:    job.Company.Name,
		CompanyAddress: job.Company.Address,
		CompanyAbout:   job.Company.About,
	}
}

// Input converts the form into a request body owned by employerID.
func (f JobForm) Input(employerID string) (api.JobInput, error) {
	if strings.TrimSpace(f.Title) == "" {
		return api.JobInput{}, fmt.Errorf("%w: job title is required", errors.ErrValidation)
	}
	minSalary, err := parseSalary(f.SalaryMin)
	if err != nil {
		return api.JobInput{}, err
	}
	maxSalary, err := parseSalary(f.SalaryMax)
	if err != nil {
		return api.JobInput{}, err
	}
	return api.JobInput{
		JobTitle:       strings.TrimSpace(f.Title),
		JobType:        strings.TrimSpace(f.Type),
		Category:       strings.TrimSpace(f.Category),
		JobDescription: f.Description,
		SalaryRange:    api.SalaryRange{Min: minSalary, Max: maxSalary},
		Requirements:   utils.SplitCSV(f.Requirements),
		Company: api.Company{
			Name:    f.CompanyName,
			Address: f.CompanyAddress,
			About:   f.CompanyAbout,
		},
		EmployerID: employerID,
	}, nil
}

func parseSalary(value string) (decimal.Decimal, error) {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: salary %q is not a number", errors.ErrValidation, value)
	}
	return d, nil
}

// Listings is the employer's own job listings with create, edit and delete.
// Failed operations leave the list exactly as it was.
type Listings struct {
	client   ListingsAPI
	gate     *gate.Gate
	sessions gate.SessionReader
	notify   Notifier
	seq      sequence

	lock sync.RWMutex
	jobs []api.Job
}

func NewListings(client ListingsAPI, g *gate.Gate, sess gate.SessionReader, notify Notifier) *Listings {
	return &Listings{client: client, gate: g, sessions: sess, notify: notify, jobs: make([]api.Job, 0)}
}

func (v *Listings) employerID() (string, error) {
	if err := v.gate.Require(sessions.AccountEmployer); err != nil {
		v.notify.Error(api.UserMessage(err, "Please log in as an employer."))
		return "", err
	}
	sess, err := v.sessions.Current()
	if err != nil {
		return "", errors.Wrapf(err, "read session")
	}
	return sess.UserID, nil
}

func (v *Listings) Load(ctx context.Context) error {
	employerID, err := v.employerID()
	if err != nil {
		return err
	}
	n := v.seq.begin()
	jobs, err := v.client.ListEmployerJobs(ctx, employerID)
	if err != nil {
		v.notify.Error(api.UserMessage(err, "Failed to load listings"))
		return errors.Wrapf(err, "load listings")
	}
	v.lock.Lock()
	defer v.lock.Unlock()
	if !v.seq.commit(n) {
		return errors.ErrStaleResponse
	}
	v.jobs = jobs
	return nil
}

func (v *Listings) Jobs() []api.Job {
	v.lock.RLock()
	defer v.lock.RUnlock()
	return slices.Clone(v.jobs)
}

func (v *Listings) Rows() []JobRow {
	return jobRows(v.Jobs())
}

// Edit fetches a job and returns the form prefilled with its values.
func (v *Listings) Edit(ctx context.Context, id string) (JobForm, error) {
	job, err := v.client.GetJob(ctx, id)
	if err != nil {
		v.notify.Error(api.UserMessage(err, "Job not found"))
		return JobForm{}, errors.Wrapf(err, "edit job %s", id)
	}
	return FormFromJob(*job), nil
}

// Create posts a new listing and adds it to the top of the list.
func (v *Listings) Create(ctx context.Context, form JobForm) (*api.Job, error) {
	resp, n, err := v.mutate(form, func(input api.JobInput) (*api.JobMutation, error) {
		return v.client.CreateJob(ctx, input)
	})
	if err != nil {
		return nil, err
	}
	v.notify.Success("Job added successfully!")
	applied := resp.Job != nil && v.apply(n, func() {
		v.jobs = append([]api.Job{*resp.Job}, v.jobs...)
	})
	if !applied {
		return resp.Job, v.reload(ctx)
	}
	return resp.Job, nil
}

// Update replaces listing id with the form's values.
func (v *Listings) Update(ctx context.Context, id string, form JobForm) (*api.Job, error) {
	resp, n, err := v.mutate(form, func(input api.JobInput) (*api.JobMutation, error) {
		return v.client.UpdateJob(ctx, id, input)
	})
	if err != nil {
		return nil, err
	}
	v.notify.Success("Job updated successfully!")
	applied := resp.Job != nil && v.apply(n, func() {
		if i := slices.IndexFunc(v.jobs, func(j api.Job) bool { return j.ID == id }); i >= 0 {
			v.jobs[i] = *resp.Job
		}
	})
	if !applied {
		return resp.Job, v.reload(ctx)
	}
	return resp.Job, nil
}

func (v *Listings) Delete(ctx context.Context, id string) error {
	if _, err := v.employerID(); err != nil {
		return err
	}
	n := v.seq.begin()
	if err := v.client.DeleteJob(ctx, id); err != nil {
		v.notify.Error(api.UserMessage(err, "Failed to delete job"))
		return errors.Wrapf(err, "delete job %s", id)
	}
	v.notify.Success("Deleted successfully")
	if !v.apply(n, func() {
		v.jobs = slices.DeleteFunc(v.jobs, func(j api.Job) bool { return j.ID == id })
	}) {
		return v.reload(ctx)
	}
	return nil
}

// apply runs change against the list if the request numbered n is still the
// newest to finish. Otherwise a newer load already holds the server's state.
func (v *Listings) apply(n uint64, change func()) bool {
	v.lock.Lock()
	defer v.lock.Unlock()
	if !v.seq.commit(n) {
		return false
	}
	change()
	return true
}

// reload refetches the list after a mutation whose local edit was superseded.
func (v *Listings) reload(ctx context.Context) error {
	err := v.Load(ctx)
	if errors.Is(err, errors.ErrStaleResponse) {
		return nil
	}
	return err
}

// mutate runs a create or update and returns the sequence number it took, so
// a load still in flight when it began cannot overwrite the result.
func (v *Listings) mutate(form JobForm, call func(api.JobInput) (*api.JobMutation, error)) (*api.JobMutation, uint64, error) {
	employerID, err := v.employerID()
	if err != nil {
		return nil, 0, err
	}
	input, err := form.Input(employerID)
	if err != nil {
		v.notify.Error(api.UserMessage(err, "Operation failed"))
		return nil, 0, err
	}
	n := v.seq.begin()
	resp, err := call(input)
	if err != nil {
		v.notify.Error(api.UserMessage(err, "Operation failed"))
		return nil, 0, errors.Wrapf(err, "save job")
	}
	if resp == nil {
		resp = &api.JobMutation{}
	}
	return resp, n, nil
}
