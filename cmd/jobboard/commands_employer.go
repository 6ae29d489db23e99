package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/jrsteele09/go-jobboard/api"
	"github.com/jrsteele09/go-jobboard/views"
	"github.com/pterm/pterm"
)

func listingsCmd(ctx context.Context, a *app, args []string) error {
	listings := views.NewListings(a.client, a.gate, a.sessions, a.notify)
	if err := listings.Load(ctx); err != nil {
		return err
	}
	pterm.DefaultSection.Println("My listings")
	return renderJobRows(listings.Rows())
}

// jobFormFlags binds one flag per form field, defaulting to the values in form
func jobFormFlags(fs *flag.FlagSet, form *views.JobForm) {
	fs.StringVar(&form.Title, "title", form.Title, "Job title")
	fs.StringVar(&form.Type, "type", form.Type, "Job type, e.g. Full-time")
	fs.StringVar(&form.Category, "category", form.Category, "Category")
	fs.StringVar(&form.Description, "description", form.Description, "Description")
	fs.StringVar(&form.Requirements, "requirements", form.Requirements, "Comma separated requirements")
	fs.StringVar(&form.SalaryMin, "salary-min", form.SalaryMin, "Minimum salary")
	fs.StringVar(&form.SalaryMax, "salary-max", form.SalaryMax, "Maximum salary")
	fs.StringVar(&form.CompanyName, "company", form.CompanyName, "Company name")
	fs.StringVar(&form.CompanyAddress, "address", form.CompanyAddress, "Company address")
	fs.StringVar(&form.CompanyAbout, "about", form.CompanyAbout, "About the company")
}

func createJobCmd(ctx context.Context, a *app, args []string) error {
	var form views.JobForm
	fs := newFlagSet("create-job")
	jobFormFlags(fs, &form)
	if err := fs.Parse(args); err != nil {
		return err
	}
	job, err := views.NewListings(a.client, a.gate, a.sessions, a.notify).Create(ctx, form)
	if err != nil {
		return err
	}
	if job != nil {
		pterm.Info.Printfln("Created job %s", job.ID)
	}
	return nil
}

func updateJobCmd(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("update-job: missing job id")
	}
	id := args[0]
	listings := views.NewListings(a.client, a.gate, a.sessions, a.notify)
	form, err := listings.Edit(ctx, id)
	if err != nil {
		return err
	}
	fs := newFlagSet("update-job")
	jobFormFlags(fs, &form)
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	_, err = listings.Update(ctx, id, form)
	return err
}

func deleteJobCmd(ctx context.Context, a *app, args []string) error {
	id, err := positional(newFlagSet("delete-job"), args, "job id")
	if err != nil {
		return err
	}
	return views.NewListings(a.client, a.gate, a.sessions, a.notify).Delete(ctx, id)
}

func applicationsCmd(ctx context.Context, a *app, args []string) error {
	apps := views.NewApplications(a.client, a.gate, a.sessions, a.notify)
	if err := apps.Load(ctx); err != nil {
		return err
	}
	data := pterm.TableData{{"ID", "Applicant", "Email", "Job", "Status"}}
	for _, r := range apps.Rows() {
		data = append(data, []string{r.Key, r.Applicant, r.Email, r.JobTitle, colourStatus(r.Status)})
	}
	return renderTable(data, "No applications found.")
}

func setStatusCmd(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("set-status")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("set-status: expected application id and status")
	}
	status, ok := api.ParseApplicationStatus(fs.Arg(1))
	if !ok {
		a.notify.Error("Status must be pending, approved or rejected.")
		return fmt.Errorf("set-status: unknown status %q", fs.Arg(1))
	}

	apps := views.NewApplications(a.client, a.gate, a.sessions, a.notify)
	if err := apps.Load(ctx); err != nil {
		return err
	}
	return apps.SetStatus(ctx, fs.Arg(0), status)
}

func analysisCmd(ctx context.Context, a *app, args []string) error {
	analysis := views.NewAnalysis(a.client, a.gate, a.sessions, a.notify)
	if err := analysis.Load(ctx); err != nil {
		return err
	}
	stats := analysis.Stats()
	pterm.DefaultSection.Println("Overview")
	return renderTable(pterm.TableData{
		{"Listings", "Applications", "Pending", "Approved", "Rejected"},
		{
			strconv.Itoa(stats.Listings),
			strconv.Itoa(stats.Applications),
			pterm.Yellow(stats.Pending),
			pterm.Green(stats.Approved),
			pterm.Red(stats.Rejected),
		},
	}, "")
}
