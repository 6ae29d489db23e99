package main

import (
	"context"
	"strings"

	"github.com/jrsteele09/go-jobboard/gate"
	"github.com/jrsteele09/go-jobboard/views"
	"github.com/pterm/pterm"
)

func jobsCmd(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("jobs")
	search := fs.String("search", "", "Search title, description and company")
	category := fs.String("category", "All", "Category filter, All for every category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list := views.NewJobList(a.client, a.notify)
	list.SetSearch(*search)
	list.SetCategory(*category)
	if err := list.Load(ctx); err != nil {
		return err
	}
	return renderJobRows(list.Rows())
}

func jobCmd(ctx context.Context, a *app, args []string) error {
	id, err := positional(newFlagSet("job"), args, "job id")
	if err != nil {
		return err
	}
	details := views.NewJobDetails(a.client, a.gate, a.sessions, a.notify)
	if err := details.Load(ctx, id); err != nil {
		return err
	}
	job := details.Job()

	pterm.DefaultSection.Println(job.JobTitle)
	data := pterm.TableData{
		{"Field", "Value"},
		{"Company", job.Company.Name},
		{"Location", job.Company.Address},
		{"Type", job.JobType},
		{"Category", job.Category},
		{"Salary", views.FormatSalary(job.SalaryRange)},
		{"Posted", views.FormatPosted(*job)},
		{"Requirements", strings.Join(job.Requirements, ", ")},
	}
	if err := renderTable(data, ""); err != nil {
		return err
	}
	if job.JobDescription != "" {
		pterm.Println(job.JobDescription)
	}
	if job.Company.About != "" {
		pterm.DefaultSection.WithLevel(2).Println("About " + job.Company.Name)
		pterm.Println(job.Company.About)
	}
	if a.gate.CanApply() {
		pterm.Info.Printfln("Apply with: jobboard apply %s", job.ID)
	}
	return nil
}

func applyCmd(ctx context.Context, a *app, args []string) error {
	id, err := positional(newFlagSet("apply"), args, "job id")
	if err != nil {
		return err
	}
	details := views.NewJobDetails(a.client, a.gate, a.sessions, a.notify)
	if err := details.Load(ctx, id); err != nil {
		return err
	}
	decision, err := details.Apply(ctx)
	if decision.Outcome == gate.Redirect {
		pterm.Info.Printfln("Redirecting to %s: jobboard login", decision.Redirect)
	}
	return err
}

// openCmd resolves a route the way the web client's router does
func openCmd(ctx context.Context, a *app, args []string) error {
	route, err := positional(newFlagSet("open"), args, "route")
	if err != nil {
		return err
	}

	if len(route) > 1 {
		route = strings.TrimSuffix(route, "/")
	}
	decision := a.gate.Check(route)
	switch decision.Outcome {
	case gate.NotFound:
		a.notify.Error("Page not found: " + route)
		return nil
	case gate.Redirect:
		pterm.Warning.Printfln("%s requires a different login, redirecting to %s", route, decision.Redirect)
		return nil
	}

	switch {
	case route == gate.RouteEmployerDashboard:
		if err := analysisCmd(ctx, a, nil); err != nil {
			return err
		}
		return listingsCmd(ctx, a, nil)
	case route == gate.RouteJobSeekerDashboard:
		return myApplicationsCmd(ctx, a, nil)
	case route == gate.RouteLogin:
		pterm.Info.Println("Log in with: jobboard login -type employer|jobSeeker -email you@example.com")
		return nil
	case route == gate.RouteRegister:
		pterm.Info.Println("Register with: jobboard register -type employer|jobSeeker -name \"Your Name\" -email you@example.com")
		return nil
	case strings.HasPrefix(route, gate.RouteJobs+"/"):
		return jobCmd(ctx, a, []string{strings.TrimPrefix(route, gate.RouteJobs+"/")})
	}
	return jobsCmd(ctx, a, nil)
}
