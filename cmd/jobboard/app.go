package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jrsteele09/go-jobboard/api"
	"github.com/jrsteele09/go-jobboard/gate"
	"github.com/jrsteele09/go-jobboard/internal/config"
	"github.com/jrsteele09/go-jobboard/sessions"
	"github.com/jrsteele09/go-jobboard/sessions/filestore"
	"github.com/jrsteele09/go-jobboard/views"
	"github.com/pterm/pterm"
)

// app wires the session store, gate and API client shared by every command.
type app struct {
	config   config.Config
	store    *filestore.FileStore
	sessions *sessions.Service
	client   *api.Client
	gate     *gate.Gate
	notify   views.Notifier
}

func newApp(c config.Config) *app {
	store := filestore.New(c.GetSessionFile())
	svc := sessions.NewService(store)
	return &app{
		config:   c,
		store:    store,
		sessions: svc,
		client:   api.New(c, svc),
		gate:     gate.New(svc),
		notify:   ptermNotifier{},
	}
}

type command struct {
	name    string
	args    string
	summary string
	run     func(ctx context.Context, a *app, args []string) error
}

func commands() []command {
	return []command{
		{"login", "-type employer|jobSeeker -email E [-password P]", "Log in and store the session", loginCmd},
		{"register", "-type T -name N -email E [-password P] [-company C]", "Create an account", registerCmd},
		{"logout", "", "Clear the stored session", logoutCmd},
		{"whoami", "", "Show the stored session", whoamiCmd},
		{"nav", "", "Show the navigation links for the current session", navCmd},
		{"open", "ROUTE", "Open a page by route, e.g. /employer/dashboard", openCmd},
		{"jobs", "[-search S] [-category C]", "List jobs", jobsCmd},
		{"job", "ID", "Show one job", jobCmd},
		{"apply", "ID", "Apply to a job (job seekers)", applyCmd},
		{"my-applications", "", "List your applications (job seekers)", myApplicationsCmd},
		{"listings", "", "List your job listings (employers)", listingsCmd},
		{"create-job", "-title T -type T -category C [...]", "Post a job (employers)", createJobCmd},
		{"update-job", "ID [-title T ...]", "Edit a job, unset flags keep their value (employers)", updateJobCmd},
		{"delete-job", "ID", "Delete a job (employers)", deleteJobCmd},
		{"applications", "", "List applications to your jobs (employers)", applicationsCmd},
		{"set-status", "ID pending|approved|rejected", "Set an application's status (employers)", setStatusCmd},
		{"analysis", "", "Summarise listings and applications (employers)", analysisCmd},
	}
}

func lookupCommand(name string) (command, bool) {
	for _, c := range commands() {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: jobboard <command> [flags]")
	data := pterm.TableData{{"Command", "Arguments", "Description"}}
	for _, c := range commands() {
		data = append(data, []string{c.name, c.args, c.summary})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return
	}
	fmt.Fprintln(os.Stderr, table)
}

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

// positional parses fs and returns its single required positional argument
func positional(fs *flag.FlagSet, args []string, what string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() < 1 || fs.Arg(0) == "" {
		return "", fmt.Errorf("%s: missing %s", fs.Name(), what)
	}
	return fs.Arg(0), nil
}
