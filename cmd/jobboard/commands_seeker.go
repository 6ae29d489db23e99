package main

import (
	"context"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/jrsteele09/go-jobboard/views"
	"github.com/pterm/pterm"
)

func myApplicationsCmd(ctx context.Context, a *app, args []string) error {
	mine := views.NewMyApplications(a.client, a.gate, a.sessions, a.notify)

	var (
		bar  *pb.ProgressBar
		once sync.Once
	)
	mine.OnProgress(func(done, total int) {
		once.Do(func() { bar = pb.StartNew(total) })
		bar.Increment()
	})
	_, err := mine.Load(ctx)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	pterm.DefaultSection.Println("My applied jobs")
	data := pterm.TableData{{"Job Title", "Company Name", "Status"}}
	for _, applied := range mine.Applied() {
		data = append(data, []string{applied.JobTitle, applied.CompanyName, colourStatus(applied.Application.Status)})
	}
	return renderTable(data, "No applications found.")
}
