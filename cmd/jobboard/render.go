package main

import (
	"github.com/jrsteele09/go-jobboard/api"
	"github.com/jrsteele09/go-jobboard/views"
	"github.com/pterm/pterm"
)

type ptermNotifier struct{}

func (ptermNotifier) Success(message string) {
	pterm.Success.Println(message)
}

func (ptermNotifier) Error(message string) {
	pterm.Error.Println(message)
}

func renderTable(data pterm.TableData, empty string) error {
	if len(data) <= 1 {
		pterm.Info.Println(empty)
		return nil
	}
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render()
}

func renderJobRows(rows []views.JobRow) error {
	data := pterm.TableData{{"ID", "Title", "Company", "Type", "Category", "Salary", "Posted"}}
	for _, r := range rows {
		data = append(data, []string{r.Key, r.Title, r.Company, r.Type, r.Category, r.Salary, r.Posted})
	}
	return renderTable(data, "No jobs found.")
}

func colourStatus(status api.ApplicationStatus) string {
	switch status {
	case api.StatusApproved:
		return pterm.Green(string(status))
	case api.StatusRejected:
		return pterm.Red(string(status))
	}
	return pterm.Yellow(string(status))
}
