package views

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jrsteele09/go-jobboard/api"
)

// JobRow is one rendered line of a job table, keyed by the job id.
type JobRow struct {
	Key      string
	Title    string
	Company  string
	Type     string
	Category string
	Salary   string
	Posted   string
}

func jobRows(jobs []api.Job) []JobRow {
	rows := make([]JobRow, 0, len(jobs))
	for _, job := range jobs {
		rows = append(rows, JobRow{
			Key:      job.ID,
			Title:    job.JobTitle,
			Company:  job.Company.Name,
			Type:     job.JobType,
			Category: job.Category,
			Salary:   FormatSalary(job.SalaryRange),
			Posted:   FormatPosted(job),
		})
	}
	return rows
}

// FormatSalary renders a range as "$50,000 - $80,000".
func FormatSalary(r api.SalaryRange) string {
	switch {
	case r.Min.IsZero() && r.Max.IsZero():
		return "Not disclosed"
	case r.Max.IsZero() || r.Min.Equal(r.Max):
		return fmt.Sprintf("$%s", humanize.Comma(r.Min.IntPart()))
	}
	return fmt.Sprintf("$%s - $%s", humanize.Comma(r.Min.IntPart()), humanize.Comma(r.Max.IntPart()))
}

// FormatPosted renders the job's age, e.g. "3 days ago".
func FormatPosted(job api.Job) string {
	if job.CreatedAt.IsZero() {
		return ""
	}
	return humanize.Time(job.CreatedAt)
}
