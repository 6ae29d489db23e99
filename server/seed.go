package server

import (
	"github.com/jrsteele09/go-jobboard/api"
	"github.com/jrsteele09/go-jobboard/sessions"
	"github.com/jrsteele09/go-jobboard/users"
	"github.com/shopspring/decimal"
)

// Demo accounts created by SeedDemoData
const (
	DemoEmployerEmail  = "employer@example.com"
	DemoJobSeekerEmail = "seeker@example.com"
	DemoPassword       = "Password123"
)

// SeedDemoData fills empty repos with two accounts and a few listings so the
// client has something to show against a fresh mock backend.
func SeedDemoData(repos Repos) error {
	hash, err := users.HashPassword(DemoPassword)
	if err != nil {
		return err
	}

	employer := &users.User{
		Email:        DemoEmployerEmail,
		FullName:     "Demo Employer",
		PasswordHash: hash,
		AccountType:  sessions.AccountEmployer,
		CompanyName:  "Acme Corp",
	}
	if err := repos.Users.Insert(employer); err != nil {
		return err
	}
	seeker := &users.User{
		Email:        DemoJobSeekerEmail,
		FullName:     "Demo Seeker",
		PasswordHash: hash,
		AccountType:  sessions.AccountJobSeeker,
	}
	if err := repos.Users.Insert(seeker); err != nil {
		return err
	}

	company := api.Company{Name: "Acme Corp", Address: "Remote", About: "We build things."}
	for _, job := range []api.Job{
		{
			JobTitle:       "Frontend Developer",
			JobType:        "Full-time",
			Category:       "development",
			JobDescription: "Build and maintain the job board web client.",
			Requirements:   []string{"React", "CSS", "REST APIs"},
			SalaryRange:    api.SalaryRange{Min: decimal.NewFromInt(60000), Max: decimal.NewFromInt(90000)},
		},
		{
			JobTitle:       "Backend Developer",
			JobType:        "Full-time",
			Category:       "development",
			JobDescription: "Own the listings and applications API.",
			Requirements:   []string{"Go", "SQL"},
			SalaryRange:    api.SalaryRange{Min: decimal.NewFromInt(70000), Max: decimal.NewFromInt(110000)},
		},
		{
			JobTitle:       "Product Designer",
			JobType:        "Contract",
			Category:       "design",
			JobDescription: "Design flows for job seekers and employers.",
			Requirements:   []string{"Figma"},
			SalaryRange:    api.SalaryRange{Min: decimal.NewFromInt(50000), Max: decimal.NewFromInt(75000)},
		},
	} {
		job.Company = company
		job.Employer = api.EmployerRef{ID: employer.ID}
		if _, err := repos.Jobs.Insert(job); err != nil {
			return err
		}
	}
	return nil
}
