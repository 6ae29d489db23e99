package api

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type SalaryRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// MarshalJSON writes both bounds as JSON numbers, which is what the API
// expects. Decoding accepts numbers or quoted strings.
func (r SalaryRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Min json.Number `json:"min"`
		Max json.Number `json:"max"`
	}{
		Min: json.Number(r.Min.String()),
		Max: json.Number(r.Max.String()),
	})
}

type Company struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	About   string `json:"about"`
}

// EmployerRef is the job's employer. The API sends either the bare id or the
// populated employer document.
type EmployerRef struct {
	ID          string `json:"_id"`
	FullName    string `json:"fullName,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
}

func (e *EmployerRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*e = EmployerRef{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*e = EmployerRef{ID: id}
		return nil
	}
	type plain EmployerRef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = EmployerRef(p)
	return nil
}

// MarshalJSON always sends the bare id.
func (e EmployerRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.ID)
}

type Job struct {
	ID             string      `json:"_id"`
	JobTitle       string      `json:"jobTitle"`
	JobType        string      `json:"jobType"`
	Category       string      `json:"category"`
	JobDescription string      `json:"jobDescription"`
	Requirements   []string    `json:"requirements"`
	SalaryRange    SalaryRange `json:"salaryRange"`
	Company        Company     `json:"company"`
	Employer       EmployerRef `json:"employer"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// JobInput is the body of a create or update request.
type JobInput struct {
	JobTitle       string      `json:"jobTitle"`
	JobType        string      `json:"jobType"`
	Category       string      `json:"category"`
	JobDescription string      `json:"jobDescription"`
	SalaryRange    SalaryRange `json:"salaryRange"`
	Requirements   []string    `json:"requirements"`
	Company        Company     `json:"company"`
	EmployerID     string      `json:"employerId"`
}

// CategoryAll disables category filtering.
const CategoryAll = "All"

// JobFilter narrows a job listing. Empty fields are not sent.
type JobFilter struct {
	Search   string
	Category string
	ID       string
}

// JobMutation is the response to a create or update.
type JobMutation struct {
	Message string `json:"message"`
	Job     *Job   `json:"job"`
}
