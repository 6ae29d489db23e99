package api

import (
	"encoding/json"
	"strings"
)

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

// ParseApplicationStatus is case-insensitive and reads "accepted" as approved.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, true
	case "approved", "accepted":
		return StatusApproved, true
	case "rejected":
		return StatusRejected, true
	}
	return "", false
}

func (s *ApplicationStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if parsed, ok := ParseApplicationStatus(raw); ok {
		*s = parsed
		return nil
	}
	*s = ApplicationStatus(raw)
	return nil
}

type Application struct {
	ID         string            `json:"_id"`
	JobID      string            `json:"jobId"`
	EmployerID string            `json:"employerId"`
	UserID     string            `json:"userId"`
	Status     ApplicationStatus `json:"status"`
	FullName   string            `json:"fullName,omitempty"`
	Email      string            `json:"email,omitempty"`
}

type ApplyRequest struct {
	JobID      string `json:"jobId"`
	UserID     string `json:"userId"`
	EmployerID string `json:"employerId"`
}

type Employer struct {
	ID          string `json:"_id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	CompanyName string `json:"companyName"`
}

// Message is the generic acknowledgement body.
type Message struct {
	Message string `json:"message"`
}
