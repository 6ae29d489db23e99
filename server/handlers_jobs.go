package server

import (
	"net/http"
	"strings"

	"github.com/jrsteele09/go-jobboard/api"
	"github.com/jrsteele09/go-jobboard/internal/errors"
	"github.com/jrsteele09/go-jobboard/server/jobrepo"
	"github.com/rs/zerolog/log"
)

// ListJobsHandler serves GET /api/jobs with optional search, category and _id
func (s *Server) ListJobsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		category := q.Get("category")
		if strings.EqualFold(category, api.CategoryAll) {
			category = ""
		}
		jobs, err := s.repos.Jobs.List(jobrepo.Filter{
			Search:   q.Get("search"),
			Category: category,
			ID:       q.Get("_id"),
		})
		if err != nil {
			log.Err(err).Msg("Failed to list jobs")
			writeJSONError(w, "Error fetching jobs", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, jobs)
	}
}

func (s *Server) GetJobHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, err := s.repos.Jobs.Get(r.PathValue("id"))
		if err != nil {
			writeJSONError(w, "Job not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, job)
	}
}

// EmployerJobsHandler serves the listings of one employer
func (s *Server) EmployerJobsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobs, err := s.repos.Jobs.List(jobrepo.Filter{EmployerID: r.PathValue("id")})
		if err != nil {
			log.Err(err).Msg("Failed to list employer jobs")
			writeJSONError(w, "Error fetching jobs", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, jobs)
	}
}

func (s *Server) CreateJobHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employerID := userIDFromContext(r.Context())
		var input api.JobInput
		if err := decodeJSON(r, &input); err != nil {
			writeJSONError(w, "Invalid job payload", http.StatusBadRequest)
			return
		}
		if input.EmployerID != "" && input.EmployerID != employerID {
			writeJSONError(w, "Cannot create jobs for another employer", http.StatusForbidden)
			return
		}
		if msg := validateJobInput(input); msg != "" {
			writeJSONError(w, msg, http.StatusBadRequest)
			return
		}

		job := jobFromInput(input)
		job.Employer = api.EmployerRef{ID: employerID}
		job, err := s.repos.Jobs.Insert(job)
		if err != nil {
			log.Err(err).Msg("Failed to create job")
			writeJSONError(w, "Error creating job", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, api.JobMutation{Message: "Job created successfully", Job: &job})
	}
}

func (s *Server) UpdateJobHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		existing, ok := s.ownedJob(w, r)
		if !ok {
			return
		}
		var input api.JobInput
		if err := decodeJSON(r, &input); err != nil {
			writeJSONError(w, "Invalid job payload", http.StatusBadRequest)
			return
		}
		if msg := validateJobInput(input); msg != "" {
			writeJSONError(w, msg, http.StatusBadRequest)
			return
		}

		job := jobFromInput(input)
		job.ID = existing.ID
		job, err := s.repos.Jobs.Update(job)
		if err != nil {
			log.Err(err).Str("job_id", existing.ID).Msg("Failed to update job")
			writeJSONError(w, "Error updating job", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, api.JobMutation{Message: "Job updated successfully", Job: &job})
	}
}

func (s *Server) DeleteJobHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		existing, ok := s.ownedJob(w, r)
		if !ok {
			return
		}
		if err := s.repos.Jobs.Delete(existing.ID); err != nil {
			writeJSONError(w, "Job not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, api.Message{Message: "Job deleted successfully"})
	}
}

// ownedJob loads the job named in the path and checks the caller owns it.
// It writes the error response itself and returns false on failure.
func (s *Server) ownedJob(w http.ResponseWriter, r *http.Request) (api.Job, bool) {
	job, err := s.repos.Jobs.Get(r.PathValue("id"))
	if errors.Is(err, errors.ErrNotFound) {
		writeJSONError(w, "Job not found", http.StatusNotFound)
		return api.Job{}, false
	}
	if err != nil {
		log.Err(err).Msg("Failed to load job")
		writeJSONError(w, "Error loading job", http.StatusInternalServerError)
		return api.Job{}, false
	}
	if job.Employer.ID != userIDFromContext(r.Context()) {
		writeJSONError(w, "You do not own this job", http.StatusForbidden)
		return api.Job{}, false
	}
	return job, true
}

func validateJobInput(input api.JobInput) string {
	switch {
	case strings.TrimSpace(input.JobTitle) == "":
		return "Job title is required"
	case strings.TrimSpace(input.JobType) == "":
		return "Job type is required"
	case strings.TrimSpace(input.Category) == "":
		return "Category is required"
	case input.SalaryRange.Min.IsNegative() || input.SalaryRange.Max.IsNegative():
		return "Salary cannot be negative"
	case input.SalaryRange.Max.LessThan(input.SalaryRange.Min):
		return "Maximum salary must not be below minimum salary"
	}
	return ""
}

func jobFromInput(input api.JobInput) api.Job {
	return api.Job{
		JobTitle:       strings.TrimSpace(input.JobTitle),
		JobType:        strings.TrimSpace(input.JobType),
		Category:       strings.TrimSpace(input.Category),
		JobDescription: input.JobDescription,
		Requirements:   input.Requirements,
		SalaryRange:    input.SalaryRange,
		Company:        input.Company,
	}
}
