package server

import (
	"net/http"

	"github.com/jrsteele09/go-jobboard/api"
	"github.com/jrsteele09/go-jobboard/internal/errors"
	"github.com/jrsteele09/go-jobboard/server/applicationrepo"
	"github.com/rs/zerolog/log"
)

// ApplyHandler records a job seeker's application to a job
func (s *Server) ApplyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r.Context())
		var req api.ApplyRequest
		if err := decodeJSON(r, &req); err != nil || req.JobID == "" {
			writeJSONError(w, "jobId is required", http.StatusBadRequest)
			return
		}
		if req.UserID != "" && req.UserID != userID {
			writeJSONError(w, "Cannot apply on behalf of another user", http.StatusForbidden)
			return
		}

		job, err := s.repos.Jobs.Get(req.JobID)
		if err != nil {
			writeJSONError(w, "Job not found", http.StatusNotFound)
			return
		}
		user, err := s.repos.Users.GetByID(userID)
		if err != nil {
			writeJSONError(w, "User not found", http.StatusNotFound)
			return
		}

		app, err := s.repos.Applications.Insert(api.Application{
			JobID:      job.ID,
			EmployerID: job.Employer.ID,
			UserID:     userID,
			Status:     api.StatusPending,
			FullName:   user.FullName,
			Email:      user.Email,
		})
		if errors.Is(err, applicationrepo.ErrDuplicate) {
			writeJSONError(w, "You have already applied to this job", http.StatusConflict)
			return
		}
		if err != nil {
			log.Err(err).Str("job_id", job.ID).Msg("Failed to store application")
			writeJSONError(w, "Failed to apply", http.StatusInternalServerError)
			return
		}
		log.Debug().Str("application_id", app.ID).Str("job_id", job.ID).Msg("Application received")
		writeJSON(w, http.StatusCreated, api.Message{Message: "Application submitted successfully"})
	}
}

// AppliedJobsHandler lists the caller's applications
func (s *Server) AppliedJobsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r.Context())
		var body struct {
			UserID string `json:"userId"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeJSONError(w, "Invalid request payload", http.StatusBadRequest)
			return
		}
		if body.UserID != "" && body.UserID != userID {
			writeJSONError(w, "Cannot read another user's applications", http.StatusForbidden)
			return
		}
		apps, err := s.repos.Applications.ListByUser(userID)
		if err != nil {
			log.Err(err).Msg("Failed to list applications")
			writeJSONError(w, "Failed to fetch applied jobs", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, apps)
	}
}

// EmployerApplicationsHandler lists applications made to the caller's jobs
func (s *Server) EmployerApplicationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employerID := userIDFromContext(r.Context())
		var body struct {
			EmployerID string `json:"employerId"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeJSONError(w, "Invalid request payload", http.StatusBadRequest)
			return
		}
		if body.EmployerID != "" && body.EmployerID != employerID {
			writeJSONError(w, "Cannot read another employer's applications", http.StatusForbidden)
			return
		}
		apps, err := s.repos.Applications.ListByEmployer(employerID)
		if err != nil {
			log.Err(err).Msg("Failed to list employer applications")
			writeJSONError(w, "Failed to fetch applications", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, apps)
	}
}

// UpdateApplicationStatusHandler sets the status of an application to one of the caller's jobs
func (s *Server) UpdateApplicationStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Status string `json:"status"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeJSONError(w, "Invalid request payload", http.StatusBadRequest)
			return
		}
		status, ok := api.ParseApplicationStatus(body.Status)
		if !ok {
			writeJSONError(w, "Status must be pending, approved or rejected", http.StatusBadRequest)
			return
		}

		app, err := s.repos.Applications.Get(r.PathValue("id"))
		if err != nil {
			writeJSONError(w, "Application not found", http.StatusNotFound)
			return
		}
		if app.EmployerID != userIDFromContext(r.Context()) {
			writeJSONError(w, "You do not own this application", http.StatusForbidden)
			return
		}

		app, err = s.repos.Applications.SetStatus(app.ID, status)
		if err != nil {
			log.Err(err).Str("application_id", r.PathValue("id")).Msg("Failed to update application")
			writeJSONError(w, "Failed to update application", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, app)
	}
}
