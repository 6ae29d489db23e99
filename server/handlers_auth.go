package server

import (
	"net/http"
	"strings"

	"github.com/jrsteele09/go-jobboard/api"
	"github.com/jrsteele09/go-jobboard/internal/errors"
	"github.com/jrsteele09/go-jobboard/sessions"
	"github.com/jrsteele09/go-jobboard/users"
	"github.com/rs/zerolog/log"
)

// LoginHandler authenticates an account of the given type and returns a bearer token
func (s *Server) LoginHandler(accountType sessions.AccountType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds api.Credentials
		if err := decodeJSON(r, &creds); err != nil {
			writeJSONError(w, "Invalid login payload", http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(creds.Email) == "" || creds.Password == "" {
			writeJSONError(w, "Email and password are required", http.StatusBadRequest)
			return
		}

		user, err := s.repos.Users.GetByEmail(accountType, creds.Email)
		if err != nil || !user.CheckPassword(creds.Password) {
			writeJSONError(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}

		signed, err := s.creator.CreateAccessToken(user)
		if err != nil {
			log.Err(err).Str("user_id", user.ID).Msg("Failed to create access token")
			writeJSONError(w, "Login failed", http.StatusInternalServerError)
			return
		}
		if err := s.repos.Users.SetLastLogin(user.ID); err != nil {
			log.Err(err).Str("user_id", user.ID).Msg("Failed to record last login")
		}

		writeJSON(w, http.StatusOK, api.LoginResponse{
			Token: signed,
			User:  api.LoginUser{ID: user.ID, FullName: user.FullName},
		})
	}
}

// RegisterHandler creates an account of the given type
func (s *Server) RegisterHandler(accountType sessions.AccountType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var reg api.Registration
		if err := decodeJSON(r, &reg); err != nil {
			writeJSONError(w, "Invalid registration payload", http.StatusBadRequest)
			return
		}

		user := &users.User{
			Email:       users.NormaliseEmail(reg.Email),
			FullName:    strings.TrimSpace(reg.FullName),
			AccountType: accountType,
		}
		if accountType == sessions.AccountEmployer {
			user.CompanyName = strings.TrimSpace(reg.CompanyName)
		}
		if err := users.ValidateRegistration(user, reg.Password); err != nil {
			writeJSONError(w, strings.TrimPrefix(err.Error(), errors.ErrValidation.Error()+": "), http.StatusBadRequest)
			return
		}

		hash, err := users.HashPassword(reg.Password)
		if err != nil {
			log.Err(err).Msg("Failed to hash password")
			writeJSONError(w, "Registration failed", http.StatusInternalServerError)
			return
		}
		user.PasswordHash = hash

		if err := s.repos.Users.Insert(user); err != nil {
			if errors.Is(err, errors.ErrUserExists) {
				writeJSONError(w, "An account with this email already exists", http.StatusConflict)
				return
			}
			log.Err(err).Msg("Failed to store user")
			writeJSONError(w, "Registration failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, api.Message{Message: "Registration successful"})
	}
}

// GetEmployerHandler returns the public profile of an employer
func (s *Server) GetEmployerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			EmployerID string `json:"employerId"`
		}
		if err := decodeJSON(r, &body); err != nil || body.EmployerID == "" {
			writeJSONError(w, "employerId is required", http.StatusBadRequest)
			return
		}
		user, err := s.repos.Users.GetByID(body.EmployerID)
		if err != nil || !user.IsEmployer() {
			writeJSONError(w, "Employer not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, api.Employer{
			ID:          user.ID,
			FullName:    user.FullName,
			Email:       user.Email,
			CompanyName: user.CompanyName,
		})
	}
}
