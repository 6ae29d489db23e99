package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-jobboard/internal/utils"
	"github.com/jrsteele09/go-jobboard/sessions"
	"github.com/jrsteele09/go-jobboard/token/jwt"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeyUserID stores the authenticated user ID
	ContextKeyUserID ContextKey = "user_id"
	// ContextKeyAccountType stores the authenticated account type
	ContextKeyAccountType ContextKey = "account_type"
)

// RequireAuth is middleware that validates a Bearer access token issued by
// the login endpoints
func (s *Server) RequireAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, "Missing Authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
				writeJSONError(w, "Invalid Authorization header format", http.StatusUnauthorized)
				return
			}

			introspection, err := jwt.Introspect(parts[1], s.signer)
			if err != nil || !introspection.Active || introspection.Sub == nil {
				writeJSONError(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUserID, utils.Value(introspection.Sub))
			ctx = context.WithValue(ctx, ContextKeyAccountType, introspection.AccountType)
			next(w, r.WithContext(ctx))
		}
	}
}

// RequireAccountType rejects tokens issued to another account type.
// Should be chained after RequireAuth.
func (s *Server) RequireAccountType(accountType sessions.AccountType) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			claimed, _ := r.Context().Value(ContextKeyAccountType).(string)
			if got, ok := sessions.ParseAccountType(claimed); !ok || got != accountType {
				writeJSONError(w, "Only "+accountType.String()+" accounts can do this", http.StatusForbidden)
				return
			}
			next(w, r)
		}
	}
}

func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyUserID).(string)
	return id
}
