package jwt

import (
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-jobboard/internal/utils"
	"github.com/jrsteele09/go-jobboard/token"
	"github.com/pkg/errors"
)

// TokenIntrospection is what can be read from a bearer token.
// Active is false when the token failed verification or has expired.
type TokenIntrospection struct {
	Active      bool       `json:"active"`
	Sub         *string    `json:"sub,omitempty"`
	Name        string     `json:"name,omitempty"`
	Email       string     `json:"email,omitempty"`
	AccountType string     `json:"account_type,omitempty"`
	Iat         *time.Time `json:"iat,omitempty"`
	Exp         *time.Time `json:"exp,omitempty"`
	Audience    []string   `json:"aud,omitempty"`
}

// Expired reports whether the token carries an expiry that has passed.
func (t *TokenIntrospection) Expired() bool {
	return t.Exp != nil && NowTimeFunc().After(*t.Exp)
}

// Introspect verifies rawToken with signer and extracts its claims
func Introspect(rawToken string, signer token.Signer) (*TokenIntrospection, error) {
	if strings.TrimSpace(rawToken) == "" {
		return &TokenIntrospection{Active: false}, nil
	}

	parsed, err := jwtlib.ParseWithClaims(rawToken, jwtlib.MapClaims{}, signer.GetVerificationKey,
		jwtlib.WithValidMethods([]string{signer.GetSigningMethod().Alg()}),
		jwtlib.WithTimeFunc(NowTimeFunc))
	if err != nil {
		return &TokenIntrospection{Active: false}, errors.Wrap(err, "parse token")
	}
	if !parsed.Valid {
		return &TokenIntrospection{Active: false}, errors.New("token is not valid")
	}

	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return &TokenIntrospection{Active: false}, errors.New("error extracting claims from token")
	}
	ti := fromClaims(claims)
	ti.Active = !ti.Expired()
	return ti, nil
}

// InspectUnverified reads the claims of rawToken without checking its
// signature. The client uses it for display only; it never gates access.
// Opaque tokens that are not JWTs return an error.
func InspectUnverified(rawToken string) (*TokenIntrospection, error) {
	parsed, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return nil, errors.Wrap(err, "parse unverified token")
	}
	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, errors.New("error extracting claims")
	}
	ti := fromClaims(claims)
	ti.Active = !ti.Expired()
	return ti, nil
}

func fromClaims(claims jwtlib.MapClaims) *TokenIntrospection {
	ti := &TokenIntrospection{}
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		ti.Sub = utils.Ptr(sub)
	}
	ti.Name, _ = claims["name"].(string)
	ti.Email, _ = claims["email"].(string)
	ti.AccountType, _ = claims["account_type"].(string)
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		ti.Iat = utils.Ptr(iat.Time)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		ti.Exp = utils.Ptr(exp.Time)
	}
	switch aud := claims["aud"].(type) {
	case string:
		ti.Audience = []string{aud}
	case []any:
		ti.Audience = utils.ToStringSlice(aud)
	}
	return ti
}
