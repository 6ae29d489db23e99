package users

import (
	"fmt"
	"strings"
	"time"

	"github.com/jrsteele09/go-jobboard/internal/errors"
	"github.com/jrsteele09/go-jobboard/sessions"
	"golang.org/x/crypto/bcrypt"
)

// User is an account held by the mock backend. Job seekers and employers
// live in separate namespaces, as they do on the real API.
type User struct {
	ID           string               `json:"_id,omitempty"`
	Email        string               `json:"email,omitempty"`
	FullName     string               `json:"fullName,omitempty"`
	PasswordHash string               `json:"-"`
	AccountType  sessions.AccountType `json:"accountType,omitempty"`
	CompanyName  string               `json:"companyName,omitempty"`
	DateJoined   time.Time            `json:"date_joined,omitempty"`
	LastLogin    time.Time            `json:"last_login,omitempty"`
}

// NormaliseEmail lower-cases and trims an email for lookups
func NormaliseEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateRegistration checks the fields every account needs
func ValidateRegistration(u *User, password string) error {
	switch {
	case strings.TrimSpace(u.FullName) == "":
		return fmt.Errorf("%w: full name is required", errors.ErrValidation)
	case !strings.Contains(u.Email, "@"):
		return fmt.Errorf("%w: a valid email is required", errors.ErrValidation)
	case password == "":
		return fmt.Errorf("%w: password is required", errors.ErrValidation)
	case u.AccountType == sessions.AccountEmployer && strings.TrimSpace(u.CompanyName) == "":
		return fmt.Errorf("%w: company name is required", errors.ErrValidation)
	}
	return nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// CheckPassword compares password with the user's stored hash
func (u *User) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.PasswordHash)
}

func (u *User) IsEmployer() bool {
	return u.AccountType == sessions.AccountEmployer
}
