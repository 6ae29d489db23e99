package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/jrsteele09/go-jobboard/api"
	"github.com/jrsteele09/go-jobboard/gate"
	"github.com/jrsteele09/go-jobboard/internal/errors"
	"github.com/jrsteele09/go-jobboard/sessions"
)

var errInvalidAccountType = fmt.Errorf("%w: account type must be jobSeeker or employer", errors.ErrValidation)

// SessionWriter starts and ends sessions. sessions.Service satisfies it.
type SessionWriter interface {
	Begin(result sessions.LoginResult) error
	End() error
}

// LoginForm signs a user in and stores the session.
type LoginForm struct {
	client   AuthAPI
	sessions SessionWriter
	notify   Notifier
}

func NewLoginForm(client AuthAPI, sess SessionWriter, notify Notifier) *LoginForm {
	return &LoginForm{client: client, sessions: sess, notify: notify}
}

// Submit logs in and returns the dashboard route to redirect to.
func (f *LoginForm) Submit(ctx context.Context, accountType, email, password string) (string, error) {
	err := requireFields(map[string]string{"email": email, "password": password})
	role, ok := sessions.ParseAccountType(accountType)
	if err == nil && !ok {
		err = errInvalidAccountType
	}
	if err != nil {
		f.notify.Error(api.UserMessage(err, "Login failed. Try again."))
		return "", err
	}

	resp, err := f.client.Login(ctx, role, api.Credentials{Email: strings.TrimSpace(email), Password: password})
	if err != nil {
		f.notify.Error(api.UserMessage(err, "Login failed. Try again."))
		return "", errors.Wrapf(err, "login")
	}
	if err := f.sessions.Begin(resp.SessionResult(role)); err != nil {
		f.notify.Error("Login failed. Try again.")
		return "", errors.Wrapf(err, "store session")
	}
	f.notify.Success("Login successful! Redirecting...")
	return gate.DashboardFor(&role), nil
}

// RegisterForm creates an account.
type RegisterForm struct {
	client AuthAPI
	notify Notifier
}

func NewRegisterForm(client AuthAPI, notify Notifier) *RegisterForm {
	return &RegisterForm{client: client, notify: notify}
}

// Submit registers reg and returns the login route to redirect to.
func (f *RegisterForm) Submit(ctx context.Context, reg api.Registration) (string, error) {
	role, ok := sessions.ParseAccountType(string(reg.AccountType))
	reg.AccountType = role
	fields := map[string]string{"full name": reg.FullName, "email": reg.Email, "password": reg.Password}
	if role == sessions.AccountEmployer {
		fields["company name"] = reg.CompanyName
	}
	err := requireFields(fields)
	if err == nil && !ok {
		err = errInvalidAccountType
	}
	if err != nil {
		f.notify.Error(api.UserMessage(err, "Registration failed. Try again."))
		return "", err
	}

	if _, err := f.client.Register(ctx, reg); err != nil {
		f.notify.Error(api.UserMessage(err, "Registration failed. Try again."))
		return "", errors.Wrapf(err, "register")
	}
	f.notify.Success("Registration successful! Redirecting...")
	return gate.RouteLogin, nil
}

// Logout clears the session and returns the home route.
func Logout(sess SessionWriter, notify Notifier) (string, error) {
	if err := sess.End(); err != nil {
		notify.Error("Failed to log out.")
		return "", errors.Wrapf(err, "logout")
	}
	notify.Success("Logged out.")
	return gate.RouteHome, nil
}

// requireFields reports the first blank field, in a stable order.
func requireFields(fields map[string]string) error {
	for _, name := range []string{"full name", "email", "password", "company name"} {
		if value, ok := fields[name]; ok && strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is required", errors.ErrValidation, name)
		}
	}
	return nil
}
