package api

import "github.com/jrsteele09/go-jobboard/sessions"

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginUser struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// SessionResult converts a login response into what the session stores.
func (r LoginResponse) SessionResult(accountType sessions.AccountType) sessions.LoginResult {
	return sessions.LoginResult{
		Token:       r.Token,
		UserID:      r.User.ID,
		UserName:    r.User.FullName,
		AccountType: accountType,
	}
}

type Registration struct {
	FullName    string               `json:"fullName"`
	Email       string               `json:"email"`
	Password    string               `json:"password"`
	AccountType sessions.AccountType `json:"accountType"`
	CompanyName string               `json:"companyName,omitempty"`
}
