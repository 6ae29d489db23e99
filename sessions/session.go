package sessions

import "strings"

// Keys under which the session is persisted. They match the browser storage
// keys the web client uses so both can share a backend.
const (
	KeyAuthToken   = "authToken"
	KeyUserID      = "userId"
	KeyUserName    = "userName"
	KeyAccountType = "accountType"
)

// AllKeys lists every key a session writes.
var AllKeys = []string{KeyAuthToken, KeyUserID, KeyUserName, KeyAccountType}

// AccountType is the role flag controlling dashboards and permissions.
type AccountType string

const (
	AccountJobSeeker AccountType = "jobSeeker"
	AccountEmployer  AccountType = "employer"
)

// ParseAccountType accepts any casing of the two known account types.
func ParseAccountType(s string) (AccountType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "jobseeker":
		return AccountJobSeeker, true
	case "employer":
		return AccountEmployer, true
	}
	return "", false
}

func (a AccountType) String() string {
	return string(a)
}

// Session is the typed view of the persisted keys. Empty strings mean absent.
type Session struct {
	AuthToken   string
	UserID      string
	UserName    string
	AccountType string
}

// LoggedIn reports whether both the token and the user id are present.
func (s Session) LoggedIn() bool {
	return s.AuthToken != "" && s.UserID != ""
}

// Role returns the parsed account type, false when absent or unknown.
func (s Session) Role() (AccountType, bool) {
	return ParseAccountType(s.AccountType)
}

// LoginResult is what a successful login response contributes to a session.
type LoginResult struct {
	Token       string
	UserID      string
	UserName    string
	AccountType AccountType
}
