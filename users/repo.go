package users

import "github.com/jrsteele09/go-jobboard/sessions"

type UserRepo interface {
	// Insert stores a new user, assigning an ID when empty. It fails with
	// ErrUserExists if the email is taken for the same account type.
	Insert(user *User) error
	GetByEmail(accountType sessions.AccountType, email string) (*User, error)
	GetByID(ID string) (*User, error)
	SetLastLogin(ID string) error
}
