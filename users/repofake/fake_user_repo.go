package fakeuserrepo

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-jobboard/internal/errors"
	"github.com/jrsteele09/go-jobboard/sessions"
	"github.com/jrsteele09/go-jobboard/users"
)

var _ users.UserRepo = (*FakeUserRepo)(nil)

type FakeUserRepo struct {
	users    map[string]*users.User
	emailIds map[string]string // account type + email to user id
	lock     sync.RWMutex
}

func NewFakeUserRepo() users.UserRepo {
	return &FakeUserRepo{
		users:    make(map[string]*users.User),
		emailIds: make(map[string]string),
	}
}

func emailKey(accountType sessions.AccountType, email string) string {
	return string(accountType) + "|" + users.NormaliseEmail(email)
}

func (ur *FakeUserRepo) Insert(user *users.User) error {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	key := emailKey(user.AccountType, user.Email)
	if _, ok := ur.emailIds[key]; ok {
		return errors.ErrUserExists
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.DateJoined.IsZero() {
		user.DateJoined = time.Now()
	}
	stored := *user
	ur.users[user.ID] = &stored
	ur.emailIds[key] = user.ID
	return nil
}

func (ur *FakeUserRepo) GetByEmail(accountType sessions.AccountType, email string) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	id, ok := ur.emailIds[emailKey(accountType, email)]
	if !ok {
		return nil, errors.ErrNotFound
	}
	user := *ur.users[id]
	return &user, nil
}

func (ur *FakeUserRepo) GetByID(id string) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	stored, ok := ur.users[id]
	if !ok {
		return nil, errors.ErrNotFound
	}
	user := *stored
	return &user, nil
}

func (ur *FakeUserRepo) SetLastLogin(id string) error {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	user, ok := ur.users[id]
	if !ok {
		return errors.ErrNotFound
	}
	user.LastLogin = time.Now()
	return nil
}
