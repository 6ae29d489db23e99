package sessions

import (
	"sync"

	"github.com/jrsteele09/go-jobboard/internal/errors"
	"github.com/rs/zerolog/log"
)

// Service is the single read/write surface over the session Store.
type Service struct {
	store Store
	lock  sync.Mutex
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Begin replaces whatever session was stored with the one from a login response.
func (s *Service) Begin(result LoginResult) error {
	if result.Token == "" || result.UserID == "" {
		return errors.Wrapf(errors.ErrMissingSessionField, "begin session")
	}
	if _, ok := ParseAccountType(result.AccountType.String()); !ok {
		return errors.Wrapf(errors.ErrValidation, "begin session: unknown account type %q", result.AccountType)
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.store.Clear(); err != nil {
		return errors.Wrapf(err, "begin session: clear")
	}
	values := map[string]string{
		KeyAuthToken:   result.Token,
		KeyUserID:      result.UserID,
		KeyUserName:    result.UserName,
		KeyAccountType: result.AccountType.String(),
	}
	for _, key := range AllKeys {
		if err := s.store.Set(key, values[key]); err != nil {
			if clearErr := s.store.Clear(); clearErr != nil {
				log.Error().Err(clearErr).Msg("Failed to clear partial session")
			}
			return errors.Wrapf(err, "begin session: set %s", key)
		}
	}
	log.Debug().Str("user_id", result.UserID).Str("account_type", result.AccountType.String()).Msg("Session started")
	return nil
}

// End clears the store entirely.
func (s *Service) End() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.store.Clear(); err != nil {
		return errors.Wrapf(err, "end session")
	}
	log.Debug().Msg("Session cleared")
	return nil
}

// Current reads the session from the store. It is re-read on every call so
// changes made outside this process are picked up.
func (s *Service) Current() (Session, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	var sess Session
	fields := map[string]*string{
		KeyAuthToken:   &sess.AuthToken,
		KeyUserID:      &sess.UserID,
		KeyUserName:    &sess.UserName,
		KeyAccountType: &sess.AccountType,
	}
	for key, dst := range fields {
		value, _, err := s.store.Get(key)
		if err != nil {
			return Session{}, errors.Wrapf(err, "read session key %s", key)
		}
		*dst = value
	}
	return sess, nil
}
