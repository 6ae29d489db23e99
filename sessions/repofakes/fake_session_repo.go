package fakesessionrepo

import (
	"sync"

	"github.com/jrsteele09/go-jobboard/sessions"
)

var _ sessions.Store = (*FakeSessionStore)(nil)

type FakeSessionStore struct {
	values map[string]string
	lock   sync.RWMutex
}

func NewFakeSessionStore() *FakeSessionStore {
	return &FakeSessionStore{
		values: make(map[string]string),
	}
}

func (fs *FakeSessionStore) Set(key, value string) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	fs.values[key] = value
	return nil
}

func (fs *FakeSessionStore) Get(key string) (string, bool, error) {
	fs.lock.RLock()
	defer fs.lock.RUnlock()

	value, ok := fs.values[key]
	return value, ok, nil
}

func (fs *FakeSessionStore) Clear() error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	fs.values = make(map[string]string)
	return nil
}

// Len returns the number of stored keys
func (fs *FakeSessionStore) Len() int {
	fs.lock.RLock()
	defer fs.lock.RUnlock()

	return len(fs.values)
}
