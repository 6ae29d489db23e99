package filestore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/jrsteele09/go-jobboard/internal/errors"
	"github.com/jrsteele09/go-jobboard/sessions"
)

var _ sessions.Store = (*FileStore)(nil)

// FileStore persists the session keys as a JSON object in a single file.
// The file is read on every access, so edits or deletion by another process
// are seen immediately.
type FileStore struct {
	path string
	lock sync.RWMutex
}

func New(path string) *FileStore {
	return &FileStore{path: path}
}

func (fs *FileStore) Path() string {
	return fs.path
}

func (fs *FileStore) Set(key, value string) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	values, err := fs.load()
	if err != nil {
		return err
	}
	values[key] = value
	return fs.save(values)
}

func (fs *FileStore) Get(key string) (string, bool, error) {
	fs.lock.RLock()
	defer fs.lock.RUnlock()

	values, err := fs.load()
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

// Clear removes the backing file. A missing file is an empty store.
func (fs *FileStore) Clear() error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "remove %s", fs.path)
	}
	return nil
}

// Keys returns the keys currently stored
func (fs *FileStore) Keys() ([]string, error) {
	fs.lock.RLock()
	defer fs.lock.RUnlock()

	values, err := fs.load()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	return keys, nil
}

func (fs *FileStore) load() (map[string]string, error) {
	values := make(map[string]string)
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return values, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", fs.path)
	}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrapf(err, "decode %s", fs.path)
	}
	return values, nil
}

// save writes to a temp file in the same folder and renames it over the target.
func (fs *FileStore) save(values map[string]string) error {
	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encode session")
	}
	tmp, err := os.CreateTemp(dir, ".session-*.json")
	if err != nil {
		return errors.Wrapf(err, "create temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "write temp file")
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "chmod temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close temp file")
	}
	if err := os.Rename(tmp.Name(), fs.path); err != nil {
		return errors.Wrapf(err, "replace %s", fs.path)
	}
	return nil
}
