package sessions

// Store is a persisted string key/value store scoped to one client profile.
// It survives restarts and has no expiry.
type Store interface {
	// Set writes value under key
	Set(key, value string) error

	// Get returns the value under key and whether it was present
	Get(key string) (string, bool, error)

	// Clear removes every key
	Clear() error
}
