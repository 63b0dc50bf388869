package domain

// StateStore persists the small amount of client state that must
// survive restarts: the session token and the signed-in user profile.
// Entity data is never persisted; the cache is rebuilt per session.
type StateStore interface {
	Get(key string) ([]byte, bool)
	Put(key string, value []byte) error
	Delete(keys ...string) error
	Close() error
}
