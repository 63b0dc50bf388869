package session

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/deaduz/eduadmin/internal/domain"
)

// Persisted slots in the state store
const (
	keyAccessToken = "access_token"
	keyUser        = "user"
)

// Session holds the authenticated identity: the bearer token and the
// staff profile. It hydrates from the state store at startup and tears
// itself down on logout or when the backend answers 401. It is
// injected everywhere it is needed so tests can substitute a fake
// store.
type Session struct {
	store  domain.StateStore
	logger *slog.Logger

	mu    sync.RWMutex
	token string
	user  *domain.User

	onClear func()
}

// New creates a session backed by the given state store.
func New(store domain.StateStore, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{store: store, logger: logger}
}

// OnClear registers a hook run whenever the session is torn down.
// The caller wires cache purging here.
func (s *Session) OnClear(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onClear = fn
}

// Hydrate loads persisted credentials. A stored token that already
// expired counts as signed out and is removed.
func (s *Session) Hydrate() error {
	tok, ok := s.store.Get(keyAccessToken)
	if !ok {
		return nil
	}
	if tokenExpired(string(tok)) {
		s.logger.Info("stored session token expired, clearing")
		return s.store.Delete(keyAccessToken, keyUser)
	}

	var user *domain.User
	if raw, ok := s.store.Get(keyUser); ok {
		user = &domain.User{}
		if err := json.Unmarshal(raw, user); err != nil {
			s.logger.Warn("stored user profile unreadable", "error", err)
			user = nil
		}
	}

	s.mu.Lock()
	s.token = string(tok)
	s.user = user
	s.mu.Unlock()
	s.logger.Debug("session hydrated", "authenticated", true)
	return nil
}

// Login stores a fresh token and profile, both in memory and persisted.
func (s *Session) Login(token string, user *domain.User) error {
	if err := s.store.Put(keyAccessToken, []byte(token)); err != nil {
		return err
	}
	if user != nil {
		raw, err := json.Marshal(user)
		if err != nil {
			return err
		}
		if err := s.store.Put(keyUser, raw); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()
	s.logger.Info("session established", "user", userID(user))
	return nil
}

// Logout clears the session explicitly.
func (s *Session) Logout() error {
	s.logger.Info("logging out")
	return s.clear()
}

// Invalidate tears the session down after the backend rejected the
// token. Safe to call repeatedly; clearing is idempotent.
func (s *Session) Invalidate() {
	s.mu.RLock()
	had := s.token != ""
	s.mu.RUnlock()
	if had {
		s.logger.Warn("session rejected by backend, forcing re-authentication")
	}
	if err := s.clear(); err != nil {
		s.logger.Error("failed to clear session state", "error", err)
	}
}

// Token returns the bearer token, if authenticated.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// User returns the signed-in profile, or nil.
func (s *Session) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Authenticated reports whether a token is held.
func (s *Session) Authenticated() bool {
	_, ok := s.Token()
	return ok
}

func (s *Session) clear() error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	hook := s.onClear
	s.mu.Unlock()

	err := s.store.Delete(keyAccessToken, keyUser)
	if hook != nil {
		hook()
	}
	return err
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification is the backend's job. Opaque (non-JWT)
// tokens are never treated as expired locally.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

func userID(u *domain.User) string {
	if u == nil {
		return ""
	}
	return u.ID
}
