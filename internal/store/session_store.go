package store

import (
	"sync"

	"medibook-portal/internal/domain/entity"
)

// SessionStore holds the authentication state for the portal. It is a plain
// in-memory holder; persisting the session across restarts is the caller's job.
type SessionStore struct {
	mu      sync.RWMutex
	session entity.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Login replaces the current session. Missing fields stay at their zero
// values; the role defaults to user.
func (s *SessionStore) Login(session entity.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.LoggedIn = true
	if session.Role == "" {
		session.Role = entity.RoleUser
	}
	s.session = session
}

// Logout clears all session state.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = entity.Session{}
}

// UpdateIdentity patches identity fields on the current session. Empty
// arguments leave the existing value untouched.
func (s *SessionStore) UpdateIdentity(email, username string, role entity.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if email != "" {
		s.session.Email = email
	}
	if username != "" {
		s.session.Username = username
	}
	if role != "" {
		s.session.Role = role
	}
}

func (s *SessionStore) Current() entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session
}

func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session.LoggedIn
}

func (s *SessionStore) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session.LoggedIn && s.session.IsAdmin()
}

// Token returns the session bearer token, empty when logged out.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session.Token
}
