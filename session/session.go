// File: trimbook/session/session.go
package session

import (
	"sync"

	"trimbook/models"
)

// Session holds the authenticated account shared by every screen. The user is
// only ever replaced wholesale (last writer wins), never merged field by
// field, so readers always observe a consistent snapshot.
type Session struct {
	mu        sync.RWMutex
	user      models.User
	token     string
	signedIn  bool
	listeners []func(models.User)
}

// New creates a session for a signed-in user.
func New(user models.User, token string) *Session {
	return &Session{user: user, token: token, signedIn: true}
}

// User returns the current account snapshot.
func (s *Session) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Token returns the current bearer token, empty after sign-out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SignedIn reports whether the session is active.
func (s *Session) SignedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.signedIn
}

// SetUser replaces the current user with a fresh server copy and notifies
// subscribers. Partial merges are deliberately not supported.
func (s *Session) SetUser(user models.User) {
	s.mu.Lock()
	s.user = user
	listeners := make([]func(models.User), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(user)
	}
}

// SignOut clears the account and token.
func (s *Session) SignOut() {
	s.mu.Lock()
	s.user = models.User{}
	s.token = ""
	s.signedIn = false
	listeners := make([]func(models.User), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(models.User{})
	}
}

// Subscribe registers a callback invoked after every user replacement,
// including the zero user on sign-out.
func (s *Session) Subscribe(fn func(models.User)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}
