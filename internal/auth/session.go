package auth

import (
	"sync"

	"github.com/heartmarshall/pinmoji/internal/domain"
)

// Session holds the signed-in user of this process.
type Session struct {
	tokens *TokenManager

	mu   sync.RWMutex
	user *domain.User
}

// NewSession creates a signed-out session.
func NewSession(tokens *TokenManager) *Session {
	return &Session{tokens: tokens}
}

// SignIn verifies token and makes its user current. On failure the session
// is left unchanged.
func (s *Session) SignIn(token string) (domain.User, error) {
	user, err := s.tokens.ParseIDToken(token)
	if err != nil {
		return domain.User{}, err
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	return user, nil
}

// SignOut forgets the current user.
func (s *Session) SignOut() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// CurrentUser returns the signed-in user, if any.
func (s *Session) CurrentUser() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}
