package session

import (
	"sync"

	"github.com/opio/bpmonitor/internal/models"
)

// Session holds the signed-in account, if any. It is safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	issuer  *Issuer
	account *models.Account
	token   string
}

// New returns a signed-out Session whose tokens come from issuer.
func New(issuer *Issuer) *Session {
	return &Session{issuer: issuer}
}

// Set signs a in, replacing any previous account.
func (s *Session) Set(a models.Account) error {
	token, err := s.issuer.Issue(a.ID, a.PatientID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = &a
	s.token = token
	return nil
}

// Current returns a copy of the signed-in account, or nil. A session whose
// token no longer verifies is cleared.
func (s *Session) Current() *models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.account == nil {
		return nil
	}
	id, err := s.issuer.Parse(s.token)
	if err != nil || id != s.account.ID {
		s.account = nil
		s.token = ""
		return nil
	}

	a := *s.account
	return &a
}

// Token returns the current session token, or "" when signed out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Clear signs out and drops the token.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = nil
	s.token = ""
}
