package application

import (
	"context"
	"errors"
	"strings"

	"github.com/Apurer/go-gin-storefront/internal/domains/accounts/domain"
	"github.com/Apurer/go-gin-storefront/internal/domains/accounts/ports"
)

// Service implements mock authentication: any well-formed form logs the
// session in. No credentials are checked or stored.
type Service struct {
	sessions ports.SessionStore
}

func NewService(sessions ports.SessionStore) *Service {
	if sessions == nil {
		sessions = ports.NoopSessionStore
	}
	return &Service{sessions: sessions}
}

func (s *Service) Login(ctx context.Context, sessionID string, form domain.LoginForm) (ports.Outcome, error) {
	if err := form.Validate(); err != nil {
		return ports.Outcome{}, mapError(err)
	}
	return s.start(ctx, sessionID, strings.TrimSpace(form.Email))
}

func (s *Service) Signup(ctx context.Context, sessionID string, form domain.SignupForm) (ports.Outcome, error) {
	if err := form.Validate(); err != nil {
		return ports.Outcome{}, mapError(err)
	}
	return s.start(ctx, sessionID, form.Subject())
}

func (s *Service) start(ctx context.Context, sessionID, subject string) (ports.Outcome, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ports.Outcome{}, ErrInvalidSession
	}
	if err := s.sessions.Save(ctx, sessionID, subject); err != nil {
		return ports.Outcome{}, err
	}
	return ports.Outcome{Subject: subject, Redirect: ports.RedirectHome}, nil
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

func (s *Service) IsAuthenticated(ctx context.Context, sessionID string) (bool, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return false, nil
	}
	_, err := s.sessions.Lookup(ctx, sessionID)
	if errors.Is(err, ports.ErrSessionNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

var _ ports.Service = (*Service)(nil)
