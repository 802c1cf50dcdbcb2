package ports

import (
	"context"

	"github.com/Apurer/go-gin-storefront/internal/domains/accounts/domain"
)

// RedirectHome is the view a client should show after a successful login or signup.
const RedirectHome = "home"

// Outcome reports who the session now belongs to and where to go next.
type Outcome struct {
	Subject  string
	Redirect string
}

// Service exposes the mock authentication use cases to adapters.
type Service interface {
	Login(ctx context.Context, sessionID string, form domain.LoginForm) (Outcome, error)
	Signup(ctx context.Context, sessionID string, form domain.SignupForm) (Outcome, error)
	Logout(ctx context.Context, sessionID string) error
	IsAuthenticated(ctx context.Context, sessionID string) (bool, error)
}
