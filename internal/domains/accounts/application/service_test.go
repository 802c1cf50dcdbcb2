package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-storefront/internal/domains/accounts/adapters/memory"
	"github.com/Apurer/go-gin-storefront/internal/domains/accounts/domain"
	"github.com/Apurer/go-gin-storefront/internal/domains/accounts/ports"
	"github.com/Apurer/go-gin-storefront/internal/shared/validation"
)

type brokenSessions struct{ ports.SessionStore }

func (brokenSessions) Lookup(context.Context, string) (string, error) {
	return "", errors.New("connection refused")
}

func TestLogin_MarksSessionAuthenticated(t *testing.T) {
	svc := NewService(memory.NewSessionStore())
	ctx := context.Background()

	ok, err := svc.IsAuthenticated(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)

	out, err := svc.Login(ctx, "s1", domain.LoginForm{Email: " shopper@example.com ", Password: "anything"})
	require.NoError(t, err)
	assert.Equal(t, "shopper@example.com", out.Subject)
	assert.Equal(t, ports.RedirectHome, out.Redirect)

	ok, err = svc.IsAuthenticated(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsAuthenticated(ctx, "s2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLogin_InvalidFormLeavesSessionAnonymous(t *testing.T) {
	svc := NewService(memory.NewSessionStore())
	ctx := context.Background()

	_, err := svc.Login(ctx, "s1", domain.LoginForm{Email: "nope"})
	require.ErrorIs(t, err, ErrInvalidInput)
	var fields validation.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "Invalid email format", fields["email"])

	ok, err := svc.IsAuthenticated(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLogin_RequiresSession(t *testing.T) {
	svc := NewService(nil)
	_, err := svc.Login(context.Background(), " ", domain.LoginForm{Email: "a@b.co", Password: "x"})
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestSignupThenLogout(t *testing.T) {
	svc := NewService(memory.NewSessionStore())
	ctx := context.Background()

	form := domain.SignupForm{Kind: domain.KindOrganisation, Profile: domain.Profile{
		FirstName: "Asha", LastName: "Gurung", Username: "asha", Email: "asha@example.com",
		Country: "Nepal", ContactNumber: "123", Password: "pashmina1", ConfirmPassword: "pashmina1",
	}, Organisation: domain.Organisation{CompanyName: "Kathmandu Weavers"}}

	out, err := svc.Signup(ctx, "s1", form)
	require.NoError(t, err)
	assert.Equal(t, "asha", out.Subject)

	require.NoError(t, svc.Logout(ctx, "s1"))
	ok, err := svc.IsAuthenticated(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, svc.Logout(ctx, ""))
}

func TestIsAuthenticated_PropagatesStoreFailure(t *testing.T) {
	svc := NewService(brokenSessions{})
	_, err := svc.IsAuthenticated(context.Background(), "s1")
	require.Error(t, err)
}
