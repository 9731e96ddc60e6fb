package service

import (
	"context"
	"testing"
	"time"

	"github.com/kolmarket/kolmarket/internal/market/domain"
	"github.com/kolmarket/kolmarket/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()

	signer, err := jwtx.NewEphemeralSignerEdDSA("test-key")
	require.NoError(t, err)

	return &UserService{
		Store:      newTestStore(t),
		Signer:     signer,
		Issuer:     "test-issuer",
		SessionTTL: time.Hour,
	}
}

func TestRegisterIssuesSession(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	session, err := svc.Register(ctx, "Alice@Example.COM", "Alice", "Password1!", "")
	require.NoError(t, err)
	require.NotEmpty(t, session.AccessToken)
	require.Equal(t, int64(3600), session.ExpiresIn)
	require.Equal(t, "alice@example.com", session.User.Email)
	require.Equal(t, domain.RoleClient, session.User.Role)

	// The token verifies against the signer's public key and carries the
	// claims the middleware gates on.
	verifier := jwtx.NewVerifierEdDSA(svc.Signer.Public(), "test-issuer")
	claims, err := verifier.Verify(session.AccessToken)
	require.NoError(t, err)
	require.Equal(t, session.User.ID, claims.Subject)
	require.Equal(t, domain.RoleClient, claims.Role)
	require.Equal(t, "alice@example.com", claims.Email)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	_, err := svc.Register(ctx, "", "Alice", "Password1!", "")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(ctx, "alice@example.com", "Alice", "", "")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(ctx, "alice@example.com", "Alice", "Password1!", "superuser")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	_, err := svc.Register(ctx, "alice@example.com", "Alice", "Password1!", "")
	require.NoError(t, err)

	// Email comparison is case-insensitive via normalization.
	_, err = svc.Register(ctx, "ALICE@example.com", "Alice Again", "Password2!", "")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	registered, err := svc.Register(ctx, "alice@example.com", "Alice", "Password1!", domain.RoleAdmin)
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		session, err := svc.Authenticate(ctx, "alice@example.com", "Password1!")
		require.NoError(t, err)
		require.Equal(t, registered.User.ID, session.User.ID)
		require.Equal(t, domain.RoleAdmin, session.User.Role)
		require.NotEmpty(t, session.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "alice@example.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown account reports the same error", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody@example.com", "Password1!")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
