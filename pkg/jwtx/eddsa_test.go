package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignAndVerifyRoundtrip(t *testing.T) {
	signer, err := NewEphemeralSignerEdDSA("test-key")
	require.NoError(t, err)

	claims := NewSessionClaims("user-1", "alice@example.com", "Alice", "admin", "test-issuer", time.Hour, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	verifier := NewVerifierEdDSA(signer.Public(), "test-issuer")
	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "alice@example.com", got.Email)
	require.Equal(t, "Alice", got.FullName)
	require.Equal(t, "admin", got.Role)
	require.NotEmpty(t, got.ID, "jti should be populated")
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	signer, err := NewEphemeralSignerEdDSA("key-a")
	require.NoError(t, err)
	other, err := NewEphemeralSignerEdDSA("key-b")
	require.NoError(t, err)

	claims := NewSessionClaims("user-1", "", "", "client", "test-issuer", time.Hour, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := NewVerifierEdDSA(other.Public(), "test-issuer")
	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	signer, err := NewEphemeralSignerEdDSA("test-key")
	require.NoError(t, err)

	claims := NewSessionClaims("user-1", "", "", "client", "issuer-a", time.Hour, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := NewVerifierEdDSA(signer.Public(), "issuer-b")
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsExpired(t *testing.T) {
	signer, err := NewEphemeralSignerEdDSA("test-key")
	require.NoError(t, err)

	issued := time.Now().UTC().Add(-2 * time.Hour)
	claims := NewSessionClaims("user-1", "", "", "client", "test-issuer", time.Hour, issued)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := NewVerifierEdDSA(signer.Public(), "test-issuer")
	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestPEMRoundtrip(t *testing.T) {
	original, err := NewEphemeralSignerEdDSA("persisted")
	require.NoError(t, err)

	pemKey, err := MarshalPKCS8PEM(original.PrivateKey())
	require.NoError(t, err)

	loaded, err := NewSignerEdDSA("persisted", pemKey)
	require.NoError(t, err)
	require.Equal(t, original.Public(), loaded.Public())

	// Tokens signed before the reload still verify.
	claims := NewSessionClaims("user-1", "", "", "client", "test-issuer", time.Hour, time.Now().UTC())
	token, err := original.Sign(claims)
	require.NoError(t, err)

	verifier := NewVerifierEdDSA(loaded.Public(), "test-issuer")
	_, err = verifier.Verify(token)
	require.NoError(t, err)
}

func TestNewSignerEdDSARejectsBadPEM(t *testing.T) {
	_, err := NewSignerEdDSA("bad", []byte("not pem at all"))
	require.Error(t, err)

	_, err = NewSignerEdDSA("bad", []byte("-----BEGIN CERTIFICATE-----\nAAAA\n-----END CERTIFICATE-----\n"))
	require.Error(t, err)
}
