package market_test

import (
	"testing"

	"github.com/kolmarket/kolmarket/pkg/marketsdk"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupMarketContainer(t)
	defer cleanup()

	client := marketsdk.NewSDKClient(baseURL)

	livez, err := client.Livez(t.Context())
	assertHealthy(t, livez, err)
	require.NotEmpty(t, livez.Version)
	require.Nil(t, livez.Checks)

	readyz, err := client.Readyz(t.Context())
	assertHealthy(t, readyz, err)
	require.NotNil(t, readyz.Checks)
	require.Equal(t, "ok", readyz.Checks.Database)
}

func TestRegisterLoginMe(t *testing.T) {
	baseURL, cleanup := setupMarketContainer(t)
	defer cleanup()

	client := marketsdk.NewSDKClient(baseURL)

	session, err := client.Register(t.Context(), marketsdk.RegisterRequest{
		Email:    "alice@example.com",
		FullName: "Alice",
		Password: "Password1!",
	})
	require.NoError(t, err)
	require.NotEmpty(t, session.AccessToken())
	require.Equal(t, "alice@example.com", session.User().Email)
	require.Equal(t, "client", session.User().Role)

	t.Logf("Registered user: %s", session.User().ID)

	// A fresh login yields a working session for the same account.
	login, err := client.Login(t.Context(), "alice@example.com", "Password1!")
	require.NoError(t, err)
	require.Equal(t, session.User().ID, login.User().ID)

	me, err := login.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", me.Email)
	require.Equal(t, "Alice", me.FullName)
}

func TestAuthFailures(t *testing.T) {
	baseURL, cleanup := setupMarketContainer(t)
	defer cleanup()

	client := marketsdk.NewSDKClient(baseURL)

	_, err := client.Register(t.Context(), marketsdk.RegisterRequest{
		Email:    "alice@example.com",
		FullName: "Alice",
		Password: "Password1!",
	})
	require.NoError(t, err)

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := client.Register(t.Context(), marketsdk.RegisterRequest{
			Email:    "ALICE@example.com",
			FullName: "Alice Again",
			Password: "Password2!",
		})
		assertAPIError(t, err, 409, "conflict")
	})

	t.Run("MissingPassword", func(t *testing.T) {
		_, err := client.Register(t.Context(), marketsdk.RegisterRequest{
			Email:    "bob@example.com",
			FullName: "Bob",
		})
		assertAPIError(t, err, 400, "invalid_request")
	})

	t.Run("InvalidRole", func(t *testing.T) {
		_, err := client.Register(t.Context(), marketsdk.RegisterRequest{
			Email:    "bob@example.com",
			FullName: "Bob",
			Password: "Password1!",
			Role:     "superuser",
		})
		assertAPIError(t, err, 400, "invalid_request")
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := client.Login(t.Context(), "alice@example.com", "nope")
		assertAPIError(t, err, 401, "invalid_credentials")
	})

	t.Run("UnknownAccount", func(t *testing.T) {
		_, err := client.Login(t.Context(), "nobody@example.com", "Password1!")
		assertAPIError(t, err, 401, "invalid_credentials")
	})

	t.Run("MeWithoutToken", func(t *testing.T) {
		anon := client.NewSessionFromToken("garbage")
		_, err := anon.Me(t.Context())
		require.Error(t, err)
		var apiErr *marketsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 401, apiErr.StatusCode)
	})
}
