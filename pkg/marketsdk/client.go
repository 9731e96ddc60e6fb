// Package marketsdk is a typed Go client for the marketplace API. It is
// used by the end-to-end test suite and by internal tooling.
package marketsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the marketplace service. It exposes the
// unauthenticated surface and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new marketplace client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Session is an authenticated view of the API, bound to one bearer token.
// Tokens are not refreshed; create a new session when one expires.
type Session struct {
	client      *SDKClient
	accessToken string
	user        User
}

// User returns the account the session was issued for.
func (s *Session) User() User { return s.user }

// AccessToken exposes the raw bearer token, mainly for tests.
func (s *Session) AccessToken() string { return s.accessToken }

// NewSessionFromToken wraps an existing bearer token in a Session.
func (c *SDKClient) NewSessionFromToken(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}

// Register creates an account and returns a signed-in session.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	resp, err := c.postJSON(ctx, "/v1/auth/register", req)
	if err != nil {
		return nil, err
	}

	var auth AuthResponse
	if err := decodeJSON(resp, &auth, http.StatusCreated); err != nil {
		return nil, err
	}
	return &Session{client: c, accessToken: auth.AccessToken, user: auth.User}, nil
}

// Login authenticates an existing account.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.postJSON(ctx, "/v1/auth/login", LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var auth AuthResponse
	if err := decodeJSON(resp, &auth, http.StatusOK); err != nil {
		return nil, err
	}
	return &Session{client: c, accessToken: auth.AccessToken, user: auth.User}, nil
}
