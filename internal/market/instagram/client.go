// Package instagram talks to the Instagram Basic Display API: building the
// authorization URL, exchanging a code for an access token, and fetching
// basic profile fields. It never refreshes tokens.
package instagram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	ErrNotConfigured = errors.New("instagram: app credentials not configured")
	ErrUpstream      = errors.New("instagram: upstream API error")
)

const (
	authorizeURL = "https://api.instagram.com/oauth/authorize"
	tokenURL     = "https://api.instagram.com/oauth/access_token"
	graphBaseURL = "https://graph.instagram.com"
)

type Config struct {
	AppID       string
	AppSecret   string
	RedirectURI string
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Token is the result of a code exchange.
type Token struct {
	AccessToken string
	UserID      string
}

// Profile holds the basic-display fields we read. follower_count is not
// part of the basic fields and defaults to zero when absent.
type Profile struct {
	UserID        string
	Username      string
	AccountType   string
	MediaCount    int64
	FollowerCount int64
}

// AuthURL builds the authorization URL the browser is redirected to. Pure
// string construction; fails only when no app id is configured.
func (c *Client) AuthURL() (string, error) {
	if c.cfg.AppID == "" {
		return "", ErrNotConfigured
	}

	query := url.Values{}
	query.Set("client_id", c.cfg.AppID)
	query.Set("redirect_uri", c.cfg.RedirectURI)
	query.Set("scope", "user_profile,user_media")
	query.Set("response_type", "code")

	return authorizeURL + "?" + query.Encode(), nil
}

// ExchangeCode trades an authorization code for a short-lived access token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (Token, error) {
	if c.cfg.AppID == "" || c.cfg.AppSecret == "" {
		return Token{}, ErrNotConfigured
	}

	form := url.Values{}
	form.Set("client_id", c.cfg.AppID)
	form.Set("client_secret", c.cfg.AppSecret)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", c.cfg.RedirectURI)
	form.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Token{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Token{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Token{}, fmt.Errorf("%w: token exchange status %d", ErrUpstream, resp.StatusCode)
	}

	var payload struct {
		AccessToken string          `json:"access_token"`
		UserID      json.RawMessage `json:"user_id"` // the API returns a number here
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Token{}, fmt.Errorf("%w: decode token response: %v", ErrUpstream, err)
	}
	if payload.AccessToken == "" {
		return Token{}, fmt.Errorf("%w: missing access token", ErrUpstream)
	}

	return Token{
		AccessToken: payload.AccessToken,
		UserID:      strings.Trim(string(payload.UserID), `"`),
	}, nil
}

// FetchProfile reads the basic profile fields for an authorized user.
func (c *Client) FetchProfile(ctx context.Context, userID, accessToken string) (Profile, error) {
	query := url.Values{}
	query.Set("fields", "id,username,account_type,media_count")
	query.Set("access_token", accessToken)

	endpoint := graphBaseURL + "/" + url.PathEscape(userID) + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Profile{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Profile{}, fmt.Errorf("%w: profile status %d", ErrUpstream, resp.StatusCode)
	}

	var payload struct {
		ID            string `json:"id"`
		Username      string `json:"username"`
		AccountType   string `json:"account_type"`
		MediaCount    int64  `json:"media_count"`
		FollowerCount int64  `json:"followers_count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Profile{}, fmt.Errorf("%w: decode profile response: %v", ErrUpstream, err)
	}

	id := payload.ID
	if id == "" {
		id = userID
	}
	return Profile{
		UserID:        id,
		Username:      payload.Username,
		AccountType:   payload.AccountType,
		MediaCount:    payload.MediaCount,
		FollowerCount: payload.FollowerCount,
	}, nil
}
