package marketsdk

import (
	"context"
	"net/http"
)

// InstagramAuthURL returns the URL the browser is redirected to for the
// social authorization step.
func (c *SDKClient) InstagramAuthURL(ctx context.Context) (string, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/instagram/auth-url", nil)
	if err != nil {
		return "", err
	}

	var out InstagramAuthURLResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.AuthURL, nil
}

// InstagramExchangeToken trades an authorization code for an access token
// plus the basic profile fields.
func (c *SDKClient) InstagramExchangeToken(ctx context.Context, code string) (ExchangeTokenResponse, error) {
	resp, err := c.postJSON(ctx, "/v1/instagram/exchange-token", ExchangeTokenRequest{Code: code})
	if err != nil {
		return ExchangeTokenResponse{}, err
	}

	var out ExchangeTokenResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return ExchangeTokenResponse{}, err
	}
	return out, nil
}
