package marketsdk

import (
	"context"
	"net/http"
	"net/url"
)

// VerifyInvite checks whether an invite token is still redeemable. The
// endpoint is public; the invitee calls it before registering.
func (c *SDKClient) VerifyInvite(ctx context.Context, token string) (VerifyInviteResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/invites/verify/"+url.PathEscape(token), nil)
	if err != nil {
		return VerifyInviteResponse{}, err
	}
	defer resp.Body.Close()

	// Both valid and invalid verdicts decode into the same body shape;
	// only transport-level failures surface as errors.
	var out VerifyInviteResponse
	if err := decodeBody(resp, &out); err != nil {
		return VerifyInviteResponse{}, err
	}
	return out, nil
}

// CompleteRegistration finalizes an invite with consent and optional
// social identity data, returning the materialized profile.
func (c *SDKClient) CompleteRegistration(ctx context.Context, req CompleteRegistrationRequest) (KOL, error) {
	resp, err := c.postJSON(ctx, "/v1/invites/complete", req)
	if err != nil {
		return KOL{}, err
	}

	var kol KOL
	if err := decodeJSON(resp, &kol, http.StatusOK); err != nil {
		return KOL{}, err
	}
	return kol, nil
}
