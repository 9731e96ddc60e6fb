package marketsdk

import (
	"context"
	"net/http"
)

// CreateInvite issues an invite for an email address. Admin only.
func (s *Session) CreateInvite(ctx context.Context, email string) (CreateInviteResponse, error) {
	resp, err := s.postJSON(ctx, "/v1/invites", CreateInviteRequest{Email: email})
	if err != nil {
		return CreateInviteResponse{}, err
	}

	var out CreateInviteResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return CreateInviteResponse{}, err
	}
	return out, nil
}

// ListInvites returns every invite, newest first. Admin only.
func (s *Session) ListInvites(ctx context.Context) ([]Invite, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/invites", nil)
	if err != nil {
		return nil, err
	}

	var invites []Invite
	if err := decodeJSON(resp, &invites, http.StatusOK); err != nil {
		return nil, err
	}
	return invites, nil
}
