package marketsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListCampaigns returns the session user's campaigns, newest first.
func (s *Session) ListCampaigns(ctx context.Context) ([]Campaign, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/campaigns", nil)
	if err != nil {
		return nil, err
	}

	var campaigns []Campaign
	if err := decodeJSON(resp, &campaigns, http.StatusOK); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// CreateCampaign makes a campaign owned by the session user.
func (s *Session) CreateCampaign(ctx context.Context, req CampaignRequest) (Campaign, error) {
	resp, err := s.postJSON(ctx, "/v1/campaigns", req)
	if err != nil {
		return Campaign{}, err
	}

	var campaign Campaign
	if err := decodeJSON(resp, &campaign, http.StatusCreated); err != nil {
		return Campaign{}, err
	}
	return campaign, nil
}

// GetCampaign fetches one campaign by id.
func (s *Session) GetCampaign(ctx context.Context, id string) (Campaign, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/campaigns/"+url.PathEscape(id), nil)
	if err != nil {
		return Campaign{}, err
	}

	var campaign Campaign
	if err := decodeJSON(resp, &campaign, http.StatusOK); err != nil {
		return Campaign{}, err
	}
	return campaign, nil
}

// UpdateCampaign applies a partial update to a campaign.
func (s *Session) UpdateCampaign(ctx context.Context, id string, req CampaignRequest) (Campaign, error) {
	resp, err := s.putJSON(ctx, "/v1/campaigns/"+url.PathEscape(id), req)
	if err != nil {
		return Campaign{}, err
	}

	var campaign Campaign
	if err := decodeJSON(resp, &campaign, http.StatusOK); err != nil {
		return Campaign{}, err
	}
	return campaign, nil
}

// DeleteCampaign removes a campaign.
func (s *Session) DeleteCampaign(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/campaigns/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
