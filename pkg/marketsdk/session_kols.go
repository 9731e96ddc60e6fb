package marketsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListKOLs returns profiles matching the filter. Listing is public, so
// this lives on the client rather than the session.
func (c *SDKClient) ListKOLs(ctx context.Context, f KOLListFilter) ([]KOL, error) {
	query := url.Values{}
	if f.Category != "" {
		query.Set("category", f.Category)
	}
	if f.Platform != "" {
		query.Set("platform", f.Platform)
	}
	if f.MinFollowers > 0 {
		query.Set("min_followers", strconv.FormatInt(f.MinFollowers, 10))
	}
	if f.MaxPrice > 0 {
		query.Set("max_price", strconv.FormatFloat(f.MaxPrice, 'f', -1, 64))
	}

	path := "/v1/kols"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var kols []KOL
	if err := decodeJSON(resp, &kols, http.StatusOK); err != nil {
		return nil, err
	}
	return kols, nil
}

// GetKOL fetches one profile by id.
func (c *SDKClient) GetKOL(ctx context.Context, id string) (KOL, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/kols/"+url.PathEscape(id), nil)
	if err != nil {
		return KOL{}, err
	}

	var kol KOL
	if err := decodeJSON(resp, &kol, http.StatusOK); err != nil {
		return KOL{}, err
	}
	return kol, nil
}

// CreateKOL makes a new profile. Admin only.
func (s *Session) CreateKOL(ctx context.Context, req KOLRequest) (KOL, error) {
	resp, err := s.postJSON(ctx, "/v1/kols", req)
	if err != nil {
		return KOL{}, err
	}

	var kol KOL
	if err := decodeJSON(resp, &kol, http.StatusCreated); err != nil {
		return KOL{}, err
	}
	return kol, nil
}

// UpdateKOL applies a partial update to a profile. Admin only.
func (s *Session) UpdateKOL(ctx context.Context, id string, req KOLRequest) (KOL, error) {
	resp, err := s.putJSON(ctx, "/v1/kols/"+url.PathEscape(id), req)
	if err != nil {
		return KOL{}, err
	}

	var kol KOL
	if err := decodeJSON(resp, &kol, http.StatusOK); err != nil {
		return KOL{}, err
	}
	return kol, nil
}

// DeleteKOL removes a profile. Admin only.
func (s *Session) DeleteKOL(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/kols/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
