package marketsdk

import (
	"context"
	"net/http"
)

// Me fetches the account the session token belongs to.
func (s *Session) Me(ctx context.Context) (User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/auth/me", nil)
	if err != nil {
		return User{}, err
	}

	var user User
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return User{}, err
	}
	return user, nil
}

// Stats fetches the dashboard summary for the session's user.
func (s *Session) Stats(ctx context.Context) (StatsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/stats", nil)
	if err != nil {
		return StatsResponse{}, err
	}

	var stats StatsResponse
	if err := decodeJSON(resp, &stats, http.StatusOK); err != nil {
		return StatsResponse{}, err
	}
	return stats, nil
}
