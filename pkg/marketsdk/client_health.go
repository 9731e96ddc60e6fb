package marketsdk

import (
	"context"
	"net/http"
)

// Livez checks the liveness endpoint.
func (c *SDKClient) Livez(ctx context.Context) (HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil)
	if err != nil {
		return HealthResponse{}, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return HealthResponse{}, err
	}
	return health, nil
}

// Readyz checks the readiness endpoint, including the database probe.
func (c *SDKClient) Readyz(ctx context.Context) (HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil)
	if err != nil {
		return HealthResponse{}, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return HealthResponse{}, err
	}
	return health, nil
}
