package http

import (
	"net/http"

	"github.com/kolmarket/kolmarket/internal/market/service"
	"github.com/kolmarket/kolmarket/pkg/httpx"
	"github.com/kolmarket/kolmarket/pkg/marketsdk"
	"github.com/kolmarket/kolmarket/pkg/slogx"
)

type StatsHandler struct {
	StatsService *service.StatsService
}

// ServeHTTP godoc
//
//	@Summary		Dashboard Stats Endpoint
//	@Description	Return the total profile count plus the caller's campaign counts.
//	@Tags			Stats
//	@Produce		json
//	@Success		200	{object}	marketsdk.StatsResponse	"total_kols, total_campaigns, active_campaigns"
//	@Failure		401	{object}	marketsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/stats [get].
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	stats, err := h.StatsService.GetStats(ctx, userID)
	if err != nil {
		log.Error("failed to fetch stats", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to fetch stats")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, marketsdk.StatsResponse{
		TotalKOLs:       stats.TotalKOLs,
		TotalCampaigns:  stats.TotalCampaigns,
		ActiveCampaigns: stats.ActiveCampaigns,
	})
}
