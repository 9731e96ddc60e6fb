package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kolmarket/kolmarket/internal/market/service"
	"github.com/kolmarket/kolmarket/internal/market/store"
	"github.com/kolmarket/kolmarket/pkg/httpx"
	"github.com/kolmarket/kolmarket/pkg/marketsdk"
	"github.com/kolmarket/kolmarket/pkg/slogx"
)

type CampaignsHandler struct {
	CampaignService *service.CampaignService
}

// HandleList godoc
//
//	@Summary		List Campaigns
//	@Description	List the caller's campaigns, newest first.
//	@Tags			Campaigns
//	@Produce		json
//	@Success		200	{array}		marketsdk.Campaign		"campaigns"
//	@Failure		401	{object}	marketsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/campaigns [get].
func (h *CampaignsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := callerFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	campaigns, err := h.CampaignService.ListCampaigns(ctx, caller)
	if err != nil {
		log.Error("failed to list campaigns", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to list campaigns")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKCampaigns(campaigns))
}

// HandleCreate godoc
//
//	@Summary		Create Campaign
//	@Description	Create a campaign owned by the caller. Status defaults to "draft".
//	@Tags			Campaigns
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.CampaignRequest	true	"Campaign fields"
//	@Success		201		{object}	marketsdk.Campaign			"campaign"
//	@Failure		400		{object}	marketsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/campaigns [post].
func (h *CampaignsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := callerFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	var req marketsdk.CampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	campaign, err := h.CampaignService.CreateCampaign(ctx, caller, campaignInput(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid_request", "Invalid campaign parameters")
		default:
			log.Error("failed to create campaign", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to create campaign")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toSDKCampaign(campaign))
}

// HandleGet godoc
//
//	@Summary		Get Campaign
//	@Description	Fetch one campaign by id. Callers only see their own campaigns; admins see all.
//	@Tags			Campaigns
//	@Produce		json
//	@Param			id	path		string					true	"Campaign id"
//	@Success		200	{object}	marketsdk.Campaign		"campaign"
//	@Failure		403	{object}	marketsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	marketsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/campaigns/{id} [get].
func (h *CampaignsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := callerFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	campaign, err := h.CampaignService.GetCampaign(ctx, caller, r.PathValue("id"))
	if err != nil {
		writeCampaignError(w, log, err, "Failed to fetch campaign")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKCampaign(campaign))
}

// HandleUpdate godoc
//
//	@Summary		Update Campaign
//	@Description	Partially update a campaign; absent fields keep their current values. Owner or admin only.
//	@Tags			Campaigns
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Campaign id"
//	@Param			request	body		marketsdk.CampaignRequest	true	"Campaign fields"
//	@Success		200		{object}	marketsdk.Campaign			"campaign"
//	@Failure		400		{object}	marketsdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	marketsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	marketsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/campaigns/{id} [put].
func (h *CampaignsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := callerFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	var req marketsdk.CampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	campaign, err := h.CampaignService.UpdateCampaign(ctx, caller, r.PathValue("id"), campaignInput(req))
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", "Invalid campaign parameters")
			return
		}
		writeCampaignError(w, log, err, "Failed to update campaign")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKCampaign(campaign))
}

// HandleDelete godoc
//
//	@Summary		Delete Campaign
//	@Description	Remove a campaign. Owner or admin only.
//	@Tags			Campaigns
//	@Param			id	path	string	true	"Campaign id"
//	@Success		204	"deleted"
//	@Failure		403	{object}	marketsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	marketsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/campaigns/{id} [delete].
func (h *CampaignsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := callerFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	if err := h.CampaignService.DeleteCampaign(ctx, caller, r.PathValue("id")); err != nil {
		writeCampaignError(w, log, err, "Failed to delete campaign")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeCampaignError(w http.ResponseWriter, log *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Campaign not found")
	case errors.Is(err, service.ErrNotOwner):
		writeError(w, http.StatusForbidden, "forbidden", "Campaign belongs to another user")
	default:
		log.Error("campaign operation failed", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", fallback)
	}
}

func campaignInput(req marketsdk.CampaignRequest) service.CampaignInput {
	return service.CampaignInput{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
		KOLID:       req.KOLID,
	}
}
