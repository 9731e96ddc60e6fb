package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/kolmarket/kolmarket/internal/market/domain"
	"github.com/kolmarket/kolmarket/internal/market/service"
	"github.com/kolmarket/kolmarket/internal/market/store"
	"github.com/kolmarket/kolmarket/pkg/httpx"
	"github.com/kolmarket/kolmarket/pkg/marketsdk"
	"github.com/kolmarket/kolmarket/pkg/slogx"
)

type KOLsHandler struct {
	KOLService *service.KOLService
}

// HandleList godoc
//
//	@Summary		List Influencer Profiles
//	@Description	List profiles, optionally filtered by category, platform, minimum followers and maximum price. Filters compose with AND.
//	@Tags			KOLs
//	@Produce		json
//	@Param			category		query		string					false	"Category equality filter"
//	@Param			platform		query		string					false	"Platform equality filter"
//	@Param			min_followers	query		int						false	"Minimum follower count"
//	@Param			max_price		query		number					false	"Maximum price per post"
//	@Success		200				{array}		marketsdk.KOL			"profiles"
//	@Failure		400				{object}	marketsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/kols [get].
func (h *KOLsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	filter, err := parseKOLFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	kols, err := h.KOLService.ListKOLs(ctx, filter)
	if err != nil {
		log.Error("failed to list kols", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to list profiles")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKKOLs(kols))
}

// HandleGet godoc
//
//	@Summary		Get Influencer Profile
//	@Description	Fetch one profile by id.
//	@Tags			KOLs
//	@Produce		json
//	@Param			id	path		string					true	"Profile id"
//	@Success		200	{object}	marketsdk.KOL			"profile"
//	@Failure		404	{object}	marketsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/kols/{id} [get].
func (h *KOLsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	kol, err := h.KOLService.GetKOL(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "Profile not found")
			return
		}
		log.Error("failed to fetch kol", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to fetch profile")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKKOL(kol))
}

// HandleCreate godoc
//
//	@Summary		Create Influencer Profile
//	@Description	Create a profile directly. This is an admin-only operation; invited influencers come in through the invitation flow instead.
//	@Tags			KOLs
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.KOLRequest	true	"Profile fields"
//	@Success		201		{object}	marketsdk.KOL			"profile"
//	@Failure		400		{object}	marketsdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	marketsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/kols [post].
func (h *KOLsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req marketsdk.KOLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	kol, err := h.KOLService.CreateKOL(ctx, kolInput(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid_request", "name and email are required")
		case errors.Is(err, service.ErrKOLEmailTaken):
			writeError(w, http.StatusConflict, "conflict", "A profile with this email already exists")
		default:
			log.Error("failed to create kol", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to create profile")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toSDKKOL(kol))
}

// HandleUpdate godoc
//
//	@Summary		Update Influencer Profile
//	@Description	Partially update a profile; absent fields keep their current values. Admin only.
//	@Tags			KOLs
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Profile id"
//	@Param			request	body		marketsdk.KOLRequest	true	"Profile fields"
//	@Success		200		{object}	marketsdk.KOL			"profile"
//	@Failure		400		{object}	marketsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	marketsdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	marketsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/kols/{id} [put].
func (h *KOLsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req marketsdk.KOLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	kol, err := h.KOLService.UpdateKOL(ctx, r.PathValue("id"), kolInput(req))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found", "Profile not found")
		case errors.Is(err, service.ErrKOLEmailTaken):
			writeError(w, http.StatusConflict, "conflict", "A profile with this email already exists")
		default:
			log.Error("failed to update kol", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to update profile")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKKOL(kol))
}

// HandleDelete godoc
//
//	@Summary		Delete Influencer Profile
//	@Description	Remove a profile. Campaigns referencing it keep running with the link cleared. Admin only.
//	@Tags			KOLs
//	@Param			id	path	string	true	"Profile id"
//	@Success		204	"deleted"
//	@Failure		404	{object}	marketsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/kols/{id} [delete].
func (h *KOLsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.KOLService.DeleteKOL(ctx, r.PathValue("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "Profile not found")
			return
		}
		log.Error("failed to delete kol", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to delete profile")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func kolInput(req marketsdk.KOLRequest) service.KOLInput {
	return service.KOLInput{
		Name:           req.Name,
		Email:          req.Email,
		Category:       req.Category,
		Platform:       req.Platform,
		Followers:      req.Followers,
		EngagementRate: req.EngagementRate,
		Bio:            req.Bio,
		ProfileImage:   req.ProfileImage,
		PricePerPost:   req.PricePerPost,
		Verified:       req.Verified,
	}
}

func parseKOLFilter(r *http.Request) (domain.KOLFilter, error) {
	var f domain.KOLFilter
	q := r.URL.Query()

	f.Category = q.Get("category")
	f.Platform = q.Get("platform")

	if raw := q.Get("min_followers"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return domain.KOLFilter{}, errors.New("min_followers must be a non-negative integer")
		}
		f.MinFollowers = v
	}
	if raw := q.Get("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return domain.KOLFilter{}, errors.New("max_price must be a non-negative number")
		}
		f.MaxPrice = v
	}
	return f, nil
}
