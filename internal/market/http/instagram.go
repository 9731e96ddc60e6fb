package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kolmarket/kolmarket/internal/market/instagram"
	"github.com/kolmarket/kolmarket/pkg/httpx"
	"github.com/kolmarket/kolmarket/pkg/marketsdk"
	"github.com/kolmarket/kolmarket/pkg/slogx"
)

type InstagramHandler struct {
	Client *instagram.Client
}

// HandleAuthURL godoc
//
//	@Summary		Instagram Authorization URL
//	@Description	Build the URL the invitee's browser is redirected to for the social authorization step.
//	@Tags			Instagram
//	@Produce		json
//	@Success		200	{object}	marketsdk.InstagramAuthURLResponse	"auth_url"
//	@Failure		500	{object}	marketsdk.ErrorResponse				"error, error_description"
//	@Router			/v1/instagram/auth-url [get].
func (h *InstagramHandler) HandleAuthURL(w http.ResponseWriter, r *http.Request) {
	authURL, err := h.Client.AuthURL()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", "Instagram integration is not configured")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, marketsdk.InstagramAuthURLResponse{AuthURL: authURL})
}

// HandleExchangeToken godoc
//
//	@Summary		Instagram Code Exchange
//	@Description	Trade an authorization code for an access token and fetch the basic profile fields in one call.
//	@Tags			Instagram
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.ExchangeTokenRequest	true	"Authorization code"
//	@Success		200		{object}	marketsdk.ExchangeTokenResponse	"access_token, user_id, username, follower_count"
//	@Failure		400		{object}	marketsdk.ErrorResponse			"error, error_description"
//	@Failure		502		{object}	marketsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/instagram/exchange-token [post].
func (h *InstagramHandler) HandleExchangeToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req marketsdk.ExchangeTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}
	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "code is required")
		return
	}

	token, err := h.Client.ExchangeCode(ctx, req.Code)
	if err != nil {
		writeInstagramError(w, log, err, "Failed to exchange code")
		return
	}

	profile, err := h.Client.FetchProfile(ctx, token.UserID, token.AccessToken)
	if err != nil {
		writeInstagramError(w, log, err, "Failed to fetch profile")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, marketsdk.ExchangeTokenResponse{
		AccessToken:   token.AccessToken,
		UserID:        profile.UserID,
		Username:      profile.Username,
		AccountType:   profile.AccountType,
		MediaCount:    profile.MediaCount,
		FollowerCount: profile.FollowerCount,
	})
}

func writeInstagramError(w http.ResponseWriter, log *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, instagram.ErrNotConfigured):
		writeError(w, http.StatusInternalServerError, "server_error", "Instagram integration is not configured")
	case errors.Is(err, instagram.ErrUpstream):
		log.Warn("instagram upstream failure", "err", err)
		writeError(w, http.StatusBadGateway, "upstream_error", fallback)
	default:
		log.Error("instagram call failed", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", fallback)
	}
}
