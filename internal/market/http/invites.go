package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kolmarket/kolmarket/internal/market/service"
	"github.com/kolmarket/kolmarket/pkg/httpx"
	"github.com/kolmarket/kolmarket/pkg/marketsdk"
	"github.com/kolmarket/kolmarket/pkg/slogx"
)

type InvitesHandler struct {
	InviteService *service.InviteService
}

// HandleCreate godoc
//
//	@Summary		Create Influencer Invite
//	@Description	Issue a time-boxed, single-use invite for an email address and email the registration link. Admin only.
//	@Description	The raw invite token appears only in this response; the server keeps a fingerprint. email_sent is advisory.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.CreateInviteRequest	true	"Invite request"
//	@Success		201		{object}	marketsdk.CreateInviteResponse	"invite, invite_token, email_sent"
//	@Failure		400		{object}	marketsdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	marketsdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	marketsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites [post].
func (h *InvitesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req marketsdk.CreateInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	result, err := h.InviteService.CreateInvite(ctx, userID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid_request", "email is required")
		case errors.Is(err, service.ErrUnauthorized):
			writeError(w, http.StatusForbidden, "forbidden", "Admin role required")
		case errors.Is(err, service.ErrActiveInviteExists):
			writeError(w, http.StatusConflict, "conflict", "An active invite already exists for this email")
		default:
			log.Error("failed to create invite", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to create invite")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, marketsdk.CreateInviteResponse{
		Invite:      toSDKInvite(result.Invite),
		InviteToken: result.Token,
		EmailSent:   result.EmailSent,
	})
}

// HandleList godoc
//
//	@Summary		List Influencer Invites
//	@Description	List every invite, newest first. Admin only.
//	@Tags			Invites
//	@Produce		json
//	@Success		200	{array}		marketsdk.Invite		"invites"
//	@Failure		403	{object}	marketsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites [get].
func (h *InvitesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	invites, err := h.InviteService.ListInvites(ctx)
	if err != nil {
		log.Error("failed to list invites", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to list invites")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKInvites(invites))
}

// HandleVerify godoc
//
//	@Summary		Verify Invite Token
//	@Description	Check whether an invite token is still redeemable. Public; the invitee calls this from the registration link.
//	@Description	Reading an invite past its deadline permanently expires it.
//	@Tags			Invites
//	@Produce		json
//	@Param			token	path		string							true	"Raw invite token"
//	@Success		200		{object}	marketsdk.VerifyInviteResponse	"valid, email"
//	@Failure		400		{object}	marketsdk.VerifyInviteResponse	"valid, error"
//	@Failure		404		{object}	marketsdk.VerifyInviteResponse	"valid, error"
//	@Router			/v1/invites/verify/{token} [get].
func (h *InvitesHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	invite, err := h.InviteService.VerifyToken(ctx, r.PathValue("token"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInviteNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, marketsdk.VerifyInviteResponse{
				Valid: false,
				Error: "invite not found",
			})
		case errors.Is(err, service.ErrInviteExpired):
			httpx.WriteJSON(w, http.StatusBadRequest, marketsdk.VerifyInviteResponse{
				Valid: false,
				Error: "invite has expired",
			})
		case errors.Is(err, service.ErrInviteUsed):
			httpx.WriteJSON(w, http.StatusBadRequest, marketsdk.VerifyInviteResponse{
				Valid: false,
				Error: "invite has already been used",
			})
		case errors.Is(err, service.ErrInvalidInput):
			httpx.WriteJSON(w, http.StatusBadRequest, marketsdk.VerifyInviteResponse{
				Valid: false,
				Error: "token is required",
			})
		default:
			log.Error("failed to verify invite", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to verify invite")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, marketsdk.VerifyInviteResponse{
		Valid: true,
		Email: invite.Email,
	})
}

// HandleComplete godoc
//
//	@Summary		Complete Influencer Registration
//	@Description	Finalize a pending invite: record consent and social identity, materialize or update the influencer profile,
//	@Description	and mark the invite completed. The profile write and the invite transition commit atomically.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.CompleteRegistrationRequest	true	"Completion payload"
//	@Success		200		{object}	marketsdk.KOL							"profile"
//	@Failure		400		{object}	marketsdk.ErrorResponse					"error, error_description"
//	@Failure		404		{object}	marketsdk.ErrorResponse					"error, error_description"
//	@Router			/v1/invites/complete [post].
func (h *InvitesHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req marketsdk.CompleteRegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	var social *service.SocialIdentity
	if req.InstagramData != nil {
		social = &service.SocialIdentity{
			UserID:       req.InstagramData.UserID,
			Username:     req.InstagramData.Username,
			AccessToken:  req.InstagramData.AccessToken,
			Followers:    req.InstagramData.Followers,
			ProfileImage: req.InstagramData.ProfileImage,
			Bio:          req.InstagramData.Bio,
		}
	}

	kol, err := h.InviteService.CompleteRegistration(ctx, req.Token, req.ConsentGiven, social)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid_request", "token is required")
		case errors.Is(err, service.ErrConsentRequired):
			writeError(w, http.StatusBadRequest, "consent_required", "Consent is required to complete registration")
		case errors.Is(err, service.ErrInviteNotFound):
			writeError(w, http.StatusNotFound, "not_found", "Invite not found")
		case errors.Is(err, service.ErrInviteExpired):
			writeError(w, http.StatusBadRequest, "expired", "Invite has expired")
		case errors.Is(err, service.ErrInviteUsed):
			writeError(w, http.StatusBadRequest, "already_used", "Invite has already been used")
		default:
			log.Error("failed to complete registration", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to complete registration")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKKOL(kol))
}
