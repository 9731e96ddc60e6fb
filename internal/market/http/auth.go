package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kolmarket/kolmarket/internal/market/service"
	"github.com/kolmarket/kolmarket/internal/market/store"
	"github.com/kolmarket/kolmarket/pkg/httpx"
	"github.com/kolmarket/kolmarket/pkg/marketsdk"
	"github.com/kolmarket/kolmarket/pkg/slogx"
)

type AuthHandler struct {
	UserService *service.UserService
}

// HandleRegister godoc
//
//	@Summary		Register Endpoint
//	@Description	Create a new user account and sign it in. Role defaults to "client".
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.RegisterRequest	true	"Registration request"
//	@Success		201		{object}	marketsdk.AuthResponse		"access_token, token_type, expires_in, user"
//	@Failure		400		{object}	marketsdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	marketsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req marketsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "email and password are required")
		return
	}

	session, err := h.UserService.Register(ctx, req.Email, req.FullName, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid_request", "Invalid registration parameters")
		case errors.Is(err, service.ErrEmailTaken):
			writeError(w, http.StatusConflict, "conflict", "Email already registered")
		default:
			log.Error("failed to register user", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to register")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, sessionResponse(session))
}

// HandleLogin godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate with email and password, returning a bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.LoginRequest	true	"Login request"
//	@Success		200		{object}	marketsdk.AuthResponse	"access_token, token_type, expires_in, user"
//	@Failure		400		{object}	marketsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	marketsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req marketsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	session, err := h.UserService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
		default:
			log.Error("failed to authenticate user", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to login")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sessionResponse(session))
}

// HandleMe godoc
//
//	@Summary		Current User Endpoint
//	@Description	Return the account the bearer token was issued for.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	marketsdk.User			"id, email, full_name, role, created_at"
//	@Failure		401	{object}	marketsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Account no longer exists")
			return
		}
		log.Error("failed to fetch user", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to fetch user")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKUser(user))
}

func sessionResponse(s service.Session) marketsdk.AuthResponse {
	return marketsdk.AuthResponse{
		AccessToken: s.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   s.ExpiresIn,
		User:        toSDKUser(s.User),
	}
}
