package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-port-ops/internal/app"
	"github.com/MKhiriev/go-port-ops/internal/logger"
	"github.com/MKhiriev/go-port-ops/internal/stubapi"
	"github.com/MKhiriev/go-port-ops/internal/utils"
	"github.com/MKhiriev/go-port-ops/models"
)

// decodeJSON decodes the request body into v. On failure it answers 400 and
// returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.backend.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeAuthResponse(w, r, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.backend.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", user.ID).Msg("user successfully logged in")
	h.writeAuthResponse(w, r, user, http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	token, err := h.backend.ForgotPassword(r.Context(), req.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// no mail transport; the reset token goes to the server log
	if token != "" {
		logger.FromRequest(r).Info().Str("reset_token", token).Msg("password reset token issued")
	}

	writeMessage(w, app.MsgResetLinkSent, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.backend.ResetPassword(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, app.MsgPasswordReset, http.StatusOK)
}

func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	user, err := h.backend.GetUser(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, stubapi.ErrTokenIsExpiredOrInvalid)
		return
	}

	h.writeAuthResponse(w, r, user, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.backend.GetUser(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.backend.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{Token: token, User: user}, status)
}
