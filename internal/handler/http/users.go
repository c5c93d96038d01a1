package http

import (
	"net/http"

	"github.com/MKhiriev/go-port-ops/internal/app"
	"github.com/MKhiriev/go-port-ops/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.backend.ListUsers(r.Context())
	writeResult(w, r, users, err, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.backend.GetUser(r.Context(), pathID(r))
	writeResult(w, r, user, err, http.StatusOK)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.backend.GetUser(r.Context(), userID(r))
	writeResult(w, r, user, err, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var update models.ProfileUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	user, err := h.backend.UpdateProfile(r.Context(), userID(r), update)
	writeResult(w, r, user, err, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.backend.ChangePassword(r.Context(), userID(r), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, app.MsgPasswordChanged, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	writeDeleted(w, r, h.backend.DeleteUser(r.Context(), pathID(r)))
}
