package http

import (
	"net/http"

	"github.com/MKhiriev/go-port-ops/internal/utils"
	"github.com/MKhiriev/go-port-ops/models"
)

func (h *Handler) listDocks(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.backend.ListDocks(r.Context()), http.StatusOK)
}

func (h *Handler) getDock(w http.ResponseWriter, r *http.Request) {
	dock, err := h.backend.GetDock(r.Context(), pathID(r))
	writeResult(w, r, dock, err, http.StatusOK)
}

func (h *Handler) createDock(w http.ResponseWriter, r *http.Request) {
	var dock models.Dock
	if !decodeJSON(w, r, &dock) {
		return
	}

	created, err := h.backend.CreateDock(r.Context(), dock)
	writeResult(w, r, created, err, http.StatusCreated)
}

func (h *Handler) updateDock(w http.ResponseWriter, r *http.Request) {
	var dock models.Dock
	if !decodeJSON(w, r, &dock) {
		return
	}

	updated, err := h.backend.UpdateDock(r.Context(), pathID(r), dock)
	writeResult(w, r, updated, err, http.StatusOK)
}

func (h *Handler) deleteDock(w http.ResponseWriter, r *http.Request) {
	writeDeleted(w, r, h.backend.DeleteDock(r.Context(), pathID(r)))
}
