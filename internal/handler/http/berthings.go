package http

import (
	"net/http"

	"github.com/MKhiriev/go-port-ops/internal/utils"
	"github.com/MKhiriev/go-port-ops/models"
)

func (h *Handler) listBerthings(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.backend.ListBerthings(r.Context()), http.StatusOK)
}

func (h *Handler) currentBerthings(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.backend.CurrentBerthings(r.Context()), http.StatusOK)
}

func (h *Handler) myBerthingRequests(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.backend.BerthingsRequestedBy(r.Context(), userID(r)), http.StatusOK)
}

func (h *Handler) berthingsByShip(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.backend.BerthingsByShip(r.Context(), pathID(r)), http.StatusOK)
}

func (h *Handler) berthingsByDock(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.backend.BerthingsByDock(r.Context(), pathID(r)), http.StatusOK)
}

func (h *Handler) getBerthing(w http.ResponseWriter, r *http.Request) {
	br, err := h.backend.GetBerthing(r.Context(), pathID(r))
	writeResult(w, r, br, err, http.StatusOK)
}

func (h *Handler) requestBerthing(w http.ResponseWriter, r *http.Request) {
	var br models.Berthing
	if !decodeJSON(w, r, &br) {
		return
	}

	created, err := h.backend.RequestBerthing(r.Context(), userID(r), br)
	writeResult(w, r, created, err, http.StatusCreated)
}

func (h *Handler) updateBerthing(w http.ResponseWriter, r *http.Request) {
	var br models.Berthing
	if !decodeJSON(w, r, &br) {
		return
	}

	updated, err := h.backend.UpdateBerthing(r.Context(), pathID(r), br)
	writeResult(w, r, updated, err, http.StatusOK)
}

func (h *Handler) setBerthingStatus(w http.ResponseWriter, r *http.Request) {
	var update models.BerthingStatusUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	updated, err := h.backend.SetBerthingStatus(r.Context(), pathID(r), update)
	writeResult(w, r, updated, err, http.StatusOK)
}

func (h *Handler) deleteBerthing(w http.ResponseWriter, r *http.Request) {
	writeDeleted(w, r, h.backend.DeleteBerthing(r.Context(), pathID(r)))
}
