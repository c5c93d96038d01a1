package http

import (
	"net/http"

	"github.com/MKhiriev/go-port-ops/internal/utils"
	"github.com/MKhiriev/go-port-ops/models"
)

func (h *Handler) listShips(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.backend.ListShips(r.Context()), http.StatusOK)
}

func (h *Handler) searchShips(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := models.ShipSearch{
		Query: q.Get("q"),
		Type:  models.ShipType(q.Get("type")),
		Flag:  q.Get("flag"),
	}

	utils.WriteJSON(w, h.backend.SearchShips(r.Context(), search), http.StatusOK)
}

func (h *Handler) getShip(w http.ResponseWriter, r *http.Request) {
	ship, err := h.backend.GetShip(r.Context(), pathID(r))
	writeResult(w, r, ship, err, http.StatusOK)
}

func (h *Handler) createShip(w http.ResponseWriter, r *http.Request) {
	var ship models.Ship
	if !decodeJSON(w, r, &ship) {
		return
	}

	created, err := h.backend.CreateShip(r.Context(), userID(r), ship)
	writeResult(w, r, created, err, http.StatusCreated)
}

func (h *Handler) updateShip(w http.ResponseWriter, r *http.Request) {
	var ship models.Ship
	if !decodeJSON(w, r, &ship) {
		return
	}

	updated, err := h.backend.UpdateShip(r.Context(), pathID(r), ship)
	writeResult(w, r, updated, err, http.StatusOK)
}

func (h *Handler) deleteShip(w http.ResponseWriter, r *http.Request) {
	writeDeleted(w, r, h.backend.DeleteShip(r.Context(), pathID(r)))
}
