package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-port-ops/internal/utils"
)

// writeResult answers with v or with the mapped error.
func writeResult[T any](w http.ResponseWriter, r *http.Request, v T, err error, status int) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, v, status)
}

// writeDeleted answers 204 or the mapped error.
func writeDeleted(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) string {
	return chi.URLParam(r, "id")
}
