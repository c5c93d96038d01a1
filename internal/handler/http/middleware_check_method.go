// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-port-ops/internal/app"
)

// CheckHTTPMethod returns the handler registered as the router's
// MethodNotAllowed and NotFound handler.
//
// A request whose path is known but whose method is not registered is
// answered with 404 Not Found instead of chi's default 405, hiding which
// methods a route supports. If the method does match (the router was
// reached through another path, e.g. a mounted subrouter), the request is
// forwarded to the router's normal pipeline.
//
// Every 404 carries a {"message": ...} body like the rest of the API.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		writeMessage(w, app.MsgNotFound, http.StatusNotFound)
	}
}
