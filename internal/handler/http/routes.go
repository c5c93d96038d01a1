package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router of the stub API. Paths mirror the client endpoint
// registry under /api.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)

		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/forgot-password", h.forgotPassword)
		r.Post("/api/auth/reset-password", h.resetPassword)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/refresh-token", h.refreshToken)
		r.Get("/api/auth/me", h.me)

		r.Get("/api/docks", h.listDocks)
		r.Post("/api/docks", h.createDock)
		r.Get("/api/docks/{id}", h.getDock)
		r.Put("/api/docks/{id}", h.updateDock)
		r.Delete("/api/docks/{id}", h.deleteDock)

		r.Get("/api/ships", h.listShips)
		r.Post("/api/ships", h.createShip)
		r.Get("/api/ships/search", h.searchShips)
		r.Get("/api/ships/{id}", h.getShip)
		r.Put("/api/ships/{id}", h.updateShip)
		r.Delete("/api/ships/{id}", h.deleteShip)

		r.Get("/api/berthings", h.listBerthings)
		r.Post("/api/berthings", h.requestBerthing)
		r.Get("/api/berthings/current", h.currentBerthings)
		r.Get("/api/berthings/my-requests", h.myBerthingRequests)
		r.Get("/api/berthings/ship/{id}", h.berthingsByShip)
		r.Get("/api/berthings/dock/{id}", h.berthingsByDock)
		r.Get("/api/berthings/{id}", h.getBerthing)
		r.Put("/api/berthings/{id}", h.updateBerthing)
		r.Patch("/api/berthings/{id}/status", h.setBerthingStatus)
		r.Delete("/api/berthings/{id}", h.deleteBerthing)

		r.Get("/api/users", h.listUsers)
		r.Get("/api/users/profile", h.getProfile)
		r.Put("/api/users/profile", h.updateProfile)
		r.Put("/api/users/change-password", h.changePassword)
		r.Get("/api/users/{id}", h.getUser)
		r.Delete("/api/users/{id}", h.deleteUser)
	})

	notFound := CheckHTTPMethod(router)
	router.MethodNotAllowed(notFound)
	router.NotFound(notFound)

	return router
}
