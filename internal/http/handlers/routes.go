package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the public API under /api. The optional authLimit
// middleware throttles the credential endpoints only.
func (h *Handlers) Routes(r chi.Router, authLimit func(http.Handler) http.Handler) {
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			if authLimit != nil {
				r.Use(authLimit)
			}
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
		})

		r.Route("/rooms", func(r chi.Router) {
			r.Get("/", h.ListRooms)
			r.Post("/", h.CreateRoom)
			r.Get("/{slug}", h.GetRoomBySlug)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", h.CreateBooking)
			r.Get("/user/{user_id}", h.ListUserBookings)
		})
	})
}
