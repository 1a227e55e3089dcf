package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roomly/roomly-backend/internal/domain"
	"github.com/roomly/roomly-backend/internal/http/response"
)

func (h *Handlers) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	resp, err := h.bookingService.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, errMessages{notFound: "Room not found"})
		return
	}

	response.WriteJSON(w, http.StatusCreated, resp)
}

// ListUserBookings returns the user's bookings, oldest last. Unknown
// user ids yield an empty list rather than 404.
func (h *Handlers) ListUserBookings(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	bookings, err := h.bookingService.ListByUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, errMessages{})
		return
	}

	response.WriteJSON(w, http.StatusOK, bookings)
}
