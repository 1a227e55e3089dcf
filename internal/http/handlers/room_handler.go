package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roomly/roomly-backend/internal/domain"
	"github.com/roomly/roomly-backend/internal/http/response"
)

// ListRooms returns every room. No pagination or filtering.
func (h *Handlers) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.roomService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, errMessages{})
		return
	}

	response.WriteJSON(w, http.StatusOK, rooms)
}

func (h *Handlers) GetRoomBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	room, err := h.roomService.GetBySlug(r.Context(), slug)
	if err != nil {
		writeServiceError(w, r, err, errMessages{notFound: "Room not found"})
		return
	}

	response.WriteJSON(w, http.StatusOK, room)
}

func (h *Handlers) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	resp, err := h.roomService.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, errMessages{conflict: "A room with this slug already exists"})
		return
	}

	response.WriteJSON(w, http.StatusCreated, resp)
}
