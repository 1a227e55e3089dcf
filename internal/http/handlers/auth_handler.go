package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/roomly/roomly-backend/internal/domain"
	"github.com/roomly/roomly-backend/internal/http/response"
)

// Register handles user registration. No token is issued here; the
// client logs in afterwards.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	if _, err := h.authService.Register(r.Context(), &req); err != nil {
		writeServiceError(w, r, err, errMessages{conflict: "This email is already in use"})
		return
	}

	response.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "Account created successfully",
	})
}

// Login handles user authentication and issues a bearer token.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, errMessages{})
		return
	}

	response.WriteJSON(w, http.StatusOK, resp)
}
