package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/roomly/roomly-backend/internal/domain"
	"github.com/roomly/roomly-backend/internal/http/response"
	"github.com/roomly/roomly-backend/internal/service"
	"github.com/roomly/roomly-backend/pkg/auth"
	"github.com/roomly/roomly-backend/pkg/config"
	"github.com/roomly/roomly-backend/pkg/logger"
)

type Handlers struct {
	authService    service.AuthService
	roomService    service.RoomService
	bookingService service.BookingService
	config         *config.Config
}

func New(
	authService service.AuthService,
	roomService service.RoomService,
	bookingService service.BookingService,
	config *config.Config,
) *Handlers {
	return &Handlers{
		authService:    authService,
		roomService:    roomService,
		bookingService: bookingService,
		config:         config,
	}
}

// WithUser annotates the request context with the user id from a
// Bearer token when one is present. All routes stay public; the id is
// only used for request-scoped logging.
func (h *Handlers) WithUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := auth.Parse(token, h.config.Auth.JWTSecret); err == nil {
				ctx := context.WithValue(r.Context(), logger.UserIDKey, claims.UserID)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// errMessages carries the resource-specific wording for the shared
// error taxonomy.
type errMessages struct {
	conflict string
	notFound string
}

// writeServiceError maps the error taxonomy shared by all services.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msgs errMessages) {
	if msgs.notFound == "" {
		msgs.notFound = "Not found"
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		response.WriteValidation(w, "Invalid input", validationErr.Fields)
	case errors.Is(err, domain.ErrConflict):
		response.Conflict(w, msgs.conflict)
	case errors.Is(err, domain.ErrNotFound):
		response.NotFound(w, msgs.notFound)
	case errors.Is(err, domain.ErrInvalidCredentials):
		response.Unauthorized(w, "Invalid email or password")
	default:
		logger.ErrorContext(r.Context(), "Unexpected service error", "error", err, "path", r.URL.Path)
		response.InternalError(w, "Internal server error")
	}
}
