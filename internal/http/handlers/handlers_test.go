package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/roomly/roomly-backend/internal/domain"
	"github.com/roomly/roomly-backend/pkg/config"
)

type mockAuthService struct {
	registerFn func(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error)
	loginFn    func(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error)
}

func (m *mockAuthService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	return m.loginFn(ctx, req)
}

type mockRoomService struct {
	listFn      func(ctx context.Context) ([]domain.RoomResponse, error)
	getBySlugFn func(ctx context.Context, slug string) (*domain.RoomResponse, error)
	createFn    func(ctx context.Context, req *domain.CreateRoomRequest) (*domain.CreateRoomResponse, error)
}

func (m *mockRoomService) List(ctx context.Context) ([]domain.RoomResponse, error) {
	return m.listFn(ctx)
}

func (m *mockRoomService) GetBySlug(ctx context.Context, slug string) (*domain.RoomResponse, error) {
	return m.getBySlugFn(ctx, slug)
}

func (m *mockRoomService) Create(ctx context.Context, req *domain.CreateRoomRequest) (*domain.CreateRoomResponse, error) {
	return m.createFn(ctx, req)
}

type mockBookingService struct {
	createFn     func(ctx context.Context, req *domain.CreateBookingRequest) (*domain.CreateBookingResponse, error)
	listByUserFn func(ctx context.Context, userID string) ([]domain.BookingResponse, error)
}

func (m *mockBookingService) Create(ctx context.Context, req *domain.CreateBookingRequest) (*domain.CreateBookingResponse, error) {
	return m.createFn(ctx, req)
}

func (m *mockBookingService) ListByUser(ctx context.Context, userID string) ([]domain.BookingResponse, error) {
	return m.listByUserFn(ctx, userID)
}

func testRouter(auth *mockAuthService, rooms *mockRoomService, bookings *mockBookingService) http.Handler {
	cfg := &config.Config{
		Auth: config.AuthConfig{JWTSecret: "test-secret", TokenTTL: 24 * time.Hour},
	}
	h := New(auth, rooms, bookings, cfg)

	r := chi.NewRouter()
	r.Use(h.WithUser)
	h.Routes(r, nil)
	return r
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to decode response body %q: %v", rec.Body.String(), err)
	}
}

func TestRegisterEndpoint(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error) {
			return &domain.User{ID: "user-1", Email: req.Email}, nil
		},
	}
	router := testRouter(auth, &mockRoomService{}, &mockBookingService{})

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", map[string]string{
		"email":      "anna@example.com",
		"password":   "supersecret",
		"first_name": "Anna",
		"last_name":  "Larsson",
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]string
	decodeBody(t, rec, &body)
	if body["message"] != "Account created successfully" {
		t.Errorf("unexpected message %q", body["message"])
	}
}

func TestRegisterEndpointDuplicateEmail(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error) {
			return nil, domain.ErrConflict
		},
	}
	router := testRouter(auth, &mockRoomService{}, &mockBookingService{})

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", map[string]string{
		"email":      "anna@example.com",
		"password":   "supersecret",
		"first_name": "Anna",
		"last_name":  "Larsson",
	})

	// Duplicates report as 400, matching the public contract.
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body map[string]interface{}
	decodeBody(t, rec, &body)
	if body["error"] != "This email is already in use" {
		t.Errorf("unexpected error %q", body["error"])
	}
	if body["code"] != "CONFLICT" {
		t.Errorf("unexpected code %q", body["code"])
	}
}

func TestRegisterEndpointBadJSON(t *testing.T) {
	router := testRouter(&mockAuthService{}, &mockRoomService{}, &mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
			return &domain.LoginResponse{
				Token: "signed-token",
				User:  &domain.UserInfo{ID: "user-1", Email: req.Email, FirstName: "Anna", LastName: "Larsson"},
			}, nil
		},
	}
	router := testRouter(auth, &mockRoomService{}, &mockBookingService{})

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "anna@example.com",
		"password": "supersecret",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Token string           `json:"token"`
		User  *domain.UserInfo `json:"user"`
	}
	decodeBody(t, rec, &body)
	if body.Token != "signed-token" {
		t.Errorf("unexpected token %q", body.Token)
	}
	if body.User == nil || body.User.ID != "user-1" {
		t.Errorf("unexpected user %+v", body.User)
	}
}

func TestLoginEndpointInvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	router := testRouter(auth, &mockRoomService{}, &mockBookingService{})

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "anna@example.com",
		"password": "wrong",
	})

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var body map[string]interface{}
	decodeBody(t, rec, &body)
	if body["error"] != "Invalid email or password" {
		t.Errorf("unexpected error %q", body["error"])
	}
}
