package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestRegisterRequestNormalize(t *testing.T) {
	req := &RegisterRequest{
		Email:     "  Anna@Example.COM ",
		Password:  "supersecret",
		FirstName: " Anna ",
		LastName:  " Larsson",
	}
	req.Normalize()
	if req.Email != "anna@example.com" {
		t.Errorf("unexpected email %q", req.Email)
	}
	if req.FirstName != "Anna" || req.LastName != "Larsson" {
		t.Errorf("unexpected names %q %q", req.FirstName, req.LastName)
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	tests := []struct {
		name   string
		req    RegisterRequest
		fields []string
	}{
		{
			"valid",
			RegisterRequest{Email: "anna@example.com", Password: "supersecret", FirstName: "Anna", LastName: "Larsson"},
			nil,
		},
		{
			"bad email",
			RegisterRequest{Email: "not-an-email", Password: "supersecret", FirstName: "Anna", LastName: "Larsson"},
			[]string{"email"},
		},
		{
			"short password",
			RegisterRequest{Email: "anna@example.com", Password: "short", FirstName: "Anna", LastName: "Larsson"},
			[]string{"password"},
		},
		{
			"everything missing",
			RegisterRequest{},
			[]string{"email", "password", "first_name", "last_name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.fields == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var v *ValidationError
			if !errors.As(err, &v) {
				t.Fatalf("expected validation error, got %v", err)
			}
			for _, field := range tt.fields {
				if _, ok := v.Fields[field]; !ok {
					t.Errorf("expected a message for field %q, got %v", field, v.Fields)
				}
			}
		})
	}
}

func TestUserJSONHidesPasswordHash(t *testing.T) {
	data, err := json.Marshal(&User{ID: "user-1", Email: "anna@example.com", PasswordHash: "argon2id$..."})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "argon2id") {
		t.Errorf("password hash leaked into JSON: %s", data)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	v := NewValidationError()
	v.Add("email", "email is required")
	v.Add("password", "password is required")

	// Field order in the message is deterministic.
	want := "invalid input: email: email is required; password: password is required"
	if got := v.Error(); got != want {
		t.Errorf("unexpected message %q", got)
	}
}

func TestValidationErrorErrOrNil(t *testing.T) {
	if err := NewValidationError().ErrOrNil(); err != nil {
		t.Errorf("expected nil for no failing fields, got %v", err)
	}
}
