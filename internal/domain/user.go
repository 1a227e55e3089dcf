package domain

import (
	"regexp"
	"strings"
	"time"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user"`
}

// UserInfo is the public user summary. The password hash never leaves
// the service layer.
type UserInfo struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func (r *RegisterRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
}

func (r *RegisterRequest) Validate() error {
	v := NewValidationError()
	if r.Email == "" {
		v.Add("email", "email is required")
	} else if !emailRegex.MatchString(r.Email) {
		v.Add("email", "invalid email format")
	}
	if r.Password == "" {
		v.Add("password", "password is required")
	} else if len(r.Password) < 8 {
		v.Add("password", "password must be at least 8 characters")
	}
	if r.FirstName == "" {
		v.Add("first_name", "first name is required")
	}
	if r.LastName == "" {
		v.Add("last_name", "last name is required")
	}
	return v.ErrOrNil()
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *LoginRequest) Validate() error {
	v := NewValidationError()
	if r.Email == "" {
		v.Add("email", "email is required")
	} else if !emailRegex.MatchString(r.Email) {
		v.Add("email", "invalid email format")
	}
	if r.Password == "" {
		v.Add("password", "password is required")
	}
	return v.ErrOrNil()
}

func (u *User) ToUserInfo() *UserInfo {
	return &UserInfo{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
