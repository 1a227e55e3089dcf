package service

import (
	"context"
	"fmt"

	"github.com/alexedwards/argon2id"

	"github.com/roomly/roomly-backend/internal/domain"
	"github.com/roomly/roomly-backend/internal/platform/mailer"
	"github.com/roomly/roomly-backend/internal/repository"
	"github.com/roomly/roomly-backend/pkg/auth"
	"github.com/roomly/roomly-backend/pkg/config"
	"github.com/roomly/roomly-backend/pkg/events"
	"github.com/roomly/roomly-backend/pkg/logger"
)

type AuthService interface {
	Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	mailer   mailer.Service
	bus      events.Publisher
	config   *config.Config
}

func NewAuthService(
	userRepo repository.UserRepository,
	mailer mailer.Service,
	bus events.Publisher,
	config *config.Config,
) AuthService {
	return &authService{
		userRepo: userRepo,
		mailer:   mailer,
		bus:      bus,
		config:   config,
	}
}

func (s *authService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	passwordHash, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// The unique index on users.email decides races between two
	// concurrent registrations; the repository reports the loser as a
	// conflict.
	user, err := s.userRepo.Create(ctx, req.Email, passwordHash, req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}

	event := events.UserRegisteredEvent{
		UserID:       user.ID,
		Email:        user.Email,
		RegisteredAt: user.CreatedAt,
	}
	if err := s.bus.Publish(ctx, events.UserRegistered, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish user registered event", "error", err, "user_id", user.ID)
	}

	if err := s.mailer.SendWelcomeEmail(user.Email, user.FirstName); err != nil {
		logger.WarnContext(ctx, "Failed to send welcome email", "error", err, "user_id", user.ID)
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		// Same error as a wrong password, no account enumeration.
		return nil, domain.ErrInvalidCredentials
	}

	valid, err := argon2id.ComparePasswordAndHash(req.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := auth.NewToken(user.ID, s.config.Auth.JWTSecret, s.config.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID)

	return &domain.LoginResponse{
		Token: token,
		User:  user.ToUserInfo(),
	}, nil
}
