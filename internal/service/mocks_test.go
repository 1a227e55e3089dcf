package service

import (
	"context"

	"github.com/roomly/roomly-backend/internal/domain"
)

type mockUserRepo struct {
	createFn      func(ctx context.Context, email, passwordHash, firstName, lastName string) (*domain.User, error)
	findByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	findByIDFn    func(ctx context.Context, id string) (*domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, email, passwordHash, firstName, lastName string) (*domain.User, error) {
	return m.createFn(ctx, email, passwordHash, firstName, lastName)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.findByEmailFn == nil {
		return nil, nil
	}
	return m.findByEmailFn(ctx, email)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

type mockRoomRepo struct {
	createFn     func(ctx context.Context, room *domain.Room) (*domain.Room, error)
	findBySlugFn func(ctx context.Context, slug string) (*domain.Room, error)
	findByIDFn   func(ctx context.Context, id string) (*domain.Room, error)
	listFn       func(ctx context.Context) ([]domain.Room, error)
}

func (m *mockRoomRepo) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	return m.createFn(ctx, room)
}

func (m *mockRoomRepo) FindBySlug(ctx context.Context, slug string) (*domain.Room, error) {
	if m.findBySlugFn == nil {
		return nil, nil
	}
	return m.findBySlugFn(ctx, slug)
}

func (m *mockRoomRepo) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockRoomRepo) List(ctx context.Context) ([]domain.Room, error) {
	return m.listFn(ctx)
}

type mockBookingRepo struct {
	createFn       func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	findByIDFn     func(ctx context.Context, id string) (*domain.Booking, error)
	listByUserIDFn func(ctx context.Context, userID string) ([]domain.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	return m.createFn(ctx, booking)
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockBookingRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Booking, error) {
	return m.listByUserIDFn(ctx, userID)
}

type mockMailer struct {
	welcomeCalls []string
	bookingCalls []string
	err          error
}

func (m *mockMailer) SendWelcomeEmail(toEmail, firstName string) error {
	m.welcomeCalls = append(m.welcomeCalls, toEmail)
	return m.err
}

func (m *mockMailer) SendBookingEmail(toEmail, toName string, booking *domain.Booking, roomName string) error {
	m.bookingCalls = append(m.bookingCalls, toEmail)
	return m.err
}

type mockPublisher struct {
	subjects []string
	err      error
}

func (m *mockPublisher) Publish(ctx context.Context, subject string, data interface{}) error {
	m.subjects = append(m.subjects, subject)
	return m.err
}

func (m *mockPublisher) Close() error { return nil }
