package service

import (
	"context"
	"fmt"

	"github.com/roomly/roomly-backend/internal/domain"
	"github.com/roomly/roomly-backend/internal/platform/mailer"
	"github.com/roomly/roomly-backend/internal/repository"
	"github.com/roomly/roomly-backend/pkg/events"
	"github.com/roomly/roomly-backend/pkg/logger"
)

type BookingService interface {
	Create(ctx context.Context, req *domain.CreateBookingRequest) (*domain.CreateBookingResponse, error)
	ListByUser(ctx context.Context, userID string) ([]domain.BookingResponse, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	roomRepo    repository.RoomRepository
	userRepo    repository.UserRepository
	mailer      mailer.Service
	bus         events.Publisher
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	roomRepo repository.RoomRepository,
	userRepo repository.UserRepository,
	mailer mailer.Service,
	bus events.Publisher,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		userRepo:    userRepo,
		mailer:      mailer,
		bus:         bus,
	}
}

func (s *bookingService) Create(ctx context.Context, req *domain.CreateBookingRequest) (*domain.CreateBookingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.FindByID(ctx, req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to find room: %w", err)
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}

	status := domain.BookingConfirmed
	if room.ConfirmationRequired {
		status = domain.BookingPending
	}

	booking := &domain.Booking{
		RoomID:     room.ID,
		UserID:     req.UserID,
		Date:       req.ParsedDate(),
		IsFullDay:  req.IsFullDay,
		Attendees:  req.Attendees,
		Services:   req.Services,
		TotalPrice: req.TotalPrice,
		Status:     status,
	}

	// Full-day bookings never carry a time range, even when the client
	// supplied one.
	if !req.IsFullDay {
		booking.StartTime = req.StartTime
		booking.EndTime = req.EndTime
	}

	created, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	event := events.BookingCreatedEvent{
		BookingID: created.ID,
		RoomID:    created.RoomID,
		UserID:    created.UserID,
		Date:      created.Date.Format(domain.DateLayout),
		Status:    string(created.Status),
		CreatedAt: created.CreatedAt,
	}
	if err := s.bus.Publish(ctx, events.BookingCreated, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish booking created event", "error", err, "booking_id", created.ID)
	}

	s.notifyUser(ctx, created, room.Name)

	return &domain.CreateBookingResponse{
		ID:      created.ID,
		Status:  created.Status,
		Message: "Your booking has been recorded successfully",
	}, nil
}

func (s *bookingService) ListByUser(ctx context.Context, userID string) ([]domain.BookingResponse, error) {
	bookings, err := s.bookingRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	// An unknown user id yields an empty list, not an error.
	result := make([]domain.BookingResponse, 0, len(bookings))
	for i := range bookings {
		result = append(result, *bookings[i].ToResponse())
	}
	return result, nil
}

// notifyUser emails a booking summary when the booking carries a user.
// Email failures are logged and never surfaced to the caller.
func (s *bookingService) notifyUser(ctx context.Context, booking *domain.Booking, roomName string) {
	if booking.UserID == nil {
		return
	}

	user, err := s.userRepo.FindByID(ctx, *booking.UserID)
	if err != nil || user == nil {
		logger.WarnContext(ctx, "Could not load booking user for email", "error", err, "booking_id", booking.ID)
		return
	}

	if err := s.mailer.SendBookingEmail(user.Email, user.FirstName, booking, roomName); err != nil {
		logger.WarnContext(ctx, "Failed to send booking email", "error", err, "booking_id", booking.ID)
	}
}
