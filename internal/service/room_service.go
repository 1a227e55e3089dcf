package service

import (
	"context"
	"fmt"
	"time"

	"github.com/roomly/roomly-backend/internal/domain"
	"github.com/roomly/roomly-backend/internal/repository"
	"github.com/roomly/roomly-backend/pkg/events"
	"github.com/roomly/roomly-backend/pkg/logger"
)

type RoomService interface {
	List(ctx context.Context) ([]domain.RoomResponse, error)
	GetBySlug(ctx context.Context, slug string) (*domain.RoomResponse, error)
	Create(ctx context.Context, req *domain.CreateRoomRequest) (*domain.CreateRoomResponse, error)
}

type roomService struct {
	roomRepo repository.RoomRepository
	bus      events.Publisher
}

func NewRoomService(roomRepo repository.RoomRepository, bus events.Publisher) RoomService {
	return &roomService{
		roomRepo: roomRepo,
		bus:      bus,
	}
}

func (s *roomService) List(ctx context.Context) ([]domain.RoomResponse, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	result := make([]domain.RoomResponse, 0, len(rooms))
	for i := range rooms {
		result = append(result, *rooms[i].ToResponse())
	}
	return result, nil
}

func (s *roomService) GetBySlug(ctx context.Context, slug string) (*domain.RoomResponse, error) {
	room, err := s.roomRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to find room: %w", err)
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}
	return room.ToResponse(), nil
}

func (s *roomService) Create(ctx context.Context, req *domain.CreateRoomRequest) (*domain.CreateRoomResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.roomRepo.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing slug: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	// The unique index on rooms.slug decides races between two
	// concurrent creates with the same slug.
	room, err := s.roomRepo.Create(ctx, req.ToRoom())
	if err != nil {
		return nil, err
	}

	event := events.RoomCreatedEvent{
		RoomID:    room.ID,
		Slug:      room.Slug,
		Name:      room.Name,
		CreatedAt: time.Now(),
	}
	if err := s.bus.Publish(ctx, events.RoomCreated, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish room created event", "error", err, "room_id", room.ID)
	}

	return &domain.CreateRoomResponse{
		ID:      room.ID,
		Message: "Room created successfully",
	}, nil
}
