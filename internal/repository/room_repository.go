package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roomly/roomly-backend/internal/domain"
)

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Room, error)
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
}

type roomRepository struct {
	pool *pgxpool.Pool
}

func NewRoomRepository(pool *pgxpool.Pool) RoomRepository {
	return &roomRepository{pool: pool}
}

const roomCols = `id, name, slug, description, short_description, category, type,
capacity_min, capacity_max, capacity_optimal,
size, price_per_hour, price_per_day,
location_address, location_city, location_postal_code, location_country,
location_lat, location_lng,
amenities, services, images,
confirmation_required, rating, reviews`

func (r *roomRepository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	const q = `INSERT INTO rooms (
		id, name, slug, description, short_description, category, type,
		capacity_min, capacity_max, capacity_optimal,
		size, price_per_hour, price_per_day,
		location_address, location_city, location_postal_code, location_country,
		location_lat, location_lng,
		amenities, services, images,
		confirmation_required, rating, reviews
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25)
	RETURNING ` + roomCols

	amenities, err := json.Marshal(room.Amenities)
	if err != nil {
		return nil, fmt.Errorf("encode amenities: %w", err)
	}
	services, err := json.Marshal(room.Services)
	if err != nil {
		return nil, fmt.Errorf("encode services: %w", err)
	}
	images, err := json.Marshal(room.Images)
	if err != nil {
		return nil, fmt.Errorf("encode images: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	row := r.pool.QueryRow(ctx, q,
		uuid.NewString(), room.Name, room.Slug, room.Description, room.ShortDescription,
		room.Category, room.Type,
		room.CapacityMin, room.CapacityMax, room.CapacityOptimal,
		room.Size, room.PricePerHour, room.PricePerDay,
		room.LocationAddress, room.LocationCity, room.LocationPostalCode, room.LocationCountry,
		room.LocationLat, room.LocationLng,
		amenities, services, images,
		room.ConfirmationRequired, room.Rating, room.Reviews,
	)

	created, err := scanRoom(row)
	if isUniqueViolation(err) {
		return nil, domain.ErrConflict
	}
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *roomRepository) FindBySlug(ctx context.Context, slug string) (*domain.Room, error) {
	const q = `SELECT ` + roomCols + ` FROM rooms WHERE slug = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	room, err := scanRoom(r.pool.QueryRow(ctx, q, slug))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return room, err
}

func (r *roomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	const q = `SELECT ` + roomCols + ` FROM rooms WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	room, err := scanRoom(r.pool.QueryRow(ctx, q, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return room, err
}

func (r *roomRepository) List(ctx context.Context) ([]domain.Room, error) {
	const q = `SELECT ` + roomCols + ` FROM rooms ORDER BY name`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, *room)
	}
	return rooms, rows.Err()
}

func scanRoom(row pgx.Row) (*domain.Room, error) {
	var (
		room      domain.Room
		amenities []byte
		services  []byte
		images    []byte
	)

	err := row.Scan(
		&room.ID, &room.Name, &room.Slug, &room.Description, &room.ShortDescription,
		&room.Category, &room.Type,
		&room.CapacityMin, &room.CapacityMax, &room.CapacityOptimal,
		&room.Size, &room.PricePerHour, &room.PricePerDay,
		&room.LocationAddress, &room.LocationCity, &room.LocationPostalCode, &room.LocationCountry,
		&room.LocationLat, &room.LocationLng,
		&amenities, &services, &images,
		&room.ConfirmationRequired, &room.Rating, &room.Reviews,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(amenities, &room.Amenities); err != nil {
		return nil, fmt.Errorf("decode amenities: %w", err)
	}
	if err := json.Unmarshal(services, &room.Services); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}
	if err := json.Unmarshal(images, &room.Images); err != nil {
		return nil, fmt.Errorf("decode images: %w", err)
	}

	return &room, nil
}
