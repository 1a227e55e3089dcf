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

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.Booking, error)
}

type bookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepository{pool: pool}
}

const bookingCols = `id, room_id, user_id, date, start_time, end_time,
is_full_day, attendees, services, total_price, status, created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	const q = `INSERT INTO bookings (
		id, room_id, user_id, date, start_time, end_time,
		is_full_day, attendees, services, total_price, status
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	RETURNING ` + bookingCols

	services, err := json.Marshal(booking.Services)
	if err != nil {
		return nil, fmt.Errorf("encode services: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	row := r.pool.QueryRow(ctx, q,
		uuid.NewString(), booking.RoomID, booking.UserID,
		booking.Date, booking.StartTime, booking.EndTime,
		booking.IsFullDay, booking.Attendees, services,
		booking.TotalPrice, booking.Status,
	)

	return scanBooking(row)
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	const q = `SELECT ` + bookingCols + ` FROM bookings WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	booking, err := scanBooking(r.pool.QueryRow(ctx, q, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return booking, err
}

func (r *bookingRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Booking, error) {
	const q = `SELECT ` + bookingCols + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *booking)
	}
	return bookings, rows.Err()
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var (
		b        domain.Booking
		status   string
		services []byte
	)

	err := row.Scan(
		&b.ID, &b.RoomID, &b.UserID, &b.Date, &b.StartTime, &b.EndTime,
		&b.IsFullDay, &b.Attendees, &services, &b.TotalPrice, &status,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(services, &b.Services); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}
	b.Status = domain.BookingStatus(status)

	return &b, nil
}
