package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is applied at startup. Statements are idempotent so repeated
// boots against the same database are safe.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		first_name    TEXT NOT NULL,
		last_name     TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		id                    TEXT PRIMARY KEY,
		name                  TEXT NOT NULL,
		slug                  TEXT NOT NULL UNIQUE,
		description           TEXT NOT NULL,
		short_description     TEXT NOT NULL,
		category              TEXT NOT NULL,
		type                  TEXT NOT NULL,
		capacity_min          INTEGER NOT NULL,
		capacity_max          INTEGER NOT NULL,
		capacity_optimal      INTEGER NOT NULL,
		size                  DOUBLE PRECISION NOT NULL,
		price_per_hour        DOUBLE PRECISION NOT NULL,
		price_per_day         DOUBLE PRECISION NOT NULL,
		location_address      TEXT NOT NULL,
		location_city         TEXT NOT NULL,
		location_postal_code  TEXT NOT NULL,
		location_country      TEXT NOT NULL,
		location_lat          DOUBLE PRECISION NOT NULL,
		location_lng          DOUBLE PRECISION NOT NULL,
		amenities             JSONB NOT NULL DEFAULT '[]',
		services              JSONB NOT NULL DEFAULT '[]',
		images                JSONB NOT NULL DEFAULT '[]',
		confirmation_required BOOLEAN NOT NULL DEFAULT false,
		rating                DOUBLE PRECISION,
		reviews               INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id          TEXT PRIMARY KEY,
		room_id     TEXT NOT NULL REFERENCES rooms(id),
		user_id     TEXT REFERENCES users(id),
		date        DATE NOT NULL,
		start_time  TEXT,
		end_time    TEXT,
		is_full_day BOOLEAN NOT NULL DEFAULT false,
		attendees   INTEGER NOT NULL,
		services    JSONB NOT NULL DEFAULT '[]',
		total_price DOUBLE PRECISION NOT NULL,
		status      TEXT NOT NULL DEFAULT 'pending',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings (user_id)`,
	`CREATE TABLE IF NOT EXISTS rate_limits (
		rl_key       TEXT PRIMARY KEY,
		count        INTEGER NOT NULL,
		window_start TIMESTAMPTZ NOT NULL,
		expires_at   TIMESTAMPTZ NOT NULL
	)`,
}

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
