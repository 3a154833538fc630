package database

import (
	"context"
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		phone         TEXT NOT NULL DEFAULT '',
		role          TEXT NOT NULL DEFAULT 'customer',
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL,
		icon         TEXT NOT NULL,
		price        TEXT NOT NULL,
		category     TEXT NOT NULL,
		border_color TEXT NOT NULL DEFAULT '#667eea',
		subservices  JSONB NOT NULL DEFAULT '[]',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS technicians (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		specialization TEXT NOT NULL,
		phone          TEXT NOT NULL DEFAULT '',
		experience     INTEGER NOT NULL DEFAULT 0,
		available      BOOLEAN NOT NULL DEFAULT TRUE,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		seq            BIGSERIAL,
		id             TEXT PRIMARY KEY,
		customer_name  TEXT NOT NULL,
		customer_email TEXT NOT NULL,
		customer_phone TEXT NOT NULL,
		service_id     TEXT NOT NULL,
		technician_id  TEXT NOT NULL DEFAULT '',
		scheduled_at   TEXT NOT NULL,
		notes          TEXT NOT NULL DEFAULT '',
		amount         BIGINT NOT NULL CHECK (amount >= 0),
		currency       TEXT NOT NULL,
		status         TEXT NOT NULL,
		payment_status TEXT NOT NULL,
		payment_ref    TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS bookings_customer_email_idx ON bookings (lower(customer_email), created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id            TEXT PRIMARY KEY,
		booking_id    TEXT NOT NULL UNIQUE,
		technician_id TEXT NOT NULL DEFAULT '',
		service_id    TEXT NOT NULL,
		author        TEXT NOT NULL,
		rating        INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment       TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS reviews_technician_idx ON reviews (technician_id)`,
}

// EnsureSchema creates missing tables. It is safe to run on every start.
func EnsureSchema(ctx context.Context, conn *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
