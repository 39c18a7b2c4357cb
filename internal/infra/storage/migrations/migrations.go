package migrations

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/psqlbuilder"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS reservations (
		id               BIGSERIAL PRIMARY KEY,
		name             VARCHAR(100) NOT NULL,
		email            VARCHAR(254) NOT NULL,
		reservation_date DATE         NOT NULL,
		reservation_time TIME         NOT NULL,
		ip_address       VARCHAR(64),
		client_id        VARCHAR(64),
		created_at       TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		updated_at       TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		CONSTRAINT reservations_slot_unique UNIQUE (reservation_date, reservation_time)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_date ON reservations (reservation_date)`,
	`CREATE TABLE IF NOT EXISTS admins (
		id            BIGSERIAL PRIMARY KEY,
		username      VARCHAR(50)  NOT NULL UNIQUE,
		password_hash VARCHAR(100) NOT NULL,
		created_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS reservations (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		name             TEXT NOT NULL,
		email            TEXT NOT NULL,
		reservation_date TEXT NOT NULL,
		reservation_time TEXT NOT NULL,
		ip_address       TEXT,
		client_id        TEXT,
		created_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (reservation_date, reservation_time)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_date ON reservations (reservation_date)`,
	`CREATE TABLE IF NOT EXISTS admins (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// Apply создает таблицы, если их ещё нет
func Apply(ctx context.Context, db dbmetrics.DBExecutor, dialect psqlbuilder.Dialect) error {
	var statements []string
	switch dialect {
	case psqlbuilder.DialectPostgres:
		statements = postgresSchema
	case psqlbuilder.DialectSQLite:
		statements = sqliteSchema
	default:
		return fmt.Errorf("migrations: unsupported dialect %q", dialect)
	}

	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrations: statement %d: %w", i, err)
		}
	}

	return nil
}
