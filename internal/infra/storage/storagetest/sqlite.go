// Package storagetest поднимает in-memory SQLite со схемой для тестов репозиториев и сервисов
package storagetest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-BarberService/internal/infra/storage/migrations"
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/psqlbuilder"
)

// NewSQLite открывает in-memory базу с примененными миграциями
// Одно соединение: каждое новое соединение к ":memory:" видит свою пустую базу
func NewSQLite(t testing.TB) (*dbmetrics.DB, psqlbuilder.Builder) {
	t.Helper()

	raw, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	raw.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = raw.Close() })

	db := dbmetrics.Wrap(raw, nil)
	require.NoError(t, migrations.Apply(context.Background(), db, psqlbuilder.DialectSQLite))

	return db, psqlbuilder.MustNew(psqlbuilder.DialectSQLite)
}
