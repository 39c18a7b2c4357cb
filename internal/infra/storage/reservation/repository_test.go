package reservation

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/txmanager"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

func newTestRepository(t *testing.T) (*Repository, *dbmetrics.DB) {
	t.Helper()
	db, sb := storagetest.NewSQLite(t)
	return NewRepository(db, sb), db
}

func newReservation(name, date, at string) *domain.Reservation {
	d, _ := time.Parse(domain.DateFormat, date)
	return &domain.Reservation{
		Name:  name,
		Email: name + "@example.com",
		Date:  d,
		Time:  types.MustTimeString(at),
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	ip := "10.0.0.1"
	in := newReservation("jano", "2025-07-22", "08:20")
	in.IPAddress = &ip

	created, err := repo.Create(ctx, in)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "jano", got.Name)
	assert.Equal(t, "jano@example.com", got.Email)
	assert.Equal(t, "2025-07-22", got.DateKey())
	assert.Equal(t, "08:20", got.Time.String())
	require.NotNil(t, got.IPAddress)
	assert.Equal(t, ip, *got.IPAddress)
	assert.Nil(t, got.ClientID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestRepository_CreateSlotTaken(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, newReservation("jano", "2025-07-22", "08:20"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newReservation("fero", "2025-07-22", "08:20"))
	assert.ErrorIs(t, err, ErrSlotTaken)

	_, err = repo.Create(ctx, newReservation("fero", "2025-07-23", "08:20"))
	assert.NoError(t, err)
}

func TestRepository_GetByIDNotFound(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestRepository_ListOrderAndFilter(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	for _, r := range []*domain.Reservation{
		newReservation("c", "2025-07-24", "10:00"),
		newReservation("b", "2025-07-22", "09:00"),
		newReservation("a", "2025-07-22", "08:00"),
	} {
		_, err := repo.Create(ctx, r)
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, domain.ReservationsFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{all[0].Name, all[1].Name, all[2].Name})

	day, _ := time.Parse(domain.DateFormat, "2025-07-22")
	onDay, err := repo.GetByDate(ctx, day)
	require.NoError(t, err)
	assert.Len(t, onDay, 2)
}

func TestRepository_Update(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newReservation("jano", "2025-07-22", "08:20"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newReservation("fero", "2025-07-22", "09:00"))
	require.NoError(t, err)

	created.Name = "Ján"
	created.Time = types.MustTimeString("10:00")
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Ján", updated.Name)
	assert.Equal(t, "10:00", updated.Time.String())

	created.Time = types.MustTimeString("09:00")
	_, err = repo.Update(ctx, created)
	assert.ErrorIs(t, err, ErrSlotTaken)

	missing := newReservation("x", "2025-07-22", "11:00")
	missing.ID = 999
	_, err = repo.Update(ctx, missing)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestRepository_Delete(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newReservation("jano", "2025-07-22", "08:20"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), ErrReservationNotFound)
}

func TestRepository_TransactionRollback(t *testing.T) {
	repo, db := newTestRepository(t)
	ctx := context.Background()
	tm := txmanager.NewTransactionManager(db, txmanager.WithSerializableLevel(sql.LevelDefault))

	err := tm.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := repo.Create(txCtx, newReservation("jano", "2025-07-22", "08:20")); err != nil {
			return err
		}
		_, err := repo.Create(txCtx, newReservation("fero", "2025-07-22", "08:20"))
		return err
	})
	require.ErrorIs(t, err, ErrSlotTaken)

	all, err := repo.List(ctx, domain.ReservationsFilter{})
	require.NoError(t, err)
	assert.Empty(t, all, "first insert must be rolled back")
}
