package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-BarberService/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-BarberService/internal/service/reservations/models"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

func newTestService(t *testing.T) (*Service, *reservationRepo.Repository) {
	t.Helper()
	db, sb := storagetest.NewSQLite(t)
	repo := reservationRepo.NewRepository(db, sb)
	return NewService(repo, domain.DefaultSchedule(), logger.Nop()), repo
}

func seed(t *testing.T, repo *reservationRepo.Repository, name, date, at string) *domain.Reservation {
	t.Helper()
	d, err := domain.ParseDate(date)
	require.NoError(t, err)
	created, err := repo.Create(context.Background(), &domain.Reservation{
		Name:  name,
		Email: name + "@example.sk",
		Date:  d,
		Time:  types.MustTimeString(at),
	})
	require.NoError(t, err)
	return created
}

func TestService_GetAndList(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	second := seed(t, repo, "fero", "2025-07-23", "08:00")
	first := seed(t, repo, "jano", "2025-07-22", "10:00")

	got, err := svc.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "jano", got.Name)
	assert.Equal(t, "2025-07-22", got.Date)
	assert.Equal(t, "10:00", got.Time)

	_, err = svc.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	list, err := svc.List(ctx, &models.ListReservationsRequest{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)

	start := time.Date(2025, 7, 23, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 22, 0, 0, 0, 0, time.UTC)
	_, err = svc.List(ctx, &models.ListReservationsRequest{StartDate: &start, EndDate: &end})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	target := seed(t, repo, "jano", "2025-07-22", "10:00")
	seed(t, repo, "fero", "2025-07-22", "10:20")

	updated, err := svc.Update(ctx, target.ID, &models.UpdateReservationRequest{
		Name: "Ján", Email: "jan@example.sk", Date: "2025-07-24", Time: "09:40",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ján", updated.Name)
	assert.Equal(t, "2025-07-24", updated.Date)
	assert.Equal(t, "09:40", updated.Time)

	_, err = svc.Update(ctx, target.ID, &models.UpdateReservationRequest{
		Name: "Ján", Email: "jan@example.sk", Date: "2025-07-22", Time: "10:20",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)

	_, err = svc.Update(ctx, target.ID, &models.UpdateReservationRequest{
		Name: "Ján", Email: "zly-email", Date: "2025-07-22", Time: "10:40",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// 12:20 попадает в перерыв
	_, err = svc.Update(ctx, target.ID, &models.UpdateReservationRequest{
		Name: "Ján", Email: "jan@example.sk", Date: "2025-07-22", Time: "12:20",
	})
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	_, err = svc.Update(ctx, 999, &models.UpdateReservationRequest{
		Name: "Ján", Email: "jan@example.sk", Date: "2025-07-22", Time: "10:40",
	})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_Delete(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	target := seed(t, repo, "jano", "2025-07-22", "10:00")

	require.NoError(t, svc.Delete(ctx, target.ID))
	assert.ErrorIs(t, svc.Delete(ctx, target.ID), ErrReservationNotFound)
}
