package admins

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/admin"
	"github.com/m04kA/SMC-BarberService/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-BarberService/internal/service/admins/models"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
	"github.com/m04kA/SMC-BarberService/pkg/txmanager"
)

// plainHasher хранит пароль с префиксом, чтобы не гонять bcrypt в тестах
type plainHasher struct{}

func (plainHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func newTestService(t *testing.T) (*Service, *adminRepo.Repository) {
	t.Helper()
	db, sb := storagetest.NewSQLite(t)
	repo := adminRepo.NewRepository(db, sb)
	tm := txmanager.NewTransactionManager(db, txmanager.WithSerializableLevel(sql.LevelDefault))
	return NewService(repo, plainHasher{}, tm, logger.Nop()), repo
}

func TestService_CreateAndList(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateAdminRequest{Username: " admin ", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", created.Username)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed:admin123", stored.PasswordHash)

	_, err = svc.Create(ctx, &models.CreateAdminRequest{Username: "admin", Password: "another1"})
	assert.ErrorIs(t, err, ErrAdminAlreadyExists)

	_, err = svc.Create(ctx, &models.CreateAdminRequest{Username: "barber", Password: "12345"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, &models.CreateAdminRequest{Username: "", Password: "123456"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestService_Update(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, &models.CreateAdminRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &models.CreateAdminRequest{Username: "barber", Password: "barber123"})
	require.NoError(t, err)

	// Пароль не передан - не меняется
	updated, err := svc.Update(ctx, first.ID, &models.UpdateAdminRequest{Username: "owner"})
	require.NoError(t, err)
	assert.Equal(t, "owner", updated.Username)
	stored, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed:admin123", stored.PasswordHash)

	_, err = svc.Update(ctx, first.ID, &models.UpdateAdminRequest{Username: "owner", Password: "newpass1"})
	require.NoError(t, err)
	stored, err = repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed:newpass1", stored.PasswordHash)

	_, err = svc.Update(ctx, first.ID, &models.UpdateAdminRequest{Username: "barber"})
	assert.ErrorIs(t, err, ErrAdminAlreadyExists)

	_, err = svc.Update(ctx, first.ID, &models.UpdateAdminRequest{Username: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(ctx, 999, &models.UpdateAdminRequest{Username: "ghost"})
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestService_Delete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, &models.CreateAdminRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, &models.CreateAdminRequest{Username: "barber", Password: "barber123"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, first.ID, first.ID), ErrCannotDeleteSelf)
	assert.ErrorIs(t, svc.Delete(ctx, 999, first.ID), ErrAdminNotFound)

	require.NoError(t, svc.Delete(ctx, second.ID, first.ID))

	// Остался один администратор
	assert.ErrorIs(t, svc.Delete(ctx, first.ID, second.ID), ErrLastAdmin)
}

func TestService_ResetPassword(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateAdminRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(ctx, created.ID, &models.ResetPasswordRequest{NewPassword: "secret99"}))
	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed:secret99", stored.PasswordHash)

	assert.ErrorIs(t, svc.ResetPassword(ctx, created.ID, &models.ResetPasswordRequest{NewPassword: "123"}), ErrInvalidInput)
	assert.ErrorIs(t, svc.ResetPassword(ctx, 999, &models.ResetPasswordRequest{NewPassword: "secret99"}), ErrAdminNotFound)
}

func TestService_EnsureBootstrapAdmin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.EnsureBootstrapAdmin(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureBootstrapAdmin(ctx, "other", "other123")
	require.NoError(t, err)
	assert.False(t, created)

	created, err = svc.EnsureBootstrapAdmin(ctx, "", "")
	require.NoError(t, err)
	assert.False(t, created)
}
