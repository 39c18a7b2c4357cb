package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/infra/storage/storagetest"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	db, sb := storagetest.NewSQLite(t)
	return NewRepository(db, sb)
}

func TestRepository_CreateAndLookup(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Admin{Username: "admin", PasswordHash: "hash"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", byID.Username)
	assert.Equal(t, "hash", byID.PasswordHash)

	byName, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestRepository_DuplicateUsername(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Admin{Username: "admin", PasswordHash: "a"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, &domain.Admin{Username: "barber", PasswordHash: "b"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.Admin{Username: "admin", PasswordHash: "c"})
	assert.ErrorIs(t, err, ErrAdminAlreadyExists)

	_, err = repo.UpdateUsername(ctx, second.ID, "admin")
	assert.ErrorIs(t, err, ErrAdminAlreadyExists)
}

func TestRepository_ListCountUpdateDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, &domain.Admin{Username: "admin", PasswordHash: "a"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Admin{Username: "barber", PasswordHash: "b"})
	require.NoError(t, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	renamed, err := repo.UpdateUsername(ctx, first.ID, "owner")
	require.NoError(t, err)
	assert.Equal(t, "owner", renamed.Username)

	require.NoError(t, repo.UpdatePassword(ctx, first.ID, "new-hash"))
	reloaded, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", reloaded.PasswordHash)

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), ErrAdminNotFound)
	assert.ErrorIs(t, repo.UpdatePassword(ctx, first.ID, "x"), ErrAdminNotFound)

	admins, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "barber", admins[0].Username)
}
