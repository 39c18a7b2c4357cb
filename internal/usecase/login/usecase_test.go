package login

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	adminRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/admin"
	"github.com/m04kA/SMC-BarberService/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-BarberService/internal/integrations/recaptcha"
	"github.com/m04kA/SMC-BarberService/internal/service/auth"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

type fakeCaptcha struct{ err error }

func (f fakeCaptcha) Verify(context.Context, string, string) error { return f.err }

type fakeMetrics map[string]int

func (f fakeMetrics) ObserveLogin(result string) { f[result]++ }

type brokenRepo struct{}

func (brokenRepo) GetByUsername(context.Context, string) (*domain.Admin, error) {
	return nil, errors.New("db down")
}

func newTestUseCase(t *testing.T, captchaErr error) (*UseCase, *auth.Service, fakeMetrics) {
	t.Helper()

	db, sb := storagetest.NewSQLite(t)
	repo := adminRepo.NewRepository(db, sb)
	authSvc := auth.NewService("secret", time.Hour, "barber-api")

	hash, err := authSvc.HashPassword("admin123")
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), &domain.Admin{Username: "admin", PasswordHash: hash})
	require.NoError(t, err)

	m := fakeMetrics{}
	return NewUseCase(repo, authSvc, fakeCaptcha{err: captchaErr}, m, logger.Nop()), authSvc, m
}

func TestUseCase_Success(t *testing.T) {
	uc, authSvc, m := newTestUseCase(t, nil)

	resp, err := uc.Execute(context.Background(), &Request{Username: " admin ", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.Username)
	assert.NotEmpty(t, resp.Token)

	principal, err := authSvc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.AdminID, principal.AdminID)
	assert.Equal(t, 1, m["ok"])
}

func TestUseCase_InvalidCredentials(t *testing.T) {
	uc, _, m := newTestUseCase(t, nil)

	_, err := uc.Execute(context.Background(), &Request{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Execute(context.Background(), &Request{Username: "nobody", Password: "admin123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Execute(context.Background(), &Request{Username: "admin"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Equal(t, 2, m["failed"])
}

func TestUseCase_Captcha(t *testing.T) {
	uc, _, _ := newTestUseCase(t, recaptcha.ErrMissingToken)

	_, err := uc.Execute(context.Background(), &Request{Username: "admin", Password: "admin123"})
	assert.ErrorIs(t, err, ErrCaptchaFailed)
}

func TestUseCase_RepositoryError(t *testing.T) {
	uc := NewUseCase(brokenRepo{}, auth.NewService("secret", time.Hour, "barber-api"), fakeCaptcha{}, nil, logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{Username: "admin", Password: "admin123"})
	assert.ErrorIs(t, err, ErrInternal)
}
