package login

import (
	"context"
	"errors"
	"fmt"
	"strings"

	adminRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/admin"
	"github.com/m04kA/SMC-BarberService/internal/integrations/recaptcha"
)

// UseCase use case входа администратора
type UseCase struct {
	adminRepo AdminRepository
	auth      Authenticator
	captcha   CaptchaVerifier
	metrics   MetricsRecorder
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	adminRepo AdminRepository,
	auth Authenticator,
	captcha CaptchaVerifier,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		adminRepo: adminRepo,
		auth:      auth,
		captcha:   captcha,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute проверяет учетные данные и выпускает JWT
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	username := strings.TrimSpace(req.Username)

	// 1. Валидация входных данных
	if username == "" || req.Password == "" {
		uc.observe("invalid")
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	// 2. Проверяем reCAPTCHA (no-op, если выключена)
	if err := uc.captcha.Verify(ctx, req.RecaptchaToken, req.RemoteIP); err != nil {
		if errors.Is(err, recaptcha.ErrVerificationFailed) || errors.Is(err, recaptcha.ErrMissingToken) {
			uc.logger.Warn("Login: captcha rejected for username=%s: %v", username, err)
			uc.observe("captcha_failed")
			return nil, ErrCaptchaFailed
		}
		uc.logger.Error("Login: captcha verification error: %v", err)
		uc.observe("error")
		return nil, fmt.Errorf("%w: captcha: %v", ErrInternal, err)
	}

	// 3. Ищем администратора
	admin, err := uc.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			uc.logger.Warn("Login: unknown username=%s", username)
			uc.observe("failed")
			return nil, ErrInvalidCredentials
		}
		uc.logger.Error("Login: repository error for username=%s: %v", username, err)
		uc.observe("error")
		return nil, fmt.Errorf("%w: failed to get admin: %v", ErrInternal, err)
	}

	// 4. Проверяем пароль
	if err := uc.auth.CheckPassword(admin.PasswordHash, req.Password); err != nil {
		uc.logger.Warn("Login: wrong password for username=%s", username)
		uc.observe("failed")
		return nil, ErrInvalidCredentials
	}

	// 5. Выпускаем токен
	token, expiresAt, err := uc.auth.IssueToken(admin.ID, admin.Username)
	if err != nil {
		uc.logger.Error("Login: failed to issue token for admin id=%d: %v", admin.ID, err)
		uc.observe("error")
		return nil, fmt.Errorf("%w: failed to issue token: %v", ErrInternal, err)
	}

	uc.logger.Info("Login: admin id=%d logged in", admin.ID)
	uc.observe("ok")

	return &Response{
		Token:     token,
		ExpiresAt: expiresAt,
		AdminID:   admin.ID,
		Username:  admin.Username,
	}, nil
}

func (uc *UseCase) observe(result string) {
	if uc.metrics != nil {
		uc.metrics.ObserveLogin(result)
	}
}
