package login

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// AdminRepository интерфейс репозитория администраторов
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
}

// Authenticator проверка пароля и выпуск токена
type Authenticator interface {
	CheckPassword(hash, password string) error
	IssueToken(adminID int64, username string) (string, time.Time, error)
}

// CaptchaVerifier проверка токена reCAPTCHA
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

// MetricsRecorder бизнес-метрики
type MetricsRecorder interface {
	ObserveLogin(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
