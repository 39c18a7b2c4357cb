package admins

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// AdminRepository интерфейс репозитория администраторов
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	GetByID(ctx context.Context, id int64) (*domain.Admin, error)
	List(ctx context.Context) ([]*domain.Admin, error)
	Count(ctx context.Context) (int, error)
	UpdateUsername(ctx context.Context, id int64, username string) (*domain.Admin, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

// PasswordHasher хеширование паролей
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
