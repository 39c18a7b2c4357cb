package get_admins

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/service/admins/models"
)

type AdminService interface {
	List(ctx context.Context) ([]*models.AdminResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
