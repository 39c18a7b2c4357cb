package reset_admin_password

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/service/admins/models"
)

type AdminService interface {
	ResetPassword(ctx context.Context, id int64, req *models.ResetPasswordRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
