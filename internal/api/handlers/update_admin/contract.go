package update_admin

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/service/admins/models"
)

type AdminService interface {
	Update(ctx context.Context, id int64, req *models.UpdateAdminRequest) (*models.AdminResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
