package reset_admin_password

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/service/admins"
	"github.com/m04kA/SMC-BarberService/internal/service/admins/models"
)

const (
	msgReset           = "Heslo bolo zmenené."
	msgPasswordInvalid = "Heslo musí mať aspoň 6 znakov."
	msgNotFound        = "Administrátor nebol nájdený."
)

type Handler struct {
	service AdminService
	logger  Logger
}

func NewHandler(service AdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /admins/{id}/reset-password
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("POST /admins/{id}/reset-password - Invalid admin ID: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidID)
		return
	}

	var req models.ResetPasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admins/{id}/reset-password - Invalid request body: admin_id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidBody)
		return
	}

	if err := h.service.ResetPassword(r.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, admins.ErrInvalidInput):
			h.logger.Warn("POST /admins/{id}/reset-password - Invalid password: admin_id=%d", id)
			handlers.RespondBadRequest(w, msgPasswordInvalid)

		case errors.Is(err, admins.ErrAdminNotFound):
			h.logger.Warn("POST /admins/{id}/reset-password - Admin not found: admin_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /admins/{id}/reset-password - Failed to reset password: admin_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admins/{id}/reset-password - Password reset successfully: admin_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: msgReset})
}
