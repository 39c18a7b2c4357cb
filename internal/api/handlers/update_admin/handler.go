package update_admin

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/admins"
	"github.com/m04kA/SMC-BarberService/internal/service/admins/models"
)

const (
	msgUsernameRequired = "Používateľské meno je povinné."
	msgPasswordInvalid  = "Heslo musí mať aspoň 6 znakov."
	msgAlreadyExists    = "Administrátor s týmto menom už existuje."
	msgNotFound         = "Administrátor nebol nájdený."
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

// Handle PUT /admins/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /admins/{id} - Invalid admin ID: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidID)
		return
	}

	var req models.UpdateAdminRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admins/{id} - Invalid request body: admin_id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidBody)
		return
	}

	updated, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPassword):
			h.logger.Warn("PUT /admins/{id} - Invalid password: admin_id=%d", id)
			handlers.RespondBadRequest(w, msgPasswordInvalid)

		case errors.Is(err, admins.ErrInvalidInput):
			h.logger.Warn("PUT /admins/{id} - Validation failed: admin_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgUsernameRequired)

		case errors.Is(err, admins.ErrAdminNotFound):
			h.logger.Warn("PUT /admins/{id} - Admin not found: admin_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, admins.ErrAdminAlreadyExists):
			h.logger.Warn("PUT /admins/{id} - Username taken: admin_id=%d, username=%s", id, req.Username)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("PUT /admins/{id} - Failed to update admin: admin_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admins/{id} - Admin updated successfully: admin_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
