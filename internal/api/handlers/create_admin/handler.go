package create_admin

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

// Handle POST /admins
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAdminRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admins - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidBody)
		return
	}

	created, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPassword):
			h.logger.Warn("POST /admins - Invalid password: username=%s", req.Username)
			handlers.RespondBadRequest(w, msgPasswordInvalid)

		case errors.Is(err, admins.ErrInvalidInput):
			h.logger.Warn("POST /admins - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgUsernameRequired)

		case errors.Is(err, admins.ErrAdminAlreadyExists):
			h.logger.Warn("POST /admins - Admin already exists: username=%s", req.Username)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /admins - Failed to create admin: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admins - Admin created successfully: admin_id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
