package delete_admin

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/admins"
)

const (
	msgDeleted    = "Administrátor bol zmazaný."
	msgNotFound   = "Administrátor nebol nájdený."
	msgLastAdmin  = "Nemožno zmazať posledného administrátora."
	msgDeleteSelf = "Nemôžete zmazať vlastný účet."
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

// Handle DELETE /admins/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /admins/{id} - Missing admin in context")
		handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /admins/{id} - Invalid admin ID: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id, actorID); err != nil {
		switch {
		case errors.Is(err, admins.ErrAdminNotFound):
			h.logger.Warn("DELETE /admins/{id} - Admin not found: admin_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, admins.ErrLastAdmin):
			h.logger.Warn("DELETE /admins/{id} - Refused to delete last admin: admin_id=%d", id)
			handlers.RespondBadRequest(w, msgLastAdmin)

		case errors.Is(err, admins.ErrCannotDeleteSelf):
			h.logger.Warn("DELETE /admins/{id} - Refused to delete self: admin_id=%d", id)
			handlers.RespondBadRequest(w, msgDeleteSelf)

		default:
			h.logger.Error("DELETE /admins/{id} - Failed to delete admin: admin_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admins/{id} - Admin deleted successfully: admin_id=%d, actor_id=%d", id, actorID)
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: msgDeleted})
}
