package update_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/reservations"
	"github.com/m04kA/SMC-BarberService/internal/service/reservations/models"
)

const (
	msgNotFound        = "Rezervácia nebola nájdená."
	msgNameRequired    = "Meno je povinné."
	msgInvalidEmail    = "Neplatný formát emailu."
	msgInvalidDate     = "Dátum musí byť vo formáte RRRR-MM-DD."
	msgInvalidTime     = "Čas musí byť vo formáte HH:MM."
	msgInvalidInput    = "Neplatné údaje rezervácie."
	msgInvalidTimeSlot = "Zvolený čas nie je v ponuke."
	msgSlotTaken       = "Zvolený termín je už obsadený."
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidID)
		return
	}

	var req models.UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: reservation_id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidBody)
		return
	}

	updated, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation not found: reservation_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id} - Validation failed: reservation_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, validationMessage(err))

		case errors.Is(err, reservations.ErrInvalidTimeSlot):
			h.logger.Warn("PUT /reservations/{id} - Invalid time slot: reservation_id=%d, time=%s", id, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, reservations.ErrSlotTaken):
			h.logger.Warn("PUT /reservations/{id} - Slot taken: reservation_id=%d, date=%s, time=%s", id, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to update reservation: reservation_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation updated successfully: reservation_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, updated)
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidName):
		return msgNameRequired
	case errors.Is(err, domain.ErrInvalidEmail):
		return msgInvalidEmail
	case errors.Is(err, domain.ErrInvalidDate):
		return msgInvalidDate
	case errors.Is(err, domain.ErrInvalidTime):
		return msgInvalidTime
	default:
		return msgInvalidInput
	}
}
