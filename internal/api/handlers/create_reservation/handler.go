package create_reservation

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	createReservation "github.com/m04kA/SMC-BarberService/internal/usecase/create_reservation"
)

const (
	// clientIDCookie cookie, по которому отслеживаются бронирования одного клиента
	clientIDCookie = "client_id"
	clientIDMaxAge = 365 * 24 * 60 * 60
)

const (
	msgCreated            = "Rezervácia bola vytvorená."
	msgMissingFields      = "Vyplň prosím všetky polia."
	msgInvalidEmail       = "Zadaj platný email."
	msgInvalidDate        = "Dátum musí byť vo formáte RRRR-MM-DD."
	msgInvalidTime        = "Čas musí byť vo formáte HH:MM."
	msgInvalidInput       = "Neplatné údaje rezervácie."
	msgInvalidTimeSlot    = "Zvolený čas nie je v ponuke."
	msgSlotInPast         = "Zvolený termín už uplynul."
	msgSlotNotAvailable   = "Zvolený termín je už obsadený."
	msgCaptchaFailed      = "Overenie reCAPTCHA zlyhalo."
	msgCaptchaUnavailable = "Overenie reCAPTCHA je nedostupné, skúste znova."
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidBody)
		return
	}

	clientID := ensureClientID(w, r)

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(handlers.ClientIP(r), clientID))
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Validation failed: %v", err)
			handlers.RespondBadRequest(w, validationMessage(err))

		case errors.Is(err, createReservation.ErrInvalidTimeSlot):
			h.logger.Warn("POST /reservations - Invalid time slot: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrSlotInPast):
			h.logger.Warn("POST /reservations - Slot in past: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrCaptchaFailed):
			h.logger.Warn("POST /reservations - Captcha failed")
			handlers.RespondBadRequest(w, msgCaptchaFailed)

		case errors.Is(err, createReservation.ErrCaptchaUnavailable):
			h.logger.Error("POST /reservations - Captcha unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCaptchaUnavailable)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, CreateReservationResponse{
		Message:     msgCreated,
		Reservation: FromUseCaseResponse(result),
	})
}

// validationMessage подбирает текст по причине ошибки валидации
func validationMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidName):
		return msgMissingFields
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

// ensureClientID возвращает client_id из cookie, выдавая новый при отсутствии
func ensureClientID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(clientIDCookie); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.Must(uuid.NewV7()).String()
	http.SetCookie(w, &http.Cookie{
		Name:     clientIDCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   clientIDMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
