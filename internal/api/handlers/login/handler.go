package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	loginUC "github.com/m04kA/SMC-BarberService/internal/usecase/login"
)

const (
	msgMissingFields      = "Zadajte používateľské meno a heslo."
	msgInvalidCredentials = "Zlé meno alebo heslo."
	msgCaptchaFailed      = "Overenie reCAPTCHA zlyhalo."
)

type Handler struct {
	useCase LoginUseCase
	logger  Logger
}

func NewHandler(useCase LoginUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(handlers.ClientIP(r)))
	if err != nil {
		switch {
		case errors.Is(err, loginUC.ErrInvalidInput):
			h.logger.Warn("POST /login - Missing credentials")
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, loginUC.ErrInvalidCredentials):
			h.logger.Warn("POST /login - Invalid credentials: username=%s", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, loginUC.ErrCaptchaFailed):
			h.logger.Warn("POST /login - Captcha failed: username=%s", req.Username)
			handlers.RespondBadRequest(w, msgCaptchaFailed)

		default:
			h.logger.Error("POST /login - Failed to login: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /login - Admin logged in: admin_id=%d", result.AdminID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
