package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	createAdminHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/create_admin"
	createReservationHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/create_reservation"
	deleteAdminHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/delete_admin"
	deleteReservationHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/delete_reservation"
	getAdminsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_admins"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_available_slots"
	getReservationHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_reservation"
	getReservationsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_reservations"
	loginHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/login"
	resetAdminPasswordHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/reset_admin_password"
	updateAdminHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/update_admin"
	updateReservationHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/update_reservation"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/pkg/metrics"
)

const (
	msgNotFound         = "Nenájdené."
	msgMethodNotAllowed = "Metóda nie je povolená."
)

// Handlers хендлеры всех операций API
type Handlers struct {
	Login              *loginHandler.Handler
	CreateReservation  *createReservationHandler.Handler
	GetAvailableSlots  *getAvailableSlotsHandler.Handler
	GetReservations    *getReservationsHandler.Handler
	GetReservation     *getReservationHandler.Handler
	UpdateReservation  *updateReservationHandler.Handler
	DeleteReservation  *deleteReservationHandler.Handler
	GetAdmins          *getAdminsHandler.Handler
	CreateAdmin        *createAdminHandler.Handler
	UpdateAdmin        *updateAdminHandler.Handler
	DeleteAdmin        *deleteAdminHandler.Handler
	ResetAdminPassword *resetAdminPasswordHandler.Handler
}

// Pinger проверка доступности БД для /healthz
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Options настройки роутера
type Options struct {
	Metrics        *metrics.Metrics // nil - HTTP-метрики не собираются
	MetricsPath    string
	MetricsHandler http.Handler // nil - эндпоинт метрик не публикуется
	AllowedOrigins []string
	// RateLimitPerMinute лимит публичных POST с одного IP, 0 - без ограничения
	RateLimitPerMinute int
	DB                 Pinger
}

// NewRouter собирает маршруты и middleware
// admins нужен, чтобы токены удаленных администраторов переставали действовать
func NewRouter(h Handlers, validator middleware.TokenValidator, admins middleware.AdminLookup, opts Options, logger middleware.Logger) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondNotFound(w, msgNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})

	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
	}

	// Служебные эндпоинты
	r.HandleFunc("/healthz", healthz(opts.DB)).Methods(http.MethodGet)
	if opts.MetricsHandler != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, opts.MetricsHandler).Methods(http.MethodGet)
	}

	limited := func(next http.HandlerFunc) http.Handler {
		if opts.RateLimitPerMinute <= 0 {
			return next
		}
		return middleware.RateLimit(opts.RateLimitPerMinute)(next)
	}
	authMW := middleware.Auth(validator, admins, logger)
	protected := func(next http.HandlerFunc) http.Handler {
		return authMW(next)
	}

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	r.Handle("/login", limited(h.Login.Handle)).Methods(http.MethodPost)
	r.Handle("/reservations", limited(h.CreateReservation.Handle)).Methods(http.MethodPost)
	r.HandleFunc("/reservations/availability", h.GetAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <jwt>)
	// ============================================================

	// --- Бронирования ---
	r.Handle("/reservations", protected(h.GetReservations.Handle)).Methods(http.MethodGet)
	r.Handle("/reservations/{id:[0-9]+}", protected(h.GetReservation.Handle)).Methods(http.MethodGet)
	r.Handle("/reservations/{id:[0-9]+}", protected(h.UpdateReservation.Handle)).Methods(http.MethodPut)
	r.Handle("/reservations/{id:[0-9]+}", protected(h.DeleteReservation.Handle)).Methods(http.MethodDelete)

	// --- Администраторы ---
	r.Handle("/admins", protected(h.GetAdmins.Handle)).Methods(http.MethodGet)
	r.Handle("/admins", protected(h.CreateAdmin.Handle)).Methods(http.MethodPost)
	r.Handle("/admins/{id:[0-9]+}", protected(h.UpdateAdmin.Handle)).Methods(http.MethodPut)
	r.Handle("/admins/{id:[0-9]+}", protected(h.DeleteAdmin.Handle)).Methods(http.MethodDelete)
	r.Handle("/admins/{id:[0-9]+}/reset-password", protected(h.ResetAdminPassword.Handle)).Methods(http.MethodPost)

	// CORS и логирование снаружи роутера: preflight OPTIONS и 404 не матчатся маршрутами
	var handler http.Handler = r
	handler = middleware.CORS(opts.AllowedOrigins)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)
	return handler
}

func healthz(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				handlers.RespondError(w, http.StatusServiceUnavailable, "database unavailable")
				return
			}
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
