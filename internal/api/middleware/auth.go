package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	adminRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/admin"
	"github.com/m04kA/SMC-BarberService/internal/service/auth"
)

type contextKey string

const (
	adminIDKey   contextKey = "admin_id"
	usernameKey  contextKey = "admin_username"
	requestIDKey contextKey = "request_id"
)

// TokenValidator проверка bearer-токена
type TokenValidator interface {
	ValidateToken(token string) (*auth.Principal, error)
}

// AdminLookup поиск администратора, на которого выписан токен
type AdminLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.Admin, error)
}

// Auth требует заголовок Authorization: Bearer <jwt> и кладет ID администратора в контекст
// Токен удаленного администратора отклоняется, даже если подпись и срок в порядке
func Auth(validator TokenValidator, admins AdminLookup, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			token = strings.TrimSpace(token)
			if !ok || token == "" {
				logger.Warn("%s %s - missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, handlers.MsgTokenMissing)
				return
			}

			principal, err := validator.ValidateToken(token)
			if err != nil {
				logger.Warn("%s %s - invalid token: %v", r.Method, r.URL.Path, err)
				if errors.Is(err, auth.ErrTokenExpired) {
					handlers.RespondUnauthorized(w, handlers.MsgTokenExpired)
					return
				}
				handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
				return
			}

			admin, err := admins.GetByID(r.Context(), principal.AdminID)
			if err != nil {
				if errors.Is(err, adminRepo.ErrAdminNotFound) {
					logger.Warn("%s %s - token of deleted admin: admin_id=%d", r.Method, r.URL.Path, principal.AdminID)
					handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
					return
				}
				logger.Error("%s %s - failed to load admin: admin_id=%d, error=%v", r.Method, r.URL.Path, principal.AdminID, err)
				handlers.RespondInternalError(w)
				return
			}

			ctx := context.WithValue(r.Context(), adminIDKey, admin.ID)
			ctx = context.WithValue(ctx, usernameKey, admin.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminID извлекает ID администратора из контекста
func GetAdminID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(adminIDKey).(int64)
	return id, ok
}

// GetUsername извлекает логин администратора из контекста
func GetUsername(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey).(string)
	return username
}

// WithAdminID кладет ID администратора в контекст (для тестов хендлеров)
func WithAdminID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, adminIDKey, id)
}
