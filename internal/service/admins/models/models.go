package models

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// Request модели

// CreateAdminRequest запрос на создание администратора
type CreateAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateAdminRequest запрос на изменение администратора
// Пустой Password - пароль не меняется
type UpdateAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}

// ResetPasswordRequest запрос на сброс пароля
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// Response модели

// AdminResponse администратор без хеша пароля
type AdminResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromDomainAdmin конвертирует domain.Admin в AdminResponse
func FromDomainAdmin(a *domain.Admin) *AdminResponse {
	return &AdminResponse{
		ID:        a.ID,
		Username:  a.Username,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainAdminList конвертирует список администраторов
func FromDomainAdminList(list []*domain.Admin) []*AdminResponse {
	result := make([]*AdminResponse, 0, len(list))
	for _, a := range list {
		result = append(result, FromDomainAdmin(a))
	}
	return result
}
