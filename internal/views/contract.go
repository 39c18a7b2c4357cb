package views

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/client"
)

// BookingAPI публичные операции формы бронирования
type BookingAPI interface {
	GetAvailableSlots(ctx context.Context, date string) (*client.Availability, error)
	CreateReservation(ctx context.Context, req client.CreateReservationRequest) (*client.CreateReservationResponse, error)
}

// AuthAPI вход и выход
type AuthAPI interface {
	Login(ctx context.Context, req client.LoginRequest) (*client.LoginResponse, error)
	Logout() error
}

// ReservationsAPI администрирование бронирований
type ReservationsAPI interface {
	ListReservations(ctx context.Context, filter client.ReservationsFilter) ([]client.Reservation, error)
	GetReservation(ctx context.Context, id int64) (*client.Reservation, error)
	UpdateReservation(ctx context.Context, id int64, in client.ReservationInput) (*client.Reservation, error)
	DeleteReservation(ctx context.Context, id int64) error
}

// AdminsAPI управление администраторами
type AdminsAPI interface {
	ListAdmins(ctx context.Context) ([]client.Admin, error)
	CreateAdmin(ctx context.Context, in client.AdminInput) (*client.Admin, error)
	UpdateAdmin(ctx context.Context, id int64, in client.AdminInput) (*client.Admin, error)
	DeleteAdmin(ctx context.Context, id int64) error
	ResetAdminPassword(ctx context.Context, id int64, newPassword string) error
}

// Verifier выдает токен проверки "человек ли это" (reCAPTCHA)
type Verifier interface {
	Token(ctx context.Context) (string, error)
}

// StaticVerifier возвращает заранее полученный токен (пустой - проверка выключена)
type StaticVerifier string

func (v StaticVerifier) Token(context.Context) (string, error) {
	return string(v), nil
}

// Navigator переход между экранами
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc адаптер функции к Navigator
type NavigatorFunc func(route string)

func (f NavigatorFunc) Navigate(route string) {
	f(route)
}
