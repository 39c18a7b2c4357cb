package domain

import (
	"time"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Reservation represents a customer's appointment at the barber shop
type Reservation struct {
	ID    int64
	Name  string
	Email string
	Date  time.Time // только дата, время суток обнулено
	Time  types.TimeString

	// Данные клиента для отслеживания злоупотреблений (опционально)
	IPAddress *string
	ClientID  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StartsAt returns the moment the appointment begins in the location of Date
func (r *Reservation) StartsAt() time.Time {
	return r.Time.On(r.Date)
}

// IsPast returns true if the appointment has already started
func (r *Reservation) IsPast(now time.Time) bool {
	return !r.StartsAt().After(now.In(r.Date.Location()))
}

// DateKey returns the reservation date as "YYYY-MM-DD"
func (r *Reservation) DateKey() string {
	return r.Date.Format(DateFormat)
}

// ReservationsFilter фильтр для списка бронирований
type ReservationsFilter struct {
	StartDate *time.Time // Начало периода включительно (опционально)
	EndDate   *time.Time // Конец периода включительно (опционально)
}
