package models

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// Request модели

// UpdateReservationRequest запрос на изменение бронирования
type UpdateReservationRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date"` // "2025-07-22"
	Time  string `json:"time"` // "08:20"
}

// ListReservationsRequest запрос на список бронирований
type ListReservationsRequest struct {
	StartDate *time.Time // Начало периода включительно (опционально)
	EndDate   *time.Time // Конец периода включительно (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() domain.ReservationsFilter {
	return domain.ReservationsFilter{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Date      string `json:"date"` // "2025-07-22"
	Time      string `json:"time"` // "08:20"
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromDomainReservation конвертирует domain.Reservation в ReservationResponse
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Date:      r.Date.Format(domain.DateFormat),
		Time:      r.Time.String(),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список бронирований
func FromDomainReservationList(list []*domain.Reservation) []*ReservationResponse {
	result := make([]*ReservationResponse, 0, len(list))
	for _, r := range list {
		result = append(result, FromDomainReservation(r))
	}
	return result
}
