package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	createReservation "github.com/m04kA/SMC-BarberService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Date           string `json:"date"` // "2025-07-22"
	Time           string `json:"time"` // "08:20"
	RecaptchaToken string `json:"recaptcha_token,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	CreatedAt string `json:"createdAt"`
}

// CreateReservationResponse тело ответа 201
type CreateReservationResponse struct {
	Message     string               `json:"message"`
	Reservation *ReservationResponse `json:"reservation"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(ip, clientID string) *createReservation.Request {
	req := &createReservation.Request{
		Name:           r.Name,
		Email:          r.Email,
		Date:           r.Date,
		Time:           r.Time,
		RecaptchaToken: r.RecaptchaToken,
	}
	if ip != "" {
		req.IPAddress = ptr.Ptr(ip)
	}
	if clientID != "" {
		req.ClientID = ptr.Ptr(clientID)
	}
	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		Name:      resp.Name,
		Email:     resp.Email,
		Date:      resp.Date.Format(domain.DateFormat),
		Time:      resp.Time.String(),
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
