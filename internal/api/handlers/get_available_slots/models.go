package get_available_slots

import (
	"github.com/m04kA/SMC-BarberService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BarberService/internal/usecase/get_available_slots"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date     string   `json:"date"`
	Reserved []string `json:"reserved"`
	Slots    []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Reserved: make([]string, 0, len(resp.Reserved)),
		Slots:    make([]string, 0, len(resp.Slots)),
	}
	for _, t := range resp.Reserved {
		out.Reserved = append(out.Reserved, t.String())
	}
	for _, t := range resp.Slots {
		out.Slots = append(out.Slots, t.String())
	}
	return out
}
