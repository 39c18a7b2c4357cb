package get_reservations

import (
	"net/url"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/reservations/models"
)

// parseQuery читает необязательные from/to (YYYY-MM-DD)
func parseQuery(q url.Values) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{}

	from, err := optionalDate(q.Get("from"))
	if err != nil {
		return nil, err
	}
	to, err := optionalDate(q.Get("to"))
	if err != nil {
		return nil, err
	}

	req.StartDate = from
	req.EndDate = to
	return req, nil
}

func optionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
