package get_available_slots

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/slots"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// UseCase use case для получения свободных слотов на дату
type UseCase struct {
	reservationRepo ReservationRepository
	schedule        domain.Schedule
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// location - часовой пояс барбершопа, в нем определяется "сегодня"
func NewUseCase(
	reservationRepo ReservationRepository,
	schedule domain.Schedule,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		schedule:        schedule,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute возвращает занятые и свободные слоты на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Текущее время в часовом поясе барбершопа
	now := uc.timeProvider.Now().In(uc.location)

	// 3. Получаем бронирования на дату
	reservations, err := uc.reservationRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations for %s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Фильтруем расписание
	reserved := slots.ReservedFrom(reservations)
	available := slots.ForDate(uc.schedule, req.Date, reserved, now)

	busy := make([]types.TimeString, 0, len(reservations))
	for _, r := range reservations {
		busy = append(busy, r.Time)
	}
	sort.Slice(busy, func(i, j int) bool { return busy[i].IsBefore(busy[j]) })

	uc.logger.Info("GetAvailableSlots: date=%s, reserved=%d, available=%d",
		req.Date.Format(domain.DateFormat), len(busy), len(available))

	return &Response{
		Date:     req.Date,
		Reserved: busy,
		Slots:    available,
	}, nil
}
