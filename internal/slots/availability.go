package slots

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Reserved занятое время по датам "YYYY-MM-DD"
type Reserved map[string][]types.TimeString

// Add помечает время как занятое
func (r Reserved) Add(date time.Time, t types.TimeString) {
	key := date.Format(domain.DateFormat)
	r[key] = append(r[key], t)
}

// ReservedFrom собирает занятые слоты из списка бронирований
func ReservedFrom(reservations []*domain.Reservation) Reserved {
	reserved := make(Reserved, len(reservations))
	for _, r := range reservations {
		reserved.Add(r.Date, r.Time)
	}
	return reserved
}

// Available оставляет слоты, не занятые на date
// Если date - сегодня (в локации now), слоты <= текущей минуты отбрасываются
func Available(all []types.TimeString, date time.Time, reserved Reserved, now time.Time) []types.TimeString {
	key := date.Format(domain.DateFormat)
	busy := reserved[key]

	isToday := key == now.Format(domain.DateFormat)
	current := types.NewTimeString(now)

	result := make([]types.TimeString, 0, len(all))
	for _, slot := range all {
		if Contains(busy, slot) {
			continue
		}
		if isToday && !slot.IsAfter(current) {
			continue
		}
		result = append(result, slot)
	}

	return result
}

// ForDate генерирует расписание на дату и фильтрует его
// Дата раньше сегодняшней не бронируется вовсе
func ForDate(schedule domain.Schedule, date time.Time, reserved Reserved, now time.Time) []types.TimeString {
	if IsPastDate(date, now) {
		return []types.TimeString{}
	}
	return Available(Generate(schedule), date, reserved, now)
}

// IsPastDate проверяет, что дата раньше сегодняшнего дня (в локации now)
func IsPastDate(date, now time.Time) bool {
	return date.Format(domain.DateFormat) < now.Format(domain.DateFormat)
}
