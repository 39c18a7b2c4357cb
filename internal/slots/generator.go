// Package slots генерирует дневную сетку слотов барбершопа и фильтрует ее
// по существующим бронированиям и текущему времени
package slots

import (
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Generate возвращает упорядоченные слоты "HH:MM" на [StartHour, EndHour)
// с шагом IntervalMinutes, без слотов внутри перерыва
// Некорректное расписание дает пустой список
func Generate(schedule domain.Schedule) []types.TimeString {
	if err := schedule.Validate(); err != nil {
		return []types.TimeString{}
	}

	// Validate гарантирует 0 <= StartHour < EndHour <= 24
	start, _ := types.NewTimeStringFromMinutes(schedule.StartHour * 60)
	end, _ := types.NewTimeStringFromMinutes(schedule.EndHour * 60)

	result := make([]types.TimeString, 0, (end.Minutes()-start.Minutes())/schedule.IntervalMinutes+1)
	for current := start; current.IsBefore(end); {
		if !schedule.InBreak(current) {
			result = append(result, current)
		}

		next, err := current.AddMinutes(schedule.IntervalMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return result
}

// Contains проверяет, что t входит в список слотов
func Contains(all []types.TimeString, t types.TimeString) bool {
	for _, slot := range all {
		if slot.Equal(t) {
			return true
		}
	}
	return false
}
