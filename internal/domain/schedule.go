package domain

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// ErrInvalidSchedule возвращается при некорректной конфигурации рабочего дня
var ErrInvalidSchedule = errors.New("invalid schedule")

// Schedule describes the bookable working day: [StartHour, EndHour) split into
// IntervalMinutes-wide slots, with [BreakStart, BreakEnd) excluded
type Schedule struct {
	StartHour       int
	EndHour         int
	IntervalMinutes int
	BreakStart      *types.TimeString // nil - без перерыва
	BreakEnd        *types.TimeString
}

// DefaultSchedule returns the shop's default working day: 08-20, 20 min slots, break 12:00-12:40
func DefaultSchedule() Schedule {
	breakStart := types.MustTimeString(DefaultBreakStart)
	breakEnd := types.MustTimeString(DefaultBreakEnd)
	return Schedule{
		StartHour:       DefaultStartHour,
		EndHour:         DefaultEndHour,
		IntervalMinutes: DefaultIntervalMinutes,
		BreakStart:      &breakStart,
		BreakEnd:        &breakEnd,
	}
}

// HasBreak returns true if the schedule has a break window
func (s Schedule) HasBreak() bool {
	return s.BreakStart != nil && s.BreakEnd != nil
}

// InBreak returns true if t falls into [BreakStart, BreakEnd)
func (s Schedule) InBreak(t types.TimeString) bool {
	if !s.HasBreak() {
		return false
	}
	return !t.IsBefore(*s.BreakStart) && t.IsBefore(*s.BreakEnd)
}

// Validate checks the schedule bounds
func (s Schedule) Validate() error {
	if s.StartHour < 0 || s.StartHour > 23 {
		return fmt.Errorf("%w: start hour %d out of range", ErrInvalidSchedule, s.StartHour)
	}
	if s.EndHour <= s.StartHour || s.EndHour > 24 {
		return fmt.Errorf("%w: end hour %d must be in (%d, 24]", ErrInvalidSchedule, s.EndHour, s.StartHour)
	}
	if s.IntervalMinutes < MinIntervalMinutes || s.IntervalMinutes > MaxIntervalMinutes {
		return fmt.Errorf("%w: interval %d must be in [%d, %d]",
			ErrInvalidSchedule, s.IntervalMinutes, MinIntervalMinutes, MaxIntervalMinutes)
	}
	if (s.BreakStart == nil) != (s.BreakEnd == nil) {
		return fmt.Errorf("%w: break start and end must be set together", ErrInvalidSchedule)
	}
	if s.HasBreak() && !s.BreakStart.IsBefore(*s.BreakEnd) {
		return fmt.Errorf("%w: break start %s must be before break end %s", ErrInvalidSchedule, s.BreakStart, s.BreakEnd)
	}
	return nil
}
