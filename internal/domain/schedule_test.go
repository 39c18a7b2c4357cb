package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

func TestSchedule_Validate(t *testing.T) {
	ts := func(s string) *types.TimeString {
		v := types.MustTimeString(s)
		return &v
	}

	tests := []struct {
		name     string
		schedule Schedule
		wantErr  bool
	}{
		{name: "default", schedule: DefaultSchedule()},
		{name: "no break", schedule: Schedule{StartHour: 9, EndHour: 17, IntervalMinutes: 30}},
		{name: "end before start", schedule: Schedule{StartHour: 17, EndHour: 9, IntervalMinutes: 30}, wantErr: true},
		{name: "end after midnight", schedule: Schedule{StartHour: 9, EndHour: 25, IntervalMinutes: 30}, wantErr: true},
		{name: "tiny interval", schedule: Schedule{StartHour: 9, EndHour: 17, IntervalMinutes: 1}, wantErr: true},
		{name: "half break", schedule: Schedule{StartHour: 9, EndHour: 17, IntervalMinutes: 30, BreakStart: ts("12:00")}, wantErr: true},
		{
			name:     "inverted break",
			schedule: Schedule{StartHour: 9, EndHour: 17, IntervalMinutes: 30, BreakStart: ts("13:00"), BreakEnd: ts("12:00")},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schedule.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSchedule)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSchedule_InBreak(t *testing.T) {
	s := DefaultSchedule()
	assert.True(t, s.InBreak(types.MustTimeString("12:00")))
	assert.True(t, s.InBreak(types.MustTimeString("12:20")))
	assert.False(t, s.InBreak(types.MustTimeString("12:40")))
	assert.False(t, s.InBreak(types.MustTimeString("11:40")))
}

func TestReservation_IsPast(t *testing.T) {
	r := Reservation{
		Date: time.Date(2025, 7, 22, 0, 0, 0, 0, time.UTC),
		Time: types.MustTimeString("10:00"),
	}

	assert.False(t, r.IsPast(time.Date(2025, 7, 22, 9, 59, 0, 0, time.UTC)))
	assert.True(t, r.IsPast(time.Date(2025, 7, 22, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-07-22", r.DateKey())
}
