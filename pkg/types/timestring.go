package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeFormat возвращается, когда строка не в формате HH:MM
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда результат выходит за пределы суток
	ErrTimeOverflow = errors.New("time string overflow")
)

// TimeString время суток с точностью до минуты ("HH:MM")
// Хранится как количество минут от полуночи, поэтому сравнение и сдвиг тривиальны
type TimeString struct {
	minutes int
}

// NewTimeString создает TimeString из часов и минут time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*60 + t.Minute()}
}

// NewTimeStringFromParts создает TimeString из часа и минуты
func NewTimeStringFromParts(hour, minute int) (TimeString, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeString{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeFormat, hour, minute)
	}
	return TimeString{minutes: hour*60 + minute}, nil
}

// NewTimeStringFromMinutes создает TimeString из минут от полуночи
// Допускается 24:00 (конец суток) как правая граница интервала
func NewTimeStringFromMinutes(m int) (TimeString, error) {
	if m < 0 || m > minutesPerDay {
		return TimeString{}, fmt.Errorf("%w: %d minutes", ErrTimeOverflow, m)
	}
	return TimeString{minutes: m}, nil
}

// NewTimeStringFromString парсит строку "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	// Postgres отдает TIME как "HH:MM:SS"
	if len(s) == 8 && s[5] == ':' {
		s = s[:5]
	}

	t, err := time.Parse("15:04", s)
	if err != nil || len(s) != 5 {
		return TimeString{}, ErrInvalidTimeFormat
	}

	return TimeString{minutes: t.Hour()*60 + t.Minute()}, nil
}

// MustTimeString парсит строку и паникует при ошибке (для констант и тестов)
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// Hour возвращает час
func (t TimeString) Hour() int {
	return t.minutes / 60
}

// Minute возвращает минуту
func (t TimeString) Minute() int {
	return t.minutes % 60
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() int {
	return t.minutes
}

// AddMinutes сдвигает время на указанное количество минут
// Возвращает ErrTimeOverflow, если результат выходит за пределы [00:00, 24:00]
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	result := t.minutes + m
	if result < 0 || result > minutesPerDay {
		return TimeString{}, fmt.Errorf("%w: %s%+d min", ErrTimeOverflow, t, m)
	}
	return TimeString{minutes: result}, nil
}

// IsBefore строго раньше
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

// IsAfter строго позже
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes > other.minutes
}

// Equal равенство
func (t TimeString) Equal(other TimeString) bool {
	return t.minutes == other.minutes
}

// On возвращает момент времени в указанную дату
func (t TimeString) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

// String возвращает "HH:MM"
func (t TimeString) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalJSON сериализует как "HH:MM"
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON парсит "HH:MM"
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ErrInvalidTimeFormat
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan реализует sql.Scanner
// Поддерживает TEXT/VARCHAR (sqlite), TIME (postgres) и time.Time
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
	case time.Time:
		*t = NewTimeString(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeFormat, src)
	}
	return nil
}
