package domain

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

var (
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidTime     = errors.New("invalid time")
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidPassword = errors.New("invalid password")
)

// ReservationInput сырые поля резервации, как они приходят от клиента
type ReservationInput struct {
	Name  string
	Email string
	Date  string
	Time  string
}

// ParsedReservation провалидированные и распарсенные поля
type ParsedReservation struct {
	Name  string
	Email string
	Date  time.Time
	Time  types.TimeString
}

// ParseReservation проверяет поля: непустое имя, e-mail, дата YYYY-MM-DD, время HH:MM
func ParseReservation(in ReservationInput) (ParsedReservation, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return ParsedReservation{}, fmt.Errorf("%w: name is required", ErrInvalidName)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ParsedReservation{}, fmt.Errorf("%w: name is longer than %d characters", ErrInvalidName, MaxNameLength)
	}

	email, err := NormalizeEmail(in.Email)
	if err != nil {
		return ParsedReservation{}, err
	}

	date, err := ParseDate(in.Date)
	if err != nil {
		return ParsedReservation{}, err
	}

	t, err := types.NewTimeStringFromString(in.Time)
	if err != nil || len(strings.TrimSpace(in.Time)) != len(TimeFormat) {
		return ParsedReservation{}, fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidTime)
	}

	return ParsedReservation{Name: name, Email: email, Date: date, Time: t}, nil
}

// NormalizeEmail проверяет адрес и возвращает его без пробелов по краям
func NormalizeEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", fmt.Errorf("%w: email is required", ErrInvalidEmail)
	}
	if len(email) > MaxEmailLength {
		return "", fmt.Errorf("%w: email is longer than %d characters", ErrInvalidEmail, MaxEmailLength)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: %q is not a valid address", ErrInvalidEmail, email)
	}

	at := strings.LastIndex(email, "@")
	if !strings.Contains(email[at+1:], ".") {
		return "", fmt.Errorf("%w: %q has no domain", ErrInvalidEmail, email)
	}

	return email, nil
}

// ParseDate парсит дату YYYY-MM-DD в полночь UTC
func ParseDate(raw string) (time.Time, error) {
	date, err := time.Parse(DateFormat, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidDate)
	}
	return date, nil
}

// ValidateUsername проверяет логин администратора
func ValidateUsername(username string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(username))
	if n == 0 {
		return fmt.Errorf("%w: username is required", ErrInvalidUsername)
	}
	if n < MinUsernameLength || n > MaxUsernameLength {
		return fmt.Errorf("%w: username must be %d-%d characters", ErrInvalidUsername, MinUsernameLength, MaxUsernameLength)
	}
	return nil
}

// ValidatePassword проверяет длину пароля
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidPassword, MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidPassword, MaxPasswordLength)
	}
	return nil
}
