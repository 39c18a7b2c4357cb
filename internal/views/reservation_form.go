package views

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/client"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/slots"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

var formEmailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ReservationFormState снимок состояния формы
type ReservationFormState struct {
	Fields    client.ReservationInput
	Available []string
	Loading   bool
	Success   bool
	Error     string
	Created   *client.Reservation
}

// ReservationForm публичная форма бронирования
type ReservationForm struct {
	api      BookingAPI
	verifier Verifier
	schedule domain.Schedule
	location *time.Location
	now      func() time.Time
	tracker  *requestTracker

	mu    sync.Mutex
	state ReservationFormState
}

// NewReservationForm создает форму
// location - часовой пояс барбершопа, в нем определяется "сегодня"
func NewReservationForm(api BookingAPI, verifier Verifier, schedule domain.Schedule, location *time.Location) *ReservationForm {
	if location == nil {
		location = time.Local
	}
	if verifier == nil {
		verifier = StaticVerifier("")
	}
	return &ReservationForm{
		api:      api,
		verifier: verifier,
		schedule: schedule,
		location: location,
		now:      time.Now,
		tracker:  newRequestTracker(),
	}
}

// State текущее состояние
func (f *ReservationForm) State() ReservationFormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.state
	s.Available = append([]string(nil), f.state.Available...)
	return s
}

// SetFields заменяет значения полей и сбрасывает текст ошибки
// Смена даты сбрасывает список доступного времени
func (f *ReservationForm) SetFields(fields client.ReservationInput) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if fields.Date != f.state.Fields.Date {
		f.state.Available = nil
	}
	f.state.Fields = fields
	f.state.Error = ""
	f.state.Success = false
}

// Validate проверяет поля локально, без запроса
func (f *ReservationForm) Validate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked()
}

func (f *ReservationForm) validateLocked() error {
	fields := f.state.Fields
	if strings.TrimSpace(fields.Name) == "" || strings.TrimSpace(fields.Email) == "" ||
		fields.Date == "" || fields.Time == "" {
		f.state.Error = msgFillAllFields
		return validationError(msgFillAllFields)
	}
	if !formEmailPattern.MatchString(strings.TrimSpace(fields.Email)) {
		f.state.Error = msgInvalidEmail
		return validationError(msgInvalidEmail)
	}
	return nil
}

// AvailableTimes загружает занятое время на выбранную дату и фильтрует сетку слотов
// Без даты список пустой и запрос не отправляется
// Дата не в формате YYYY-MM-DD дает ошибку проверки, тоже без запроса
func (f *ReservationForm) AvailableTimes(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	dateStr := f.state.Fields.Date
	f.mu.Unlock()

	if dateStr == "" {
		return []string{}, nil
	}
	date, err := domain.ParseDate(dateStr)
	if err != nil {
		f.mu.Lock()
		f.state.Error = msgDateFormat
		f.state.Available = nil
		f.mu.Unlock()
		return nil, validationError(msgDateFormat)
	}

	reqCtx, tk, err := f.tracker.begin(ctx, "availability")
	if err != nil {
		return nil, err
	}

	resp, err := f.api.GetAvailableSlots(reqCtx, dateStr)

	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.tracker.finish(tk) {
		return nil, ErrStale
	}
	if err != nil {
		f.state.Error = errorText(err, msgServerError)
		return nil, err
	}

	reserved := slots.Reserved{}
	for _, raw := range resp.Reserved {
		if t, err := types.NewTimeStringFromString(raw); err == nil {
			reserved.Add(date, t)
		}
	}

	available := slots.ForDate(f.schedule, date, reserved, f.now().In(f.location))
	out := make([]string, 0, len(available))
	for _, t := range available {
		out = append(out, t.String())
	}

	f.state.Available = out
	return append([]string(nil), out...), nil
}

// Submit проверяет форму, получает токен reCAPTCHA и создает бронирование
// При успехе форма очищается
func (f *ReservationForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if err := f.validateLocked(); err != nil {
		f.mu.Unlock()
		return err
	}
	fields := f.state.Fields
	f.mu.Unlock()

	reqCtx, tk, err := f.tracker.begin(ctx, "submit")
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.state.Loading = true
	f.state.Error = ""
	f.state.Success = false
	f.mu.Unlock()

	resp, err := f.send(reqCtx, fields)

	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.tracker.finish(tk) {
		return ErrStale
	}
	f.state.Loading = false

	if err != nil {
		switch {
		case errors.Is(err, errVerifier):
			f.state.Error = msgCaptchaFailed
		default:
			f.state.Error = errorText(err, msgServerError)
		}
		return err
	}

	f.state.Success = true
	f.state.Created = resp.Reservation
	f.state.Fields = client.ReservationInput{}
	f.state.Available = nil
	return nil
}

// Close отменяет запросы формы, поздние ответы отбрасываются
func (f *ReservationForm) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tracker.Close()
}

var errVerifier = errors.New("views: human verification failed")

func (f *ReservationForm) send(ctx context.Context, fields client.ReservationInput) (*client.CreateReservationResponse, error) {
	token, err := f.verifier.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errVerifier, err)
	}

	return f.api.CreateReservation(ctx, client.CreateReservationRequest{
		ReservationInput: client.ReservationInput{
			Name:  strings.TrimSpace(fields.Name),
			Email: strings.TrimSpace(fields.Email),
			Date:  fields.Date,
			Time:  fields.Time,
		},
		RecaptchaToken: token,
	})
}
