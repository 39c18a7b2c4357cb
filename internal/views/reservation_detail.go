package views

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/m04kA/SMC-BarberService/internal/client"
)

var detailEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateReservationInput проверка полей при правке из админки
// Возвращает текст ошибки или пустую строку
func validateReservationInput(in client.ReservationInput) string {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return msgNameRequired
	case strings.TrimSpace(in.Email) == "":
		return msgEmailRequired
	case !detailEmailPattern.MatchString(strings.TrimSpace(in.Email)):
		return msgEmailFormat
	case in.Date == "":
		return msgDateRequired
	case in.Time == "":
		return msgTimeRequired
	}
	return ""
}

// ReservationDetailState снимок экрана одного бронирования
type ReservationDetailState struct {
	Reservation *client.Reservation
	Form        client.ReservationInput
	Editing     bool
	Loading     bool
	Error       string
	Success     string
}

// ReservationDetail просмотр, правка и удаление бронирования
type ReservationDetail struct {
	api     ReservationsAPI
	nav     Navigator
	tracker *requestTracker

	mu    sync.Mutex
	state ReservationDetailState
}

func NewReservationDetail(api ReservationsAPI, nav Navigator) *ReservationDetail {
	return &ReservationDetail{
		api:     api,
		nav:     nav,
		tracker: newRequestTracker(),
	}
}

func (d *ReservationDetail) State() ReservationDetailState {
	d.mu.Lock()
	defer d.mu.Unlock()
	s := d.state
	if s.Reservation != nil {
		r := *s.Reservation
		s.Reservation = &r
	}
	return s
}

// Load загружает бронирование и заполняет форму его значениями
func (d *ReservationDetail) Load(ctx context.Context, id int64) error {
	reqCtx, tk, err := d.tracker.begin(ctx, "load")
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.state.Loading = true
	d.state.Error = ""
	d.mu.Unlock()

	r, err := d.api.GetReservation(reqCtx, id)

	d.mu.Lock()
	if !d.tracker.finish(tk) {
		d.mu.Unlock()
		return ErrStale
	}
	d.state.Loading = false
	if err != nil {
		if isAuthFailure(err) {
			d.mu.Unlock()
			d.nav.Navigate(RouteLogin)
			return err
		}
		d.state.Error = errorText(err, msgLoadFailed)
		d.mu.Unlock()
		return err
	}
	d.state.Reservation = r
	d.state.Form = inputOf(r)
	d.state.Editing = false
	d.mu.Unlock()
	return nil
}

// ToggleEdit переключает режим правки; выход из правки возвращает исходные значения
func (d *ReservationDetail) ToggleEdit() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Editing = !d.state.Editing
	d.state.Error = ""
	d.state.Success = ""
	if !d.state.Editing && d.state.Reservation != nil {
		d.state.Form = inputOf(d.state.Reservation)
	}
}

func (d *ReservationDetail) SetForm(in client.ReservationInput) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Form = in
	d.state.Error = ""
}

// Save проверяет форму и отправляет изменения
func (d *ReservationDetail) Save(ctx context.Context) error {
	d.mu.Lock()
	if d.state.Reservation == nil {
		d.mu.Unlock()
		return ErrClosed
	}
	id := d.state.Reservation.ID
	form := d.state.Form
	if msg := validateReservationInput(form); msg != "" {
		d.state.Error = msg
		d.state.Success = ""
		d.mu.Unlock()
		return validationError(msg)
	}
	d.mu.Unlock()

	reqCtx, tk, err := d.tracker.begin(ctx, "save")
	if err != nil {
		return err
	}

	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	updated, err := d.api.UpdateReservation(reqCtx, id, form)

	d.mu.Lock()
	if !d.tracker.finish(tk) {
		d.mu.Unlock()
		return ErrStale
	}
	if err != nil {
		if isAuthFailure(err) {
			d.mu.Unlock()
			d.nav.Navigate(RouteLogin)
			return err
		}
		d.state.Error = errorText(err, msgSaveFailed)
		d.state.Success = ""
		d.mu.Unlock()
		return err
	}
	d.state.Reservation = updated
	d.state.Form = inputOf(updated)
	d.state.Editing = false
	d.state.Error = ""
	d.state.Success = msgSaved
	d.mu.Unlock()
	return nil
}

// Delete удаляет бронирование и возвращает к списку
func (d *ReservationDetail) Delete(ctx context.Context) error {
	d.mu.Lock()
	if d.state.Reservation == nil {
		d.mu.Unlock()
		return ErrClosed
	}
	id := d.state.Reservation.ID
	d.mu.Unlock()

	reqCtx, tk, err := d.tracker.begin(ctx, "delete")
	if err != nil {
		return err
	}

	err = d.api.DeleteReservation(reqCtx, id)

	d.mu.Lock()
	if !d.tracker.finish(tk) {
		d.mu.Unlock()
		return ErrStale
	}
	if err != nil {
		if isAuthFailure(err) {
			d.mu.Unlock()
			d.nav.Navigate(RouteLogin)
			return err
		}
		d.state.Error = errorText(err, msgDeleteFailed)
		d.mu.Unlock()
		return err
	}
	d.state.Reservation = nil
	d.mu.Unlock()

	d.nav.Navigate(RouteReservations)
	return nil
}

func (d *ReservationDetail) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tracker.Close()
}

func inputOf(r *client.Reservation) client.ReservationInput {
	return client.ReservationInput{Name: r.Name, Email: r.Email, Date: r.Date, Time: r.Time}
}
