package views

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-BarberService/internal/client"
)

// ReservationListState снимок списка бронирований
type ReservationListState struct {
	Items   []client.Reservation
	Loading bool
	Error   string
}

// ReservationList список бронирований в админке
type ReservationList struct {
	api     ReservationsAPI
	nav     Navigator
	tracker *requestTracker

	mu    sync.Mutex
	state ReservationListState
}

func NewReservationList(api ReservationsAPI, nav Navigator) *ReservationList {
	return &ReservationList{
		api:     api,
		nav:     nav,
		tracker: newRequestTracker(),
	}
}

func (l *ReservationList) State() ReservationListState {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.state
	s.Items = append([]client.Reservation(nil), l.state.Items...)
	return s
}

// Load загружает список
// Без сессии или при 401 уходит на экран входа
func (l *ReservationList) Load(ctx context.Context, filter client.ReservationsFilter) error {
	reqCtx, tk, err := l.tracker.begin(ctx, "load")
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.state.Loading = true
	l.state.Error = ""
	l.mu.Unlock()

	items, err := l.api.ListReservations(reqCtx, filter)

	l.mu.Lock()
	if !l.tracker.finish(tk) {
		l.mu.Unlock()
		return ErrStale
	}
	l.state.Loading = false
	if err != nil {
		if isAuthFailure(err) {
			l.mu.Unlock()
			l.nav.Navigate(RouteLogin)
			return err
		}
		l.state.Error = errorText(err, msgLoadFailed)
		l.mu.Unlock()
		return err
	}
	l.state.Items = items
	l.mu.Unlock()
	return nil
}

// Delete удаляет бронирование и убирает из списка ровно его
func (l *ReservationList) Delete(ctx context.Context, id int64) error {
	reqCtx, tk, err := l.tracker.begin(ctx, fmt.Sprintf("delete:%d", id))
	if err != nil {
		return err
	}

	err = l.api.DeleteReservation(reqCtx, id)

	l.mu.Lock()
	if !l.tracker.finish(tk) {
		l.mu.Unlock()
		return ErrStale
	}
	if err != nil {
		if isAuthFailure(err) {
			l.mu.Unlock()
			l.nav.Navigate(RouteLogin)
			return err
		}
		l.state.Error = errorText(err, msgDeleteFailed)
		l.mu.Unlock()
		return err
	}

	kept := l.state.Items[:0:0]
	for _, r := range l.state.Items {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	l.state.Items = kept
	l.mu.Unlock()
	return nil
}

// Update изменяет бронирование и заменяет его строку в списке
func (l *ReservationList) Update(ctx context.Context, id int64, in client.ReservationInput) error {
	if msg := validateReservationInput(in); msg != "" {
		l.mu.Lock()
		l.state.Error = msg
		l.mu.Unlock()
		return validationError(msg)
	}

	reqCtx, tk, err := l.tracker.begin(ctx, fmt.Sprintf("update:%d", id))
	if err != nil {
		return err
	}

	updated, err := l.api.UpdateReservation(reqCtx, id, in)

	l.mu.Lock()
	if !l.tracker.finish(tk) {
		l.mu.Unlock()
		return ErrStale
	}
	if err != nil {
		if isAuthFailure(err) {
			l.mu.Unlock()
			l.nav.Navigate(RouteLogin)
			return err
		}
		l.state.Error = errorText(err, msgSaveFailed)
		l.mu.Unlock()
		return err
	}
	l.replaceLocked(*updated)
	l.mu.Unlock()
	return nil
}

// Replace подменяет строку после правки на экране детали
func (l *ReservationList) Replace(r client.Reservation) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.replaceLocked(r)
}

func (l *ReservationList) replaceLocked(r client.Reservation) {
	for i := range l.state.Items {
		if l.state.Items[i].ID == r.ID {
			l.state.Items[i] = r
			return
		}
	}
}

func (l *ReservationList) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tracker.Close()
}
