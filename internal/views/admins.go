package views

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/m04kA/SMC-BarberService/internal/client"
)

// AdminsState снимок экрана администраторов
type AdminsState struct {
	Items   []client.Admin
	Loading bool
	Error   string
	Success string
}

// AdminsView управление администраторами
type AdminsView struct {
	api     AdminsAPI
	nav     Navigator
	tracker *requestTracker

	mu    sync.Mutex
	state AdminsState
}

func NewAdminsView(api AdminsAPI, nav Navigator) *AdminsView {
	return &AdminsView{
		api:     api,
		nav:     nav,
		tracker: newRequestTracker(),
	}
}

func (v *AdminsView) State() AdminsState {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.state
	s.Items = append([]client.Admin(nil), v.state.Items...)
	return s
}

func (v *AdminsView) Load(ctx context.Context) error {
	reqCtx, tk, err := v.tracker.begin(ctx, "load")
	if err != nil {
		return err
	}

	v.mu.Lock()
	v.state.Loading = true
	v.state.Error = ""
	v.mu.Unlock()

	items, err := v.api.ListAdmins(reqCtx)

	v.mu.Lock()
	if !v.tracker.finish(tk) {
		v.mu.Unlock()
		return ErrStale
	}
	v.state.Loading = false
	if err != nil {
		return v.failLocked(err, msgAdminsLoadFailed)
	}
	v.state.Items = items
	v.mu.Unlock()
	return nil
}

// Create добавляет администратора в конец списка
func (v *AdminsView) Create(ctx context.Context, in client.AdminInput) error {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" {
		return v.invalid(msgAdminFillFields)
	}

	reqCtx, tk, err := v.tracker.begin(ctx, "create")
	if err != nil {
		return err
	}

	created, err := v.api.CreateAdmin(reqCtx, in)

	v.mu.Lock()
	if !v.tracker.finish(tk) {
		v.mu.Unlock()
		return ErrStale
	}
	if err != nil {
		return v.failLocked(err, msgAdminCreateFailed)
	}
	v.state.Items = append(v.state.Items, *created)
	v.state.Error = ""
	v.mu.Unlock()
	return nil
}

// Update меняет логин и, если задан, пароль
func (v *AdminsView) Update(ctx context.Context, id int64, in client.AdminInput) error {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" {
		return v.invalid(msgAdminEmptyUsername)
	}

	reqCtx, tk, err := v.tracker.begin(ctx, fmt.Sprintf("update:%d", id))
	if err != nil {
		return err
	}

	updated, err := v.api.UpdateAdmin(reqCtx, id, in)

	v.mu.Lock()
	if !v.tracker.finish(tk) {
		v.mu.Unlock()
		return ErrStale
	}
	if err != nil {
		return v.failLocked(err, msgAdminUpdateFailed)
	}
	for i := range v.state.Items {
		if v.state.Items[i].ID == id {
			v.state.Items[i] = *updated
		}
	}
	v.state.Error = ""
	v.mu.Unlock()
	return nil
}

// Delete удаляет администратора; сервер не дает удалить себя и последнего
func (v *AdminsView) Delete(ctx context.Context, id int64) error {
	reqCtx, tk, err := v.tracker.begin(ctx, fmt.Sprintf("delete:%d", id))
	if err != nil {
		return err
	}

	err = v.api.DeleteAdmin(reqCtx, id)

	v.mu.Lock()
	if !v.tracker.finish(tk) {
		v.mu.Unlock()
		return ErrStale
	}
	if err != nil {
		return v.failLocked(err, msgDeleteFailed)
	}
	kept := v.state.Items[:0:0]
	for _, a := range v.state.Items {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	v.state.Items = kept
	v.state.Error = ""
	v.mu.Unlock()
	return nil
}

func (v *AdminsView) ResetPassword(ctx context.Context, id int64, newPassword string) error {
	if newPassword == "" {
		return v.invalid(msgAdminNewPassword)
	}

	reqCtx, tk, err := v.tracker.begin(ctx, fmt.Sprintf("reset:%d", id))
	if err != nil {
		return err
	}

	err = v.api.ResetAdminPassword(reqCtx, id, newPassword)

	v.mu.Lock()
	if !v.tracker.finish(tk) {
		v.mu.Unlock()
		return ErrStale
	}
	if err != nil {
		return v.failLocked(err, msgAdminResetFailed)
	}
	v.state.Error = ""
	v.state.Success = msgAdminResetDone
	v.mu.Unlock()
	return nil
}

func (v *AdminsView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tracker.Close()
}

func (v *AdminsView) invalid(msg string) error {
	v.mu.Lock()
	v.state.Error = msg
	v.state.Success = ""
	v.mu.Unlock()
	return validationError(msg)
}

// failLocked вызывается под v.mu и снимает блокировку
func (v *AdminsView) failLocked(err error, fallback string) error {
	if isAuthFailure(err) {
		v.mu.Unlock()
		v.nav.Navigate(RouteLogin)
		return err
	}
	v.state.Error = errorText(err, fallback)
	v.state.Success = ""
	v.mu.Unlock()
	return err
}
