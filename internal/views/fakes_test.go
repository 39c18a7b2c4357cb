package views

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-BarberService/internal/client"
)

type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	availability *client.Availability
	reservations []client.Reservation
	admins       []client.Admin
	err          error

	// block, если задан, держит запрос до закрытия канала
	block chan struct{}
}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) wait() {
	if f.block != nil {
		<-f.block
	}
}

func (f *fakeAPI) GetAvailableSlots(_ context.Context, date string) (*client.Availability, error) {
	f.record("availability " + date)
	f.wait()
	if f.err != nil {
		return nil, f.err
	}
	return f.availability, nil
}

func (f *fakeAPI) CreateReservation(_ context.Context, req client.CreateReservationRequest) (*client.CreateReservationResponse, error) {
	f.record("create " + req.RecaptchaToken)
	f.wait()
	if f.err != nil {
		return nil, f.err
	}
	return &client.CreateReservationResponse{
		Message: msgReservationDone,
		Reservation: &client.Reservation{
			ID: 1, Name: req.Name, Email: req.Email, Date: req.Date, Time: req.Time,
		},
	}, nil
}

func (f *fakeAPI) Login(_ context.Context, req client.LoginRequest) (*client.LoginResponse, error) {
	f.record("login " + req.Username)
	f.wait()
	if f.err != nil {
		return nil, f.err
	}
	return &client.LoginResponse{Token: "t", Username: req.Username}, nil
}

func (f *fakeAPI) Logout() error {
	f.record("logout")
	return nil
}

func (f *fakeAPI) ListReservations(_ context.Context, _ client.ReservationsFilter) ([]client.Reservation, error) {
	f.record("list")
	f.wait()
	if f.err != nil {
		return nil, f.err
	}
	return append([]client.Reservation(nil), f.reservations...), nil
}

func (f *fakeAPI) GetReservation(_ context.Context, id int64) (*client.Reservation, error) {
	f.record("get")
	f.wait()
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.reservations {
		if r.ID == id {
			r := r
			return &r, nil
		}
	}
	return nil, &client.APIError{StatusCode: 404, Message: "Rezervácia nebola nájdená."}
}

func (f *fakeAPI) UpdateReservation(_ context.Context, id int64, in client.ReservationInput) (*client.Reservation, error) {
	f.record("update")
	f.wait()
	if f.err != nil {
		return nil, f.err
	}
	return &client.Reservation{ID: id, Name: in.Name, Email: in.Email, Date: in.Date, Time: in.Time}, nil
}

func (f *fakeAPI) DeleteReservation(_ context.Context, _ int64) error {
	f.record("delete")
	f.wait()
	return f.err
}

func (f *fakeAPI) ListAdmins(_ context.Context) ([]client.Admin, error) {
	f.record("admins")
	f.wait()
	if f.err != nil {
		return nil, f.err
	}
	return append([]client.Admin(nil), f.admins...), nil
}

func (f *fakeAPI) CreateAdmin(_ context.Context, in client.AdminInput) (*client.Admin, error) {
	f.record("create admin")
	if f.err != nil {
		return nil, f.err
	}
	return &client.Admin{ID: 99, Username: in.Username}, nil
}

func (f *fakeAPI) UpdateAdmin(_ context.Context, id int64, in client.AdminInput) (*client.Admin, error) {
	f.record("update admin")
	if f.err != nil {
		return nil, f.err
	}
	return &client.Admin{ID: id, Username: in.Username}, nil
}

func (f *fakeAPI) DeleteAdmin(_ context.Context, _ int64) error {
	f.record("delete admin")
	return f.err
}

func (f *fakeAPI) ResetAdminPassword(_ context.Context, _ int64, _ string) error {
	f.record("reset")
	return f.err
}

type recordingNav struct {
	mu     sync.Mutex
	routes []string
}

func (n *recordingNav) Navigate(route string) {
	n.mu.Lock()
	n.routes = append(n.routes, route)
	n.mu.Unlock()
}

func (n *recordingNav) Routes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.routes...)
}
