package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *Session) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	session, err := NewSession(NewMemoryStore())
	require.NoError(t, err)

	return NewClient(srv.URL, 2*time.Second, session, logger.Nop()), session
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_LoginStartsSession(t *testing.T) {
	c, session := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "secret1" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Zlé meno alebo heslo."})
			return
		}
		writeJSON(w, http.StatusOK, LoginResponse{Token: "jwt-token", Username: req.Username})
	})

	_, err := c.Login(context.Background(), LoginRequest{Username: "admin", Password: "bad"})
	apiErr, ok := AsAPIError(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Zlé meno alebo heslo.", apiErr.Message)
	assert.False(t, session.Active())

	resp, err := c.Login(context.Background(), LoginRequest{Username: "admin", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", resp.Token)
	assert.True(t, session.Active())
	assert.Equal(t, "admin", session.Username())

	require.NoError(t, c.Logout())
	assert.False(t, session.Active())
}

func TestClient_AttachesBearer(t *testing.T) {
	c, session := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
		assert.Equal(t, "2025-07-01", r.URL.Query().Get("from"))
		writeJSON(w, http.StatusOK, []Reservation{{ID: 1, Name: "Ján", Date: "2025-07-22", Time: "08:00"}})
	})
	require.NoError(t, session.Start(SessionData{Token: "jwt-token"}))

	list, err := c.ListReservations(context.Background(), ReservationsFilter{From: "2025-07-01"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].ID)
}

func TestClient_NoSessionFailsFast(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusOK)
	})

	_, err := c.ListReservations(context.Background(), ReservationsFilter{})
	assert.ErrorIs(t, err, ErrNoSession)
	assert.ErrorIs(t, c.DeleteAdmin(context.Background(), 1), ErrNoSession)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestClient_UnauthorizedClearsSession(t *testing.T) {
	store := NewMemoryStore()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "expired"})
	}))
	t.Cleanup(srv.Close)

	session, err := NewSession(store)
	require.NoError(t, err)
	require.NoError(t, session.Start(SessionData{Token: "stale"}))
	c := NewClient(srv.URL, time.Second, session, logger.Nop())

	_, err = c.GetReservation(context.Background(), 5)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, session.Active())

	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestClient_ServerRejection(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/reservations" {
			writeJSON(w, http.StatusConflict, map[string]string{"message": "Zvolený termín je už obsadený."})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>oops</html>"))
	})

	_, err := c.CreateReservation(context.Background(), CreateReservationRequest{
		ReservationInput: ReservationInput{Name: "Ján", Email: "jan@example.sk", Date: "2025-07-22", Time: "08:00"},
	})
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Zvolený termín je už obsadený.", apiErr.Message)

	// Тело без message
	_, err = c.GetAvailableSlots(context.Background(), "2025-07-22")
	apiErr, ok = AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Empty(t, apiErr.Message)
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	session, err := NewSession(NewMemoryStore())
	require.NoError(t, err)
	c := NewClient(url, time.Second, session, logger.Nop())

	_, err = c.GetAvailableSlots(context.Background(), "2025-07-22")
	assert.ErrorIs(t, err, ErrTransport)
	_, isAPI := AsAPIError(err)
	assert.False(t, isAPI)
}

func TestClient_CanceledContextIsTransport(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, Availability{})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetAvailableSlots(ctx, "2025-07-22")
	assert.ErrorIs(t, err, ErrTransport)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestClient_AdminOperations(t *testing.T) {
	var (
		mu  sync.Mutex
		got []string
	)
	c, session := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		got = append(got, r.Method+" "+r.URL.Path)
		mu.Unlock()
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/admins":
			writeJSON(w, http.StatusOK, []Admin{{ID: 1, Username: "admin"}})
		case r.Method == http.MethodPost && r.URL.Path == "/admins":
			var in AdminInput
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			writeJSON(w, http.StatusCreated, Admin{ID: 2, Username: in.Username})
		case r.Method == http.MethodPut:
			var in map[string]interface{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.NotContains(t, in, "password")
			writeJSON(w, http.StatusOK, Admin{ID: 2, Username: in["username"].(string)})
		case r.URL.Path == "/admins/2/reset-password":
			var in map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, "newpass1", in["new_password"])
			writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
		default:
			writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
		}
	})
	require.NoError(t, session.Start(SessionData{Token: "t"}))
	ctx := context.Background()

	admins, err := c.ListAdmins(ctx)
	require.NoError(t, err)
	assert.Len(t, admins, 1)

	created, err := c.CreateAdmin(ctx, AdminInput{Username: "barber", Password: "barber1"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)

	updated, err := c.UpdateAdmin(ctx, 2, AdminInput{Username: "barber2"})
	require.NoError(t, err)
	assert.Equal(t, "barber2", updated.Username)

	require.NoError(t, c.ResetAdminPassword(ctx, 2, "newpass1"))
	require.NoError(t, c.DeleteAdmin(ctx, 2))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"GET /admins",
		"POST /admins",
		"PUT /admins/2",
		"POST /admins/2/reset-password",
		"DELETE /admins/2",
	}, got)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.yaml")
	store := NewFileStore(path)

	data, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, data)

	session, err := NewSession(store)
	require.NoError(t, err)
	require.NoError(t, session.Start(SessionData{Token: "abc", Username: "admin"}))

	// Новый процесс видит сохраненную сессию
	restored, err := NewSession(NewFileStore(path))
	require.NoError(t, err)
	assert.Equal(t, "abc", restored.Token())
	assert.Equal(t, "admin", restored.Username())

	require.NoError(t, restored.Destroy())
	data, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, data)
	require.NoError(t, store.Clear())
}
