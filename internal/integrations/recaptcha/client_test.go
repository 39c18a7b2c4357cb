package recaptcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "secret", r.PostForm.Get("secret"))
		assert.Equal(t, "token", r.PostForm.Get("response"))
		assert.Equal(t, "10.0.0.1", r.PostForm.Get("remoteip"))

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Verify(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		minScore float64
		wantErr  error
	}{
		{name: "success v2", status: http.StatusOK, body: `{"success": true}`},
		{name: "success v3", status: http.StatusOK, body: `{"success": true, "score": 0.9}`, minScore: 0.5},
		{name: "rejected", status: http.StatusOK, body: `{"success": false, "error-codes": ["invalid-input-response"]}`, wantErr: ErrVerificationFailed},
		{name: "low score", status: http.StatusOK, body: `{"success": true, "score": 0.1}`, minScore: 0.5, wantErr: ErrVerificationFailed},
		{name: "bad status", status: http.StatusBadGateway, body: `oops`, wantErr: ErrInvalidResponse},
		{name: "bad json", status: http.StatusOK, body: `{`, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, tt.status, tt.body)
			c := NewClient(true, srv.URL, "secret", tt.minScore, time.Second, logger.Nop())

			err := c.Verify(context.Background(), "token", "10.0.0.1")
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_DisabledAcceptsAnything(t *testing.T) {
	c := NewClient(false, "http://127.0.0.1:1", "", 0, time.Second, logger.Nop())
	assert.False(t, c.Enabled())
	assert.NoError(t, c.Verify(context.Background(), "", ""))
}

func TestClient_MissingToken(t *testing.T) {
	c := NewClient(true, "http://127.0.0.1:1", "secret", 0, time.Second, logger.Nop())
	assert.ErrorIs(t, c.Verify(context.Background(), "  ", ""), ErrMissingToken)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(true, url, "secret", 0, time.Second, logger.Nop())
	assert.ErrorIs(t, c.Verify(context.Background(), "token", ""), ErrInternal)
}
