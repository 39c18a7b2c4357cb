package views

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/client"
	"github.com/m04kA/SMC-BarberService/internal/domain"
)

var bratislava = time.FixedZone("CEST", 2*60*60)

func newTestForm(api *fakeAPI, verifier Verifier) *ReservationForm {
	f := NewReservationForm(api, verifier, domain.DefaultSchedule(), bratislava)
	f.now = func() time.Time { return time.Date(2025, 7, 21, 10, 5, 0, 0, bratislava) }
	return f
}

func TestReservationForm_ValidationSendsNothing(t *testing.T) {
	tests := []struct {
		name    string
		fields  client.ReservationInput
		message string
	}{
		{"missing name", client.ReservationInput{Email: "jan@example.sk", Date: "2025-07-22", Time: "08:00"}, msgFillAllFields},
		{"missing time", client.ReservationInput{Name: "Ján", Email: "jan@example.sk", Date: "2025-07-22"}, msgFillAllFields},
		{"bad email", client.ReservationInput{Name: "Ján", Email: "jan@example", Date: "2025-07-22", Time: "08:00"}, msgInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{}
			f := newTestForm(api, nil)
			f.SetFields(tt.fields)

			err := f.Submit(context.Background())
			assert.ErrorIs(t, err, client.ErrValidation)
			assert.Equal(t, tt.message, f.State().Error)
			assert.Empty(t, api.Calls())
		})
	}
}

func TestReservationForm_AvailableTimes(t *testing.T) {
	api := &fakeAPI{availability: &client.Availability{Reserved: []string{"08:00", "14:20"}}}
	f := newTestForm(api, nil)

	// Без даты запрос не отправляется
	times, err := f.AvailableTimes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, times)
	assert.Empty(t, api.Calls())

	f.SetFields(client.ReservationInput{Date: "2025-07-22"})
	times, err = f.AvailableTimes(context.Background())
	require.NoError(t, err)
	assert.Len(t, times, 32)
	assert.Equal(t, "08:20", times[0])
	assert.NotContains(t, times, "14:20")
	assert.NotContains(t, times, "12:00")
	assert.NotContains(t, times, "12:20")
	assert.Contains(t, times, "12:40")
	assert.Equal(t, "19:40", times[len(times)-1])
	assert.Equal(t, times, f.State().Available)

	// Сегодня прошедшие слоты отброшены
	f.SetFields(client.ReservationInput{Date: "2025-07-21"})
	times, err = f.AvailableTimes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "10:20", times[0])

	// Прошедшая дата не бронируется
	f.SetFields(client.ReservationInput{Date: "2025-07-20"})
	times, err = f.AvailableTimes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, times)
}

func TestReservationForm_AvailableTimesBadDate(t *testing.T) {
	api := &fakeAPI{availability: &client.Availability{}}
	f := newTestForm(api, nil)

	f.SetFields(client.ReservationInput{Date: "2025-13-40"})
	times, err := f.AvailableTimes(context.Background())
	assert.ErrorIs(t, err, client.ErrValidation)
	assert.Empty(t, times)
	assert.Equal(t, msgDateFormat, f.State().Error)
	assert.Empty(t, api.Calls())
}

func TestReservationForm_EmailTrimmedBeforeCheck(t *testing.T) {
	api := &fakeAPI{}
	f := newTestForm(api, nil)
	f.SetFields(client.ReservationInput{Name: "Ján", Email: " jan@example.sk ", Date: "2025-07-22", Time: "08:20"})

	require.NoError(t, f.Validate())
	require.NoError(t, f.Submit(context.Background()))
	require.NotNil(t, f.State().Created)
	assert.Equal(t, "jan@example.sk", f.State().Created.Email)
}

func TestReservationForm_SubmitSuccessResetsFields(t *testing.T) {
	api := &fakeAPI{}
	f := newTestForm(api, StaticVerifier("captcha-token"))
	f.SetFields(client.ReservationInput{Name: " Ján ", Email: "jan@example.sk", Date: "2025-07-22", Time: "08:20"})

	require.NoError(t, f.Submit(context.Background()))

	state := f.State()
	assert.True(t, state.Success)
	assert.Empty(t, state.Error)
	assert.Equal(t, client.ReservationInput{}, state.Fields)
	require.NotNil(t, state.Created)
	assert.Equal(t, "Ján", state.Created.Name)
	assert.Equal(t, []string{"create captcha-token"}, api.Calls())
}

type failingVerifier struct{}

func (failingVerifier) Token(context.Context) (string, error) {
	return "", errors.New("widget not loaded")
}

func TestReservationForm_SubmitErrors(t *testing.T) {
	valid := client.ReservationInput{Name: "Ján", Email: "jan@example.sk", Date: "2025-07-22", Time: "08:20"}

	t.Run("verifier", func(t *testing.T) {
		api := &fakeAPI{}
		f := newTestForm(api, failingVerifier{})
		f.SetFields(valid)

		assert.Error(t, f.Submit(context.Background()))
		assert.Equal(t, msgCaptchaFailed, f.State().Error)
		assert.Empty(t, api.Calls())
	})

	t.Run("server message", func(t *testing.T) {
		api := &fakeAPI{err: &client.APIError{StatusCode: 409, Message: "Zvolený termín je už obsadený."}}
		f := newTestForm(api, nil)
		f.SetFields(valid)

		assert.Error(t, f.Submit(context.Background()))
		state := f.State()
		assert.Equal(t, "Zvolený termín je už obsadený.", state.Error)
		assert.False(t, state.Success)
		assert.Equal(t, valid, state.Fields)
	})

	t.Run("transport", func(t *testing.T) {
		api := &fakeAPI{err: client.ErrTransport}
		f := newTestForm(api, nil)
		f.SetFields(valid)

		assert.ErrorIs(t, f.Submit(context.Background()), client.ErrTransport)
		assert.Equal(t, msgCannotConnect, f.State().Error)
	})
}

func TestReservationForm_LateResponseAfterClose(t *testing.T) {
	api := &fakeAPI{block: make(chan struct{})}
	f := newTestForm(api, nil)
	f.SetFields(client.ReservationInput{Name: "Ján", Email: "jan@example.sk", Date: "2025-07-22", Time: "08:20"})

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background()) }()

	require.Eventually(t, func() bool { return len(api.Calls()) == 1 }, time.Second, 5*time.Millisecond)
	f.Close()
	close(api.block)

	assert.ErrorIs(t, <-done, ErrStale)
	state := f.State()
	assert.False(t, state.Success)
	assert.Nil(t, state.Created)
	assert.Equal(t, "Ján", state.Fields.Name)

	assert.ErrorIs(t, f.Submit(context.Background()), ErrClosed)
}
