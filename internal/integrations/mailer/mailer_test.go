package mailer

import (
	"context"
	"errors"
	"net/smtp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

type captured struct {
	addr string
	auth smtp.Auth
	from string
	to   []string
	msg  string
}

func newTestSender(username string, sendErr error) (*SMTPSender, *captured) {
	c := &captured{}
	s := NewSMTPSender("smtp.example.com", 587, username, "secret", "shop@example.com", time.Second)
	s.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		c.addr, c.auth, c.from, c.to, c.msg = addr, a, from, to, string(msg)
		return sendErr
	}
	return s, c
}

func testReservation() *domain.Reservation {
	return &domain.Reservation{
		Name:  "Ján",
		Email: "jan@example.com",
		Date:  time.Date(2025, 7, 22, 0, 0, 0, 0, time.UTC),
		Time:  types.MustTimeString("08:20"),
	}
}

func TestSMTPSender_SendReservationConfirmation(t *testing.T) {
	s, c := newTestSender("shop@example.com", nil)

	require.NoError(t, s.SendReservationConfirmation(context.Background(), testReservation()))

	assert.Equal(t, "smtp.example.com:587", c.addr)
	assert.NotNil(t, c.auth)
	assert.Equal(t, "shop@example.com", c.from)
	assert.Equal(t, []string{"jan@example.com"}, c.to)
	assert.Contains(t, c.msg, "To: jan@example.com\r\n")
	assert.Contains(t, c.msg, "Subject: =?utf-8?q?")
	assert.Contains(t, c.msg, "Dobrý deň Ján,")
	assert.Contains(t, c.msg, "na dátum: 2025-07-22, čas: 08:20.")
}

func TestSMTPSender_NoAuthWithoutUsername(t *testing.T) {
	s, c := newTestSender("", nil)

	require.NoError(t, s.Send(context.Background(), "a@b.sk", "Test", "body"))
	assert.Nil(t, c.auth)
	assert.Equal(t, "shop@example.com", c.from)
}

func TestSMTPSender_Errors(t *testing.T) {
	s, _ := newTestSender("", errors.New("connection refused"))

	err := s.Send(context.Background(), "not-an-address", "Test", "body")
	assert.ErrorIs(t, err, ErrInvalidRecipient)

	err = s.Send(context.Background(), "a@b.sk", "Test", "body")
	assert.ErrorIs(t, err, ErrSend)
}

func TestSMTPSender_ContextCancelled(t *testing.T) {
	s, _ := newTestSender("", nil)
	block := make(chan struct{})
	defer close(block)
	s.send = func(string, smtp.Auth, string, []string, []byte) error {
		<-block
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Send(ctx, "a@b.sk", "Test", "body"), ErrSend)
}
