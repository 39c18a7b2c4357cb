package mailer

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

const confirmationSubject = "Potvrdenie rezervácie"

var confirmationBody = template.Must(template.New("confirmation").Parse(`Dobrý deň {{.Name}},

Vaša rezervácia bola úspešne vytvorená na dátum: {{.Date}}, čas: {{.Time}}.

Ďakujeme, že ste si vybrali náš barber shop!
`))

// sendFunc сигнатура smtp.SendMail, подменяется в тестах
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender отправляет письма через SMTP
// smtp.SendMail сам включает STARTTLS, если сервер его поддерживает
type SMTPSender struct {
	host    string
	addr    string
	from    string
	auth    smtp.Auth
	timeout time.Duration
	send    sendFunc
}

// NewSMTPSender создает отправителя
// PLAIN-аутентификация используется только при заданном username
func NewSMTPSender(host string, port int, username, password, from string, timeout time.Duration) *SMTPSender {
	host = strings.TrimSpace(host)
	from = strings.TrimSpace(from)
	if from == "" {
		from = username
	}

	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &SMTPSender{
		host:    host,
		addr:    net.JoinHostPort(host, strconv.Itoa(port)),
		from:    from,
		auth:    auth,
		timeout: timeout,
		send:    smtp.SendMail,
	}
}

// Send отправляет текстовое письмо
// smtp.SendMail не принимает context, поэтому отправка идет в горутине и прерывается по ctx/timeout
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	addr, err := mail.ParseAddress(to)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecipient, err)
	}

	msg := buildMessage(s.from, addr.Address, subject, body)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() {
		done <- s.send(s.addr, s.auth, s.from, []string{addr.Address}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSend, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrSend, ctx.Err())
	}
}

// SendReservationConfirmation отправляет клиенту подтверждение созданной резервации
func (s *SMTPSender) SendReservationConfirmation(ctx context.Context, reservation *domain.Reservation) error {
	body, err := RenderConfirmation(reservation)
	if err != nil {
		return err
	}
	return s.Send(ctx, reservation.Email, confirmationSubject, body)
}

// RenderConfirmation формирует текст письма-подтверждения
func RenderConfirmation(reservation *domain.Reservation) (string, error) {
	var buf bytes.Buffer
	err := confirmationBody.Execute(&buf, struct {
		Name string
		Date string
		Time string
	}{
		Name: reservation.Name,
		Date: reservation.Date.Format(domain.DateFormat),
		Time: reservation.Time.String(),
	})
	if err != nil {
		return "", fmt.Errorf("mailer: render confirmation: %w", err)
	}
	return buf.String(), nil
}

// Nop отправитель для выключенной почты
type Nop struct{}

func (Nop) SendReservationConfirmation(context.Context, *domain.Reservation) error {
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	headers := []string{
		"From: " + from,
		"To: " + to,
		"Subject: " + mime.QEncoding.Encode("utf-8", subject),
		"Date: " + time.Now().Format(time.RFC1123Z),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"Content-Transfer-Encoding: 8bit",
	}

	body = strings.ReplaceAll(body, "\r\n", "\n")
	body = strings.ReplaceAll(body, "\n", "\r\n")

	return []byte(strings.Join(headers, "\r\n") + "\r\n\r\n" + body)
}
