package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name           string  // Имя клиента
	Email          string  // E-mail для подтверждения
	Date           string  // "2025-07-22"
	Time           string  // "08:20"
	RecaptchaToken string  // Токен reCAPTCHA (пустой, если проверка выключена)
	IPAddress      *string // IP клиента (опционально)
	ClientID       *string // Идентификатор клиента из cookie (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	Name      string
	Email     string
	Date      time.Time
	Time      types.TimeString
	CreatedAt time.Time
}
