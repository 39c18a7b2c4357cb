package client

// LoginRequest учетные данные администратора
type LoginRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	RecaptchaToken string `json:"recaptcha_token,omitempty"`
}

// LoginResponse ответ POST /login
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
	Username  string `json:"username"`
}

// ReservationInput поля бронирования для создания и изменения
type ReservationInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date"` // "2025-07-22"
	Time  string `json:"time"` // "08:20"
}

// CreateReservationRequest тело POST /reservations
type CreateReservationRequest struct {
	ReservationInput
	RecaptchaToken string `json:"recaptcha_token,omitempty"`
}

// Reservation бронирование
type Reservation struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// CreateReservationResponse ответ POST /reservations
type CreateReservationResponse struct {
	Message     string       `json:"message"`
	Reservation *Reservation `json:"reservation"`
}

// Availability занятые и свободные слоты на дату
type Availability struct {
	Date     string   `json:"date"`
	Reserved []string `json:"reserved"`
	Slots    []string `json:"slots"`
}

// ReservationsFilter необязательный период для списка бронирований
type ReservationsFilter struct {
	From string // "2025-07-01"
	To   string
}

// Admin администратор (пароль сервер не отдает)
type Admin struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// AdminInput логин и пароль администратора
// При изменении пустой Password оставляет пароль прежним
type AdminInput struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}

type resetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

type messageResponse struct {
	Message string `json:"message"`
}
