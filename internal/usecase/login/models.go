package login

import "time"

// Request модель запроса на вход
type Request struct {
	Username       string
	Password       string
	RecaptchaToken string // опционально, проверяется только при включенной reCAPTCHA
	RemoteIP       string
}

// Response модель ответа с токеном
type Response struct {
	Token     string
	ExpiresAt time.Time
	AdminID   int64
	Username  string
}
