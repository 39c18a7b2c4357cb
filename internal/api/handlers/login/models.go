package login

import (
	"time"

	loginUC "github.com/m04kA/SMC-BarberService/internal/usecase/login"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	RecaptchaToken string `json:"recaptcha_token,omitempty"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
	Username  string `json:"username"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *LoginRequest) ToUseCaseRequest(remoteIP string) *loginUC.Request {
	return &loginUC.Request{
		Username:       r.Username,
		Password:       r.Password,
		RecaptchaToken: r.RecaptchaToken,
		RemoteIP:       remoteIP,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *loginUC.Response) *LoginResponse {
	return &LoginResponse{
		Token:     resp.Token,
		ExpiresAt: resp.ExpiresAt.UTC().Format(time.RFC3339),
		Username:  resp.Username,
	}
}
