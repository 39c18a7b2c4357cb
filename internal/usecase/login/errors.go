package login

import "errors"

var (
	// ErrInvalidInput возвращается, когда логин или пароль не переданы
	ErrInvalidInput = errors.New("login: invalid input data")

	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("login: invalid credentials")

	// ErrCaptchaFailed возвращается, когда проверка reCAPTCHA не пройдена
	ErrCaptchaFailed = errors.New("login: captcha verification failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("login: internal error")
)
