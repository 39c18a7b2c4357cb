package recaptcha

import "errors"

var (
	// ErrMissingToken возвращается, когда проверка включена, а токен не передан
	ErrMissingToken = errors.New("recaptcha: token is missing")

	// ErrVerificationFailed возвращается, когда Google не подтвердил токен
	ErrVerificationFailed = errors.New("recaptcha: verification failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("recaptcha client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("recaptcha client: invalid response")
)
