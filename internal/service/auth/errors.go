package auth

import "errors"

var (
	// ErrInvalidCredentials неверный логин или пароль
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidToken токен не прошел проверку подписи или формата
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrTokenExpired срок действия токена истек
	ErrTokenExpired = errors.New("auth: token expired")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("auth: internal error")
)
