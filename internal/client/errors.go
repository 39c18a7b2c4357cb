package client

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation локальная ошибка валидации, запрос не отправлялся
	// Клиент ее не возвращает, ее используют формы
	ErrValidation = errors.New("client: validation failed")

	// ErrTransport сетевая ошибка, сервер не ответил
	ErrTransport = errors.New("client: transport failure")

	// ErrUnauthorized сервер ответил 401 на авторизованный запрос, сессия сброшена
	ErrUnauthorized = errors.New("client: unauthorized")

	// ErrNoSession авторизованный запрос без токена, запрос не отправлялся
	ErrNoSession = errors.New("client: no session")

	// ErrInvalidResponse ответ сервера не удалось разобрать
	ErrInvalidResponse = errors.New("client: invalid response")
)

// APIError сервер отклонил запрос
type APIError struct {
	StatusCode int
	// Message текст из тела {"message": ...}, пустой если сервер его не прислал
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("client: server rejected request with status %d", e.StatusCode)
	}
	return fmt.Sprintf("client: server rejected request with status %d: %s", e.StatusCode, e.Message)
}

// AsAPIError достает *APIError из цепочки ошибок
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
