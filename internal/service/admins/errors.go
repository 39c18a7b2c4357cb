package admins

import "errors"

var (
	// ErrAdminNotFound возвращается, когда администратор не найден
	ErrAdminNotFound = errors.New("admin not found")

	// ErrAdminAlreadyExists возвращается, когда логин уже занят
	ErrAdminAlreadyExists = errors.New("admin already exists")

	// ErrLastAdmin возвращается при попытке удалить последнего администратора
	ErrLastAdmin = errors.New("cannot delete the last admin")

	// ErrCannotDeleteSelf возвращается при попытке удалить собственный аккаунт
	ErrCannotDeleteSelf = errors.New("cannot delete own account")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
