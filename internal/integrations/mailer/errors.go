package mailer

import "errors"

var (
	// ErrInvalidRecipient возвращается при пустом или некорректном адресе получателя
	ErrInvalidRecipient = errors.New("mailer: invalid recipient")

	// ErrSend возвращается при ошибке отправки письма
	ErrSend = errors.New("mailer: failed to send message")
)
