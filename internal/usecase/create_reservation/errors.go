package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrCaptchaFailed возвращается, когда проверка reCAPTCHA не пройдена
	ErrCaptchaFailed = errors.New("create_reservation: captcha verification failed")

	// ErrCaptchaUnavailable возвращается, когда сервис reCAPTCHA недоступен
	ErrCaptchaUnavailable = errors.New("create_reservation: captcha service unavailable")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает со слотом расписания
	ErrInvalidTimeSlot = errors.New("create_reservation: invalid time slot")

	// ErrSlotInPast возвращается, когда дата или время уже прошли
	ErrSlotInPast = errors.New("create_reservation: slot is in the past")

	// ErrSlotNotAvailable возвращается, когда выбранный слот уже занят
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
