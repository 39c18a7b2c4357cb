package views

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberService/internal/client"
)

// Тексты для пользователя
const (
	msgFillAllFields   = "Vyplň prosím všetky polia."
	msgInvalidEmail    = "Zadaj platný email."
	msgServerError     = "Chyba servera, skúste znova."
	msgCannotConnect   = "Nepodarilo sa pripojiť k serveru."
	msgCaptchaFailed   = "Overenie reCAPTCHA zlyhalo."
	msgReservationDone = "Rezervácia bola úspešne vytvorená."

	msgLoginFailed     = "Nesprávne prihlasovacie údaje"
	msgLoginConnect    = "Chyba pri pripájaní na server"
	msgLoginFillFields = "Zadajte používateľské meno a heslo."

	msgLoadFailed   = "Chyba pri načítaní dát"
	msgDeleteFailed = "Chyba pri vymazávaní"
	msgSaveFailed   = "Chyba pri ukladaní zmien"
	msgSaved        = "Rezervácia bola úspešne uložená."

	msgNameRequired  = "Meno je povinné."
	msgEmailRequired = "Email je povinný."
	msgEmailFormat   = "Neplatný formát emailu."
	msgDateRequired  = "Dátum je povinný."
	msgDateFormat    = "Dátum musí byť vo formáte RRRR-MM-DD."
	msgTimeRequired  = "Čas je povinný."

	msgAdminsLoadFailed   = "Chyba pri načítaní adminov"
	msgAdminFillFields    = "Vyplňte používateľské meno a heslo"
	msgAdminEmptyUsername = "Používateľské meno nesmie byť prázdne"
	msgAdminNewPassword   = "Zadajte nové heslo"
	msgAdminCreateFailed  = "Chyba pri pridávaní admina"
	msgAdminUpdateFailed  = "Chyba pri aktualizácii admina"
	msgAdminResetFailed   = "Chyba pri resetovaní hesla"
	msgAdminResetDone     = "Heslo bolo úspešne resetované."
)

// ErrStale ответ пришел после Close или был вытеснен более новым запросом
var ErrStale = errors.New("views: stale response discarded")

// ErrClosed экран закрыт, новые запросы не отправляются
var ErrClosed = errors.New("views: view is closed")

// validationError ошибка локальной проверки с текстом для пользователя
func validationError(msg string) error {
	return fmt.Errorf("%w: %s", client.ErrValidation, msg)
}

// errorText выбирает текст для пользователя по категории ошибки
func errorText(err error, fallback string) string {
	if errors.Is(err, client.ErrTransport) {
		return msgCannotConnect
	}
	if apiErr, ok := client.AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// isAuthFailure сессии нет или сервер ее отверг
func isAuthFailure(err error) bool {
	return errors.Is(err, client.ErrUnauthorized) || errors.Is(err, client.ErrNoSession)
}
