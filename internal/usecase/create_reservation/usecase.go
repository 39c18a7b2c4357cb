package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-BarberService/internal/integrations/recaptcha"
	"github.com/m04kA/SMC-BarberService/internal/slots"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Результаты для метрики reservations_created_total
const (
	resultCreated     = "created"
	resultInvalid     = "invalid"
	resultCaptcha     = "captcha_failed"
	resultSlotTaken   = "slot_taken"
	resultSlotInPast  = "slot_in_past"
	resultInternalErr = "error"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	captcha         CaptchaVerifier
	notifier        Notifier
	txManager       TransactionManager
	metrics         MetricsRecorder
	schedule        domain.Schedule
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	captcha CaptchaVerifier,
	notifier Notifier,
	txManager TransactionManager,
	metrics MetricsRecorder,
	schedule domain.Schedule,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		captcha:         captcha,
		notifier:        notifier,
		txManager:       txManager,
		metrics:         metrics,
		schedule:        schedule,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка занятости и вставка идут в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: date=%s, time=%s", req.Date, req.Time)

	// 1. Валидация входных данных
	parsed, err := domain.ParseReservation(domain.ReservationInput{
		Name:  req.Name,
		Email: req.Email,
		Date:  req.Date,
		Time:  req.Time,
	})
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		uc.observe(resultInvalid)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// 2. Проверяем reCAPTCHA
	if err := uc.captcha.Verify(ctx, req.RecaptchaToken, ptr.Deref(req.IPAddress, "")); err != nil {
		if errors.Is(err, recaptcha.ErrVerificationFailed) || errors.Is(err, recaptcha.ErrMissingToken) {
			uc.logger.Warn("CreateReservation: captcha rejected: %v", err)
			uc.observe(resultCaptcha)
			return nil, ErrCaptchaFailed
		}
		uc.logger.Error("CreateReservation: captcha verification error: %v", err)
		uc.observe(resultInternalErr)
		return nil, fmt.Errorf("%w: %v", ErrCaptchaUnavailable, err)
	}

	// 3. Время должно быть слотом расписания
	if !slots.Contains(slots.Generate(uc.schedule), parsed.Time) {
		uc.logger.Warn("CreateReservation: time %s is not a schedule slot", parsed.Time)
		uc.observe(resultInvalid)
		return nil, ErrInvalidTimeSlot
	}

	// 4. Дата и время не должны быть в прошлом (в часовом поясе барбершопа)
	now := uc.timeProvider.Now().In(uc.location)
	requested := []types.TimeString{parsed.Time}
	if slots.IsPastDate(parsed.Date, now) || len(slots.Available(requested, parsed.Date, nil, now)) == 0 {
		uc.logger.Warn("CreateReservation: slot %s %s is in the past", req.Date, parsed.Time)
		uc.observe(resultSlotInPast)
		return nil, ErrSlotInPast
	}

	var result *domain.Reservation

	// 5. Проверка занятости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем бронирования на эту дату
		existing, err := uc.reservationRepo.GetByDate(txCtx, parsed.Date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 5.2. Тот же фильтр, что и на клиенте
		if len(slots.Available(requested, parsed.Date, slots.ReservedFrom(existing), now)) == 0 {
			return ErrSlotNotAvailable
		}

		// 5.3. Сохраняем бронирование
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			Name:      parsed.Name,
			Email:     parsed.Email,
			Date:      parsed.Date,
			Time:      parsed.Time,
			IPAddress: req.IPAddress,
			ClientID:  req.ClientID,
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotAvailable):
			uc.logger.Warn("CreateReservation: slot %s %s already taken", req.Date, parsed.Time)
			uc.observe(resultSlotTaken)
		default:
			uc.observe(resultInternalErr)
		}
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)
	uc.observe(resultCreated)

	// 6. Письмо-подтверждение, ошибка отправки не отменяет бронирование
	if err := uc.notifier.SendReservationConfirmation(context.WithoutCancel(ctx), result); err != nil {
		uc.logger.Error("CreateReservation: failed to send confirmation for id=%d: %v", result.ID, err)
	}

	return &Response{
		ID:        result.ID,
		Name:      result.Name,
		Email:     result.Email,
		Date:      result.Date,
		Time:      result.Time,
		CreatedAt: result.CreatedAt,
	}, nil
}

func (uc *UseCase) observe(result string) {
	if uc.metrics != nil {
		uc.metrics.ObserveReservation(result)
	}
}
