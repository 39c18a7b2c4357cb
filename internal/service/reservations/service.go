package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-BarberService/internal/service/reservations/models"
	"github.com/m04kA/SMC-BarberService/internal/slots"
)

// Service сервис администрирования бронирований
type Service struct {
	reservationRepo ReservationRepository
	schedule        domain.Schedule
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, schedule domain.Schedule, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		schedule:        schedule,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	reservation, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainReservation(reservation), nil
}

// List получает бронирования, отсортированные по дате и времени
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) ([]*models.ReservationResponse, error) {
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		s.logger.Warn("List: end date %s before start date %s",
			req.EndDate.Format(domain.DateFormat), req.StartDate.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}

	list, err := s.reservationRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(list))
	return models.FromDomainReservationList(list), nil
}

// Update изменяет бронирование с теми же правилами, что и при создании
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Update: updating reservation id=%d", id)

	// 1. Валидация входных данных
	parsed, err := domain.ParseReservation(domain.ReservationInput{
		Name:  req.Name,
		Email: req.Email,
		Date:  req.Date,
		Time:  req.Time,
	})
	if err != nil {
		s.logger.Warn("Update: validation failed for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// 2. Время должно быть слотом расписания
	if !slots.Contains(slots.Generate(s.schedule), parsed.Time) {
		s.logger.Warn("Update: time %s is not a schedule slot", parsed.Time)
		return nil, ErrInvalidTimeSlot
	}

	// 3. Получаем текущее бронирование
	reservation, err := s.get(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	reservation.Name = parsed.Name
	reservation.Email = parsed.Email
	reservation.Date = parsed.Date
	reservation.Time = parsed.Time

	// 4. Сохраняем (уникальный индекс защищает от двойного бронирования)
	updated, err := s.reservationRepo.Update(ctx, reservation)
	if err != nil {
		switch {
		case errors.Is(err, reservationRepo.ErrSlotTaken):
			s.logger.Warn("Update: slot %s %s already taken", parsed.Date.Format(domain.DateFormat), parsed.Time)
			return nil, ErrSlotTaken
		case errors.Is(err, reservationRepo.ErrReservationNotFound):
			s.logger.Warn("Update: reservation id=%d disappeared", id)
			return nil, ErrReservationNotFound
		default:
			s.logger.Error("Update: repository error for id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated reservation id=%d", id)
	return models.FromDomainReservation(updated), nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting reservation id=%d", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return reservation, nil
}
