package admins

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	adminRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/admin"
	"github.com/m04kA/SMC-BarberService/internal/service/admins/models"
)

// Service сервис управления аккаунтами администраторов
type Service struct {
	adminRepo AdminRepository
	hasher    PasswordHasher
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса администраторов
func NewService(adminRepo AdminRepository, hasher PasswordHasher, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		adminRepo: adminRepo,
		hasher:    hasher,
		txManager: txManager,
		logger:    logger,
	}
}

// List возвращает всех администраторов
func (s *Service) List(ctx context.Context) ([]*models.AdminResponse, error) {
	list, err := s.adminRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAdminList(list), nil
}

// Create создает администратора
func (s *Service) Create(ctx context.Context, req *models.CreateAdminRequest) (*models.AdminResponse, error) {
	username := strings.TrimSpace(req.Username)
	s.logger.Info("Create: creating admin username=%s", username)

	if err := domain.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := domain.ValidatePassword(req.Password); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	hash, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("Create: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Create - hash password: %v", ErrInternal, err)
	}

	created, err := s.adminRepo.Create(ctx, &domain.Admin{Username: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminAlreadyExists) {
			s.logger.Warn("Create: username=%s already taken", username)
			return nil, ErrAdminAlreadyExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created admin id=%d", created.ID)
	return models.FromDomainAdmin(created), nil
}

// Update меняет логин и, если передан, пароль
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateAdminRequest) (*models.AdminResponse, error) {
	username := strings.TrimSpace(req.Username)
	s.logger.Info("Update: updating admin id=%d", id)

	if err := domain.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var hash string
	if req.Password != "" {
		if err := domain.ValidatePassword(req.Password); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		h, err := s.hasher.HashPassword(req.Password)
		if err != nil {
			s.logger.Error("Update: failed to hash password: %v", err)
			return nil, fmt.Errorf("%w: Update - hash password: %v", ErrInternal, err)
		}
		hash = h
	}

	var updated *domain.Admin
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		admin, err := s.adminRepo.UpdateUsername(txCtx, id, username)
		if err != nil {
			return err
		}
		if hash != "" {
			if err := s.adminRepo.UpdatePassword(txCtx, id, hash); err != nil {
				return err
			}
		}
		updated = admin
		return nil
	})
	if err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	s.logger.Info("Update: successfully updated admin id=%d", id)
	return models.FromDomainAdmin(updated), nil
}

// Delete удаляет администратора
// Нельзя удалить себя и последнего администратора
func (s *Service) Delete(ctx context.Context, id int64, actorID int64) error {
	s.logger.Info("Delete: deleting admin id=%d by admin id=%d", id, actorID)

	if id == actorID {
		s.logger.Warn("Delete: admin id=%d tried to delete own account", id)
		return ErrCannotDeleteSelf
	}

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := s.adminRepo.GetByID(txCtx, id); err != nil {
			return err
		}

		count, err := s.adminRepo.Count(txCtx)
		if err != nil {
			return err
		}
		if count <= 1 {
			return ErrLastAdmin
		}

		return s.adminRepo.Delete(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, ErrLastAdmin) {
			s.logger.Warn("Delete: admin id=%d is the last one", id)
			return ErrLastAdmin
		}
		return s.mapRepoError("Delete", id, err)
	}

	s.logger.Info("Delete: successfully deleted admin id=%d", id)
	return nil
}

// ResetPassword устанавливает новый пароль
func (s *Service) ResetPassword(ctx context.Context, id int64, req *models.ResetPasswordRequest) error {
	s.logger.Info("ResetPassword: resetting password for admin id=%d", id)

	if err := domain.ValidatePassword(req.NewPassword); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	hash, err := s.hasher.HashPassword(req.NewPassword)
	if err != nil {
		s.logger.Error("ResetPassword: failed to hash password: %v", err)
		return fmt.Errorf("%w: ResetPassword - hash password: %v", ErrInternal, err)
	}

	if err := s.adminRepo.UpdatePassword(ctx, id, hash); err != nil {
		return s.mapRepoError("ResetPassword", id, err)
	}

	s.logger.Info("ResetPassword: successfully reset password for admin id=%d", id)
	return nil
}

// EnsureBootstrapAdmin создает первого администратора, если таблица пуста
// Возвращает true, если администратор был создан
func (s *Service) EnsureBootstrapAdmin(ctx context.Context, username, password string) (bool, error) {
	if strings.TrimSpace(username) == "" {
		return false, nil
	}

	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: EnsureBootstrapAdmin - count admins: %v", ErrInternal, err)
	}
	if count > 0 {
		return false, nil
	}

	if _, err := s.Create(ctx, &models.CreateAdminRequest{Username: username, Password: password}); err != nil {
		// Параллельно стартовавший экземпляр успел создать админа
		if errors.Is(err, ErrAdminAlreadyExists) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, adminRepo.ErrAdminNotFound):
		s.logger.Warn("%s: admin id=%d not found", op, id)
		return ErrAdminNotFound
	case errors.Is(err, adminRepo.ErrAdminAlreadyExists):
		s.logger.Warn("%s: username already taken (admin id=%d)", op, id)
		return ErrAdminAlreadyExists
	default:
		s.logger.Error("%s: repository error for admin id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
