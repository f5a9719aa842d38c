package grounds

import (
	"context"
	"errors"
	"fmt"

	groundRepo "github.com/m04kA/SMC-GroundBookingService/internal/infra/storage/ground"
	"github.com/m04kA/SMC-GroundBookingService/internal/service/grounds/models"
)

// Service чтение данных площадок
type Service struct {
	groundRepo GroundRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(groundRepo GroundRepository, logger Logger) *Service {
	return &Service{
		groundRepo: groundRepo,
		logger:     logger,
	}
}

// GetOperatingHours возвращает расписание, по которому считаются слоты площадки
func (s *Service) GetOperatingHours(ctx context.Context, groundID int64) (*models.OperatingHoursResponse, error) {
	ground, err := s.groundRepo.GetByID(ctx, groundID)
	if err != nil {
		if errors.Is(err, groundRepo.ErrGroundNotFound) {
			s.logger.Warn("GetOperatingHours: ground id=%d not found", groundID)
			return nil, ErrGroundNotFound
		}
		s.logger.Error("GetOperatingHours: failed to get ground id=%d: %v", groundID, err)
		return nil, fmt.Errorf("%w: GetOperatingHours - failed to get ground: %v", ErrInternal, err)
	}

	windows, err := s.groundRepo.GetEffectiveOperatingHours(ctx, ground)
	if err != nil {
		s.logger.Error("GetOperatingHours: failed to get hours for ground id=%d: %v", groundID, err)
		return nil, fmt.Errorf("%w: GetOperatingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOperatingHours: ground id=%d has %d windows", groundID, len(windows))
	return models.FromDomainWindows(ground, windows), nil
}
