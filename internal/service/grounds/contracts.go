package grounds

import (
	"context"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
)

// GroundRepository интерфейс репозитория площадок
type GroundRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Ground, error)
	GetEffectiveOperatingHours(ctx context.Context, ground *domain.Ground) ([]domain.OperatingWindow, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
