package get_ground_hours

import (
	"context"

	"github.com/m04kA/SMC-GroundBookingService/internal/service/grounds/models"
)

type GroundService interface {
	GetOperatingHours(ctx context.Context, groundID int64) (*models.OperatingHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
