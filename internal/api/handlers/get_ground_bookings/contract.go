package get_ground_bookings

import (
	"context"

	"github.com/m04kA/SMC-GroundBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetGroundBookings(ctx context.Context, req *models.GetGroundBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
