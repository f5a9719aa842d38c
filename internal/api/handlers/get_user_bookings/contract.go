package get_user_bookings

import (
	"context"

	"github.com/m04kA/SMC-GroundBookingService/internal/service/bookings/models"
)

// UserBookingsReader история бронирований клиента, свою историю видит только он сам
type UserBookingsReader interface {
	GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
