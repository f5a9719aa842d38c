package create_booking

import (
	"context"

	createBooking "github.com/m04kA/SMC-GroundBookingService/internal/usecase/create_booking"
)

// SlotBooker блокирует слот, перепроверяет его в транзакции и создает бронирование
type SlotBooker interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
