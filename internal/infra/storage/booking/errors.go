package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrDuplicateSlot возвращается, когда на слот уже есть активное бронирование (уникальный индекс)
	ErrDuplicateSlot = errors.New("booking.repository: active booking for slot already exists")

	// ErrCannotCancel возвращается, когда бронирование уже отменено или завершено
	ErrCannotCancel = errors.New("booking.repository: booking cannot be cancelled")
)
