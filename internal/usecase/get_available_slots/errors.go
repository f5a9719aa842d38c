package get_available_slots

import "errors"

var (
	// ErrGroundNotFound возвращается, когда площадка не найдена
	ErrGroundNotFound = errors.New("get_available_slots: ground not found")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrInvalidDuration возвращается, когда длительность не 2 и не 3 часа
	ErrInvalidDuration = errors.New("get_available_slots: duration must be 2 or 3 hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase (в т.ч. недоступность БД)
	ErrInternal = errors.New("get_available_slots: internal error")
)
