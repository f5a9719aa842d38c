package create_booking

import "errors"

var (
	// ErrGroundNotFound возвращается, когда площадка не найдена
	ErrGroundNotFound = errors.New("create_booking: ground not found")

	// ErrGroundInactive возвращается, когда площадка выключена владельцем
	ErrGroundInactive = errors.New("create_booking: ground is not active")

	// ErrInvalidDate возвращается при некорректной дате бронирования (в прошлом)
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда время не попадает на сетку слотов
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда слота нет среди доступных
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrSlotLocked возвращается, когда слот прямо сейчас бронирует кто-то другой
	ErrSlotLocked = errors.New("create_booking: slot is being booked by someone else")

	// ErrSlotAlreadyBooked возвращается, когда повторная проверка нашла активное бронирование
	ErrSlotAlreadyBooked = errors.New("create_booking: slot is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
