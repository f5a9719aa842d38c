package slotlock

import "errors"

var (
	// ErrSlotLocked возвращается, когда слот уже бронируется другим запросом
	ErrSlotLocked = errors.New("slotlock: slot is currently being booked by someone else")

	// ErrLockUnavailable возвращается, когда хранилище блокировок не ответило
	ErrLockUnavailable = errors.New("slotlock: lock store unavailable")
)
