package grounds

import "errors"

var (
	// ErrGroundNotFound возвращается, когда площадка не найдена
	ErrGroundNotFound = errors.New("ground not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("grounds service: internal error")
)
