package kvstore

import "errors"

var (
	// ErrNotFound возвращается, когда ключ отсутствует или истёк
	ErrNotFound = errors.New("kvstore: key not found")

	// ErrBackend возвращается при ошибке хранилища (сеть, таймаут, ответ сервера)
	ErrBackend = errors.New("kvstore: backend error")
)
