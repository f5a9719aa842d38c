package bookingevents

import "errors"

var (
	// ErrNoBrokers возвращается, когда не указан ни один брокер
	ErrNoBrokers = errors.New("bookingevents: at least one broker is required")

	// ErrEmptyTopic возвращается, когда не указан топик
	ErrEmptyTopic = errors.New("bookingevents: topic cannot be empty")

	// ErrEncode возвращается при ошибке сериализации события
	ErrEncode = errors.New("bookingevents: failed to encode event")

	// ErrPublish возвращается, когда брокер не принял сообщение
	ErrPublish = errors.New("bookingevents: failed to publish event")
)
