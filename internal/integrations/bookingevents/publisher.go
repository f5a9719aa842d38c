package bookingevents

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
)

// DefaultWriteTimeout ограничение на одну запись в брокер
const DefaultWriteTimeout = 5 * time.Second

// Config настройки продюсера
type Config struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// Publisher публикует события о бронированиях в Kafka.
// Ключ сообщения - ID площадки, события одной площадки идут в одну партицию.
type Publisher struct {
	writer  MessageWriter
	timeout time.Duration
	logger  Logger
	now     func() time.Time
}

// NewPublisher создает продюсер поверх kafka.Writer
func NewPublisher(cfg Config, logger Logger) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}
	if cfg.Topic == "" {
		return nil, ErrEmptyTopic
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		Compression:            kafka.Snappy,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
		Logger:                 kafka.LoggerFunc(func(string, ...interface{}) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Error("Kafka: "+msg, args...)
		}),
	}

	logger.Info("BookingEvents: producer configured for brokers=%v, topic=%s", cfg.Brokers, cfg.Topic)
	return NewPublisherWithWriter(writer, cfg.WriteTimeout, logger), nil
}

// NewPublisherWithWriter создает Publisher с готовым writer
func NewPublisherWithWriter(writer MessageWriter, timeout time.Duration, logger Logger) *Publisher {
	if timeout <= 0 {
		timeout = DefaultWriteTimeout
	}
	return &Publisher{
		writer:  writer,
		timeout: timeout,
		logger:  logger,
		now:     time.Now,
	}
}

// BookingCreated публикует booking.created
func (p *Publisher) BookingCreated(ctx context.Context, b *domain.Booking) error {
	return p.publish(ctx, EventBookingCreated, b)
}

// BookingCancelled публикует booking.cancelled
func (p *Publisher) BookingCancelled(ctx context.Context, b *domain.Booking) error {
	return p.publish(ctx, EventBookingCancelled, b)
}

// BookingStatusChanged публикует booking.status_changed
func (p *Publisher) BookingStatusChanged(ctx context.Context, b *domain.Booking) error {
	return p.publish(ctx, EventBookingStatusChanged, b)
}

// Close сбрасывает буфер и закрывает соединения
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func (p *Publisher) publish(ctx context.Context, eventType EventType, b *domain.Booking) error {
	msg, err := p.message(eventType, b)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %s for booking id=%d: %v", ErrPublish, eventType, b.ID, err)
	}

	p.logger.Info("BookingEvents: published %s for booking id=%d", eventType, b.ID)
	return nil
}

func (p *Publisher) message(eventType EventType, b *domain.Booking) (kafka.Message, error) {
	now := p.now()

	value, err := json.Marshal(newEvent(eventType, b, now))
	if err != nil {
		return kafka.Message{}, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return kafka.Message{
		Key:   []byte(strconv.FormatInt(b.GroundID, 10)),
		Value: value,
		Time:  now,
		Headers: []kafka.Header{
			{Key: HeaderEventType, Value: []byte(eventType)},
		},
	}, nil
}

// NoopPublisher используется, когда Kafka выключена в конфигурации
type NoopPublisher struct{}

func (NoopPublisher) BookingCreated(context.Context, *domain.Booking) error       { return nil }
func (NoopPublisher) BookingCancelled(context.Context, *domain.Booking) error     { return nil }
func (NoopPublisher) BookingStatusChanged(context.Context, *domain.Booking) error { return nil }
func (NoopPublisher) Close() error                                                { return nil }
