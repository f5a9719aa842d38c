package bookingevents

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
)

type captureWriter struct {
	mu       sync.Mutex
	messages []kafka.Message
	err      error
	deadline bool
}

func (w *captureWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, w.deadline = ctx.Deadline()
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *captureWriter) Close() error { return nil }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleBooking() *domain.Booking {
	refund := decimal.NewFromInt(1200)
	return &domain.Booking{
		ID:            11,
		BookingCode:   "BKA2C4",
		UserID:        42,
		GroundID:      7,
		VenueID:       3,
		BookingDate:   time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
		StartTime:     "18:00",
		DurationHours: 2,
		Price:         decimal.NewFromInt(1500),
		Status:        domain.StatusCancelled,
		RefundAmount:  &refund,
	}
}

func TestPublisher_BookingCancelled(t *testing.T) {
	w := &captureWriter{}
	p := NewPublisherWithWriter(w, 0, nopLogger{})
	now := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	p.now = func() time.Time { return now }

	require.NoError(t, p.BookingCancelled(context.Background(), sampleBooking()))
	require.Len(t, w.messages, 1)
	assert.True(t, w.deadline, "write must be bounded by a timeout")

	msg := w.messages[0]
	assert.Equal(t, "7", string(msg.Key))
	assert.Equal(t, now, msg.Time)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, HeaderEventType, msg.Headers[0].Key)
	assert.Equal(t, string(EventBookingCancelled), string(msg.Headers[0].Value))

	var ev Event
	require.NoError(t, json.Unmarshal(msg.Value, &ev))
	assert.Equal(t, EventBookingCancelled, ev.Type)
	assert.Equal(t, "BKA2C4", ev.BookingCode)
	assert.Equal(t, "2026-10-19", ev.BookingDate)
	assert.Equal(t, "18:00", ev.StartTime)
	require.NotNil(t, ev.RefundAmount)
	assert.True(t, ev.RefundAmount.Equal(decimal.NewFromInt(1200)))
}

func TestPublisher_WriteError(t *testing.T) {
	w := &captureWriter{err: errors.New("leader not available")}
	p := NewPublisherWithWriter(w, time.Second, nopLogger{})

	err := p.BookingCreated(context.Background(), sampleBooking())
	assert.ErrorIs(t, err, ErrPublish)
}

func TestNewPublisher_Validation(t *testing.T) {
	_, err := NewPublisher(Config{Topic: "bookings"}, nopLogger{})
	assert.ErrorIs(t, err, ErrNoBrokers)

	_, err = NewPublisher(Config{Brokers: []string{"localhost:9092"}}, nopLogger{})
	assert.ErrorIs(t, err, ErrEmptyTopic)

	p, err := NewPublisher(Config{Brokers: []string{"localhost:9092"}, Topic: "bookings"}, nopLogger{})
	require.NoError(t, err)
	assert.NoError(t, p.Close())
}
