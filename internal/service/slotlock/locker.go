package slotlock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
)

const (
	resultAcquired = "acquired"
	resultConflict = "conflict"
	resultError    = "error"
)

// Locker выдаёт эксклюзивное право на бронирование конкретного слота.
// Release не сверяет владельца: блокировка существует, пока жив ключ.
// Значение ключа (uuid владельца) пишется в лог при взятии и снятии.
type Locker struct {
	store    Store
	ttl      time.Duration
	logger   Logger
	recorder Recorder
	now      func() time.Time
}

// New создает Locker. recorder может быть nil
func New(store Store, ttl time.Duration, logger Logger, recorder Recorder) *Locker {
	if ttl <= 0 {
		ttl = domain.DefaultSlotLockTTL
	}
	return &Locker{
		store:    store,
		ttl:      ttl,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

// Key формирует ключ вида slot:{groundId}:{YYYY-MM-DD}:{HH:MM}
func Key(groundID int64, date time.Time, slotTime string) string {
	return fmt.Sprintf("slot:%d:%s:%s", groundID, date.Format(domain.DateFormat), slotTime)
}

// Acquire атомарно ставит блокировку на слот.
// Если блокировка уже стоит, сразу возвращает ErrSlotLocked, без ожидания и повторов.
func (l *Locker) Acquire(ctx context.Context, groundID int64, date time.Time, slotTime string) (*domain.LockToken, error) {
	key := Key(groundID, date, slotTime)
	value := uuid.NewString()

	ok, err := l.store.SetNX(ctx, key, []byte(value), l.ttl)
	if err != nil {
		l.count(resultError)
		l.logger.Error("SlotLock: acquire %s failed: %v", key, err)
		return nil, fmt.Errorf("%w: %v", ErrLockUnavailable, err)
	}

	if !ok {
		l.count(resultConflict)
		l.logger.Warn("SlotLock: %s is already held", key)
		return nil, ErrSlotLocked
	}

	l.count(resultAcquired)
	l.logger.Info("SlotLock: acquired %s by owner=%s for %s", key, value, l.ttl)

	return &domain.LockToken{
		Key:        key,
		Value:      value,
		GroundID:   groundID,
		Date:       date,
		Time:       slotTime,
		AcquiredAt: l.now(),
		TTL:        l.ttl,
	}, nil
}

// Release снимает блокировку. Повторный вызов и nil token не являются ошибкой.
func (l *Locker) Release(ctx context.Context, token *domain.LockToken) error {
	if token == nil {
		return nil
	}

	if err := l.store.Del(ctx, token.Key); err != nil {
		return fmt.Errorf("%w: release %s: %v", ErrLockUnavailable, token.Key, err)
	}

	l.logger.Info("SlotLock: released %s by owner=%s", token.Key, token.Value)
	return nil
}

// TTL возвращает время жизни блокировки
func (l *Locker) TTL() time.Duration {
	return l.ttl
}

func (l *Locker) count(result string) {
	if l.recorder != nil {
		l.recorder.IncSlotLock(result)
	}
}
