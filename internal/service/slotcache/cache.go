package slotcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
	"github.com/m04kA/SMC-GroundBookingService/internal/infra/kvstore"
)

const (
	resultHit  = "hit"
	resultMiss = "miss"
)

// Cache хранит результат расчёта слотов по ключу (площадка, дата, длительность).
// Ошибки хранилища не пробрасываются: при любой проблеме это просто промах.
type Cache struct {
	store    Store
	ttl      time.Duration
	logger   Logger
	recorder Recorder
}

// New создает кэш. recorder может быть nil
func New(store Store, ttl time.Duration, logger Logger, recorder Recorder) *Cache {
	if ttl <= 0 {
		ttl = domain.DefaultSlotsCacheTTL
	}
	return &Cache{
		store:    store,
		ttl:      ttl,
		logger:   logger,
		recorder: recorder,
	}
}

// Key формирует ключ вида slots:{groundId}:{YYYY-MM-DD}:{hours}
func Key(groundID int64, date time.Time, durationHours int) string {
	return fmt.Sprintf("slots:%d:%s:%d", groundID, date.Format(domain.DateFormat), durationHours)
}

// Get возвращает слоты из кэша, ok=false при промахе
func (c *Cache) Get(ctx context.Context, groundID int64, date time.Time, durationHours int) ([]domain.Slot, bool) {
	key := Key(groundID, date, durationHours)

	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			c.logger.Warn("SlotCache: get %s failed: %v", key, err)
		}
		c.count(resultMiss)
		return nil, false
	}

	var slots []domain.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		c.logger.Warn("SlotCache: corrupted entry %s: %v", key, err)
		c.count(resultMiss)
		return nil, false
	}

	if slots == nil {
		slots = []domain.Slot{}
	}

	c.count(resultHit)
	return slots, true
}

// Put сохраняет слоты на TTL кэша
func (c *Cache) Put(ctx context.Context, groundID int64, date time.Time, durationHours int, slots []domain.Slot) {
	key := Key(groundID, date, durationHours)

	if slots == nil {
		slots = []domain.Slot{}
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		c.logger.Error("SlotCache: encode %s: %v", key, err)
		return
	}

	if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
		c.logger.Warn("SlotCache: set %s failed: %v", key, err)
	}
}

// TTL возвращает время жизни записи
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

func (c *Cache) count(result string) {
	if c.recorder != nil {
		c.recorder.IncSlotCache(result)
	}
}
