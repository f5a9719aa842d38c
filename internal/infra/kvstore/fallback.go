package kvstore

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultDegradedCooldown is how long the primary store is skipped after it fails.
const DefaultDegradedCooldown = 30 * time.Second

// FallbackStore serves calls from primary and switches to secondary when primary fails.
// After a failure primary is left alone for the cooldown, then probed again by the next call.
type FallbackStore struct {
	primary   Store
	secondary Store
	cooldown  time.Duration
	logger    Logger
	recorder  FallbackRecorder
	now       func() time.Time

	mu       sync.Mutex
	degraded bool
	retryAt  time.Time
}

// NewFallbackStore creates the store. recorder may be nil.
func NewFallbackStore(primary, secondary Store, cooldown time.Duration, logger Logger, recorder FallbackRecorder) *FallbackStore {
	if cooldown <= 0 {
		cooldown = DefaultDegradedCooldown
	}
	return &FallbackStore{
		primary:   primary,
		secondary: secondary,
		cooldown:  cooldown,
		logger:    logger,
		recorder:  recorder,
		now:       time.Now,
	}
}

func (s *FallbackStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.usePrimary() {
		value, err := s.primary.Get(ctx, key)
		if err == nil || errors.Is(err, ErrNotFound) {
			s.markHealthy()
			return value, err
		}
		s.markDegraded("get", key, err)
	}

	s.countFallback("get")
	return s.secondary.Get(ctx, key)
}

func (s *FallbackStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if s.usePrimary() {
		err := s.primary.Set(ctx, key, value, ttl)
		if err == nil {
			s.markHealthy()
			return nil
		}
		s.markDegraded("set", key, err)
	}

	s.countFallback("set")
	return s.secondary.Set(ctx, key, value, ttl)
}

func (s *FallbackStore) SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	if s.usePrimary() {
		ok, err := s.primary.SetNX(ctx, key, value, ttl)
		if err == nil {
			s.markHealthy()
			return ok, nil
		}
		s.markDegraded("setnx", key, err)
	}

	s.countFallback("setnx")
	return s.secondary.SetNX(ctx, key, value, ttl)
}

// Del removes the key from both stores so a lock taken during degradation is released too.
func (s *FallbackStore) Del(ctx context.Context, key string) error {
	secondaryErr := s.secondary.Del(ctx, key)

	if s.usePrimary() {
		err := s.primary.Del(ctx, key)
		if err == nil {
			s.markHealthy()
			return secondaryErr
		}
		s.markDegraded("del", key, err)
	}

	s.countFallback("del")
	return secondaryErr
}

// StartDegraded skips the primary store for one cooldown, used when the startup ping fails.
func (s *FallbackStore) StartDegraded(reason error) {
	s.markDegraded("ping", "", reason)
}

// Degraded reports whether calls are currently served by the secondary store.
func (s *FallbackStore) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

func (s *FallbackStore) usePrimary() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.degraded || !s.now().Before(s.retryAt)
}

func (s *FallbackStore) markDegraded(op, key string, err error) {
	s.mu.Lock()
	wasDegraded := s.degraded
	s.degraded = true
	s.retryAt = s.now().Add(s.cooldown)
	s.mu.Unlock()

	if !wasDegraded {
		s.logger.Warn("kvstore: primary store failed on %s %q, serving from in-process store for %s: %v",
			op, key, s.cooldown, err)
	}
}

func (s *FallbackStore) markHealthy() {
	s.mu.Lock()
	wasDegraded := s.degraded
	s.degraded = false
	s.mu.Unlock()

	if wasDegraded {
		s.logger.Info("kvstore: primary store is reachable again")
	}
}

func (s *FallbackStore) countFallback(op string) {
	if s.recorder != nil {
		s.recorder.IncStoreFallback(op)
	}
}
