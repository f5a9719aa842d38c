package slotlock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
	"github.com/m04kA/SMC-GroundBookingService/internal/infra/kvstore"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// recordingLogger собирает отформатированные строки лога
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (r *recordingLogger) add(format string, v ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, fmt.Sprintf(format, v...))
}

func (r *recordingLogger) Info(format string, v ...interface{})  { r.add(format, v...) }
func (r *recordingLogger) Warn(format string, v ...interface{})  { r.add(format, v...) }
func (r *recordingLogger) Error(format string, v ...interface{}) { r.add(format, v...) }

func (r *recordingLogger) containing(substr string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, line := range r.lines {
		if strings.Contains(line, substr) {
			n++
		}
	}
	return n
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) Del(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

var testDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestKey(t *testing.T) {
	assert.Equal(t, "slot:7:2025-06-01:18:30", Key(7, testDate, "18:30"))
}

func TestLocker_AcquireRelease(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore(0)
	defer store.Stop()
	locker := New(store, 0, nopLogger{}, nil)

	token, err := locker.Acquire(ctx, 7, testDate, "18:00")
	require.NoError(t, err)
	assert.Equal(t, "slot:7:2025-06-01:18:00", token.Key)
	assert.Equal(t, domain.DefaultSlotLockTTL, token.TTL)
	assert.NotEmpty(t, token.Value)

	_, err = locker.Acquire(ctx, 7, testDate, "18:00")
	assert.ErrorIs(t, err, ErrSlotLocked)

	// other slots of the same ground are independent
	other, err := locker.Acquire(ctx, 7, testDate, "20:00")
	require.NoError(t, err)
	require.NoError(t, locker.Release(ctx, other))

	require.NoError(t, locker.Release(ctx, token))
	require.NoError(t, locker.Release(ctx, token), "release is idempotent")
	require.NoError(t, locker.Release(ctx, nil))

	again, err := locker.Acquire(ctx, 7, testDate, "18:00")
	require.NoError(t, err)
	assert.NotEqual(t, token.Value, again.Value)
}

func TestLocker_OwnerValueIsLogged(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore(0)
	defer store.Stop()
	logs := &recordingLogger{}
	locker := New(store, time.Minute, logs, nil)

	token, err := locker.Acquire(ctx, 7, testDate, "18:00")
	require.NoError(t, err)

	stored, err := store.Get(ctx, token.Key)
	require.NoError(t, err)
	assert.Equal(t, token.Value, string(stored))

	require.NoError(t, locker.Release(ctx, token))

	assert.Equal(t, 2, logs.containing("owner="+token.Value))
}

func TestLocker_ConcurrentAcquireExactlyOneWins(t *testing.T) {
	stores := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store {
			s := kvstore.NewMemoryStore(0)
			t.Cleanup(s.Stop)
			return s
		},
		"redis": func(t *testing.T) Store {
			mr := miniredis.RunT(t)
			client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
			t.Cleanup(func() { client.Close() })
			return kvstore.NewRedisStore(client, time.Second)
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			locker := New(newStore(t), time.Minute, nopLogger{}, nil)

			const workers = 32
			var (
				wg        sync.WaitGroup
				acquired  atomic.Int32
				conflicts atomic.Int32
				start     = make(chan struct{})
			)

			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					<-start
					_, err := locker.Acquire(context.Background(), 3, testDate, "22:00")
					switch {
					case err == nil:
						acquired.Add(1)
					case errors.Is(err, ErrSlotLocked):
						conflicts.Add(1)
					default:
						t.Errorf("unexpected error: %v", err)
					}
				}()
			}

			close(start)
			wg.Wait()

			assert.Equal(t, int32(1), acquired.Load())
			assert.Equal(t, int32(workers-1), conflicts.Load())
		})
	}
}

func TestLocker_TTLPassedToStore(t *testing.T) {
	ctx := context.Background()
	store := &mockStore{}
	locker := New(store, 90*time.Second, nopLogger{}, nil)

	store.On("SetNX", ctx, "slot:1:2025-06-01:09:00", mock.Anything, 90*time.Second).Return(true, nil).Once()

	_, err := locker.Acquire(ctx, 1, testDate, "09:00")
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestLocker_StoreErrors(t *testing.T) {
	ctx := context.Background()
	store := &mockStore{}
	locker := New(store, time.Minute, nopLogger{}, nil)

	store.On("SetNX", ctx, mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("timeout"))
	store.On("Del", ctx, "slot:1:2025-06-01:09:00").Return(errors.New("timeout"))

	_, err := locker.Acquire(ctx, 1, testDate, "09:00")
	assert.ErrorIs(t, err, ErrLockUnavailable)
	assert.NotErrorIs(t, err, ErrSlotLocked)

	err = locker.Release(ctx, &domain.LockToken{Key: "slot:1:2025-06-01:09:00"})
	assert.ErrorIs(t, err, ErrLockUnavailable)
}

func TestLocker_ExpiredLockCanBeTakenAgain(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	locker := New(kvstore.NewRedisStore(client, time.Second), 300*time.Second, nopLogger{}, nil)

	_, err := locker.Acquire(ctx, 4, testDate, "19:00")
	require.NoError(t, err)

	mr.FastForward(300 * time.Second)

	_, err = locker.Acquire(ctx, 4, testDate, "19:00")
	assert.NoError(t, err)
}
