package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
	groundRepo "github.com/m04kA/SMC-GroundBookingService/internal/infra/storage/ground"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	groundRepo   GroundRepository
	bookingRepo  BookingRepository
	blockedRepo  BlockedSlotRepository
	cache        SlotCache
	engine       SlotEngine
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location - часовой пояс заведений, в котором считается "сегодня"
func NewUseCase(
	groundRepo GroundRepository,
	bookingRepo BookingRepository,
	blockedRepo BlockedSlotRepository,
	cache SlotCache,
	engine SlotEngine,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		groundRepo:   groundRepo,
		bookingRepo:  bookingRepo,
		blockedRepo:  blockedRepo,
		cache:        cache,
		engine:       engine,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: ground=%d, date=%s, duration=%dh",
		req.GroundID, req.Date.Format(domain.DateFormat), req.DurationHours)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	if err := validateDate(req.Date, uc.timeProvider.Now(), uc.location); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем кэш
	if req.BypassCache {
		uc.logger.Info("GetAvailableSlots: cache bypassed for ground=%d, date=%s", req.GroundID, req.Date.Format(domain.DateFormat))
	} else if cached, ok := uc.cache.Get(ctx, req.GroundID, req.Date, req.DurationHours); ok {
		uc.logger.Info("GetAvailableSlots: cache hit for ground=%d, date=%s, duration=%dh, slots=%d",
			req.GroundID, req.Date.Format(domain.DateFormat), req.DurationHours, len(cached))
		return uc.response(req, cached), nil
	}

	// 3. Получаем площадку
	ground, err := uc.groundRepo.GetByID(ctx, req.GroundID)
	if err != nil {
		if errors.Is(err, groundRepo.ErrGroundNotFound) {
			uc.logger.Warn("GetAvailableSlots: ground id=%d not found", req.GroundID)
			return nil, ErrGroundNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get ground id=%d: %v", req.GroundID, err)
		return nil, fmt.Errorf("%w: failed to get ground: %v", ErrInternal, err)
	}

	if !ground.IsActive {
		uc.logger.Info("GetAvailableSlots: ground id=%d is not active", req.GroundID)
		return uc.response(req, []domain.Slot{}), nil
	}

	// 4. Получаем расписание (площадка, либо заведение)
	windows, err := uc.groundRepo.GetEffectiveOperatingHours(ctx, ground)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get operating hours for ground id=%d: %v", req.GroundID, err)
		return nil, fmt.Errorf("%w: failed to get operating hours: %v", ErrInternal, err)
	}

	window, open := domain.WindowForDay(windows, req.Date.Weekday())
	if !open {
		uc.logger.Info("GetAvailableSlots: ground id=%d is closed on %s", req.GroundID, req.Date.Weekday())
		return uc.response(req, []domain.Slot{}), nil
	}

	// 5. Получаем активные бронирования и блокировки на дату
	date := req.Date
	bookings, err := uc.bookingRepo.GetByGroundWithFilter(ctx, domain.GroundBookingsFilter{
		GroundID: req.GroundID,
		Date:     &date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	blocks, err := uc.blockedRepo.GetByGroundAndDate(ctx, req.GroundID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
	}

	occupied, err := occupiedIntervals(window, bookings, blocks)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: bad occupancy data: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 6. Считаем слоты
	price, _ := ground.PriceFor(req.DurationHours)
	slots := uc.engine.AvailableSlots(window, occupied, req.DurationHours*60, price)

	// 7. Сохраняем в кэш
	if !req.BypassCache {
		uc.cache.Put(ctx, req.GroundID, req.Date, req.DurationHours, slots)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for ground=%d, date=%s, duration=%dh (bookings=%d, blocks=%d)",
		len(slots), req.GroundID, req.Date.Format(domain.DateFormat), req.DurationHours, len(bookings), len(blocks))

	return uc.response(req, slots), nil
}

func (uc *UseCase) response(req *Request, slots []domain.Slot) *Response {
	return &Response{
		GroundID:      req.GroundID,
		Date:          req.Date,
		DurationHours: req.DurationHours,
		Slots:         slots,
	}
}
