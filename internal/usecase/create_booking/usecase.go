package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-GroundBookingService/internal/infra/storage/booking"
	groundRepo "github.com/m04kA/SMC-GroundBookingService/internal/infra/storage/ground"
	"github.com/m04kA/SMC-GroundBookingService/internal/service/slotlock"
	"github.com/m04kA/SMC-GroundBookingService/internal/usecase/get_available_slots"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	groundRepo  GroundRepository
	slots       SlotsProvider
	locker      SlotLocker
	txManager   TransactionManager
	events      EventPublisher
	recorder    OutcomeRecorder
	granularity int
	codeGen     func() (string, error)
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	groundRepo GroundRepository,
	slots SlotsProvider,
	locker SlotLocker,
	txManager TransactionManager,
	events EventPublisher,
	recorder OutcomeRecorder,
	granularity int,
	logger Logger,
) *UseCase {
	if granularity <= 0 {
		granularity = domain.DefaultGranularityMinutes
	}
	return &UseCase{
		bookingRepo: bookingRepo,
		groundRepo:  groundRepo,
		slots:       slots,
		locker:      locker,
		txManager:   txManager,
		events:      events,
		recorder:    recorder,
		granularity: granularity,
		codeGen:     generateBookingCode,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования.
// Слот блокируется в kvstore, затем внутри сериализуемой транзакции
// выполняется окончательная проверка и вставка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, ground=%d, date=%s, time=%s, duration=%dh",
		req.UserID, req.GroundID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationHours)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	startTime, err := validateStartTime(req.StartTime, uc.granularity)
	if err != nil {
		uc.logger.Warn("CreateBooking: start time validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем площадку
	ground, err := uc.groundRepo.GetByID(ctx, req.GroundID)
	if err != nil {
		if errors.Is(err, groundRepo.ErrGroundNotFound) {
			uc.logger.Warn("CreateBooking: ground id=%d not found", req.GroundID)
			return nil, ErrGroundNotFound
		}
		uc.logger.Error("CreateBooking: failed to get ground id=%d: %v", req.GroundID, err)
		return nil, fmt.Errorf("%w: failed to get ground: %v", ErrInternal, err)
	}

	if !ground.IsActive {
		uc.logger.Warn("CreateBooking: ground id=%d is not active", req.GroundID)
		return nil, ErrGroundInactive
	}

	price, ok := ground.PriceFor(req.DurationHours)
	if !ok {
		return nil, fmt.Errorf("%w: no price for %dh", ErrInvalidInput, req.DurationHours)
	}

	// 3. Предварительная проверка по расчёту доступности (может быть из кэша,
	// окончательная проверка в шаге 5b)
	available, err := uc.slots.Execute(ctx, &get_available_slots.Request{
		GroundID:      req.GroundID,
		Date:          req.Date,
		DurationHours: req.DurationHours,
	})
	if err != nil {
		return nil, uc.translateSlotsError(err)
	}

	if !slotOffered(available.Slots, startTime) {
		uc.logger.Warn("CreateBooking: %s is not among %d available slots", startTime, len(available.Slots))
		return nil, ErrSlotNotAvailable
	}

	// 4. Блокируем слот (pending)
	token, err := uc.locker.Acquire(ctx, req.GroundID, req.Date, startTime.String())
	if err != nil {
		if errors.Is(err, slotlock.ErrSlotLocked) {
			uc.record(OutcomeConflict)
			return nil, ErrSlotLocked
		}
		uc.record(OutcomeFailed)
		uc.logger.Error("CreateBooking: failed to acquire slot lock: %v", err)
		return nil, fmt.Errorf("%w: failed to acquire slot lock: %v", ErrInternal, err)
	}
	uc.logger.Info("CreateBooking: %s is %s, owner=%s", token.Key, OutcomePending, token.Value)

	// 7. Блокировка снимается в любом случае
	defer func() {
		if err := uc.locker.Release(context.WithoutCancel(ctx), token); err != nil {
			uc.logger.Warn("CreateBooking: failed to release %s (owner=%s): %v", token.Key, token.Value, err)
		}
	}()

	var result *domain.Booking

	// 5-6. Окончательная проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5. Есть ли уже активное бронирование на этот слот
		exists, err := uc.bookingRepo.ExistsActiveAt(txCtx, req.GroundID, req.Date, startTime)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to re-check slot: %v", err)
			return fmt.Errorf("%w: failed to re-check slot: %v", ErrInternal, err)
		}
		if exists {
			uc.logger.Warn("CreateBooking: slot ground=%d, date=%s, time=%s already booked",
				req.GroundID, req.Date.Format(domain.DateFormat), startTime)
			return ErrSlotAlreadyBooked
		}

		// 5b. Пересекается ли интервал с другими бронированиями и блокировками.
		// Доступность считается заново по хранилищу внутри транзакции, без кэша.
		fresh, err := uc.slots.Execute(txCtx, &get_available_slots.Request{
			GroundID:      req.GroundID,
			Date:          req.Date,
			DurationHours: req.DurationHours,
			BypassCache:   true,
		})
		if err != nil {
			return uc.translateSlotsError(err)
		}
		if !slotOffered(fresh.Slots, startTime) {
			uc.logger.Warn("CreateBooking: %s on ground=%d, date=%s overlaps an occupied interval",
				startTime, req.GroundID, req.Date.Format(domain.DateFormat))
			return ErrSlotAlreadyBooked
		}

		// 6. Создаем бронирование
		code, err := uc.codeGen()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			BookingCode:   code,
			UserID:        req.UserID,
			GroundID:      req.GroundID,
			VenueID:       ground.VenueID,
			BookingDate:   req.Date,
			StartTime:     startTime,
			DurationHours: req.DurationHours,
			Price:         price,
			Status:        domain.StatusConfirmed,
		})
		if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			uc.logger.Warn("CreateBooking: insert hit unique slot index: %v", err)
			return ErrSlotAlreadyBooked
		}
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotAlreadyBooked):
			uc.record(OutcomeRejected)
			return nil, err
		case errors.Is(err, ErrInternal):
			uc.record(OutcomeFailed)
			return nil, err
		case errors.Is(err, ErrGroundNotFound), errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidInput):
			uc.record(OutcomeRejected)
			return nil, err
		default:
			uc.record(OutcomeFailed)
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.record(OutcomeConfirmed)
	uc.logger.Info("CreateBooking: booking id=%d code=%s %s", result.ID, result.BookingCode, OutcomeConfirmed)

	if uc.events != nil {
		if err := uc.events.BookingCreated(ctx, result); err != nil {
			uc.logger.Warn("CreateBooking: failed to publish event for booking id=%d: %v", result.ID, err)
		}
	}

	return toResponse(result), nil
}

func (uc *UseCase) translateSlotsError(err error) error {
	switch {
	case errors.Is(err, get_available_slots.ErrGroundNotFound):
		return ErrGroundNotFound
	case errors.Is(err, get_available_slots.ErrInvalidDate):
		uc.logger.Warn("CreateBooking: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	case errors.Is(err, get_available_slots.ErrInvalidDuration),
		errors.Is(err, get_available_slots.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		uc.logger.Error("CreateBooking: failed to compute availability: %v", err)
		return fmt.Errorf("%w: failed to compute availability: %v", ErrInternal, err)
	}
}

func (uc *UseCase) record(outcome Outcome) {
	if uc.recorder != nil {
		uc.recorder.IncBookingOutcome(string(outcome))
	}
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		BookingCode:   b.BookingCode,
		UserID:        b.UserID,
		GroundID:      b.GroundID,
		VenueID:       b.VenueID,
		BookingDate:   b.BookingDate,
		StartTime:     b.StartTime,
		DurationHours: b.DurationHours,
		Price:         b.Price,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
