package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-GroundBookingService/internal/infra/storage/booking"
	groundRepo "github.com/m04kA/SMC-GroundBookingService/internal/infra/storage/ground"
	"github.com/m04kA/SMC-GroundBookingService/internal/service/bookings/models"
)

// allowedTransitions переходы статусов, доступные владельцу заведения
var allowedTransitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.StatusPending:   {domain.StatusConfirmed},
	domain.StatusConfirmed: {domain.StatusStarted, domain.StatusNoShow},
	domain.StatusStarted:   {domain.StatusCompleted},
}

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	groundRepo   GroundRepository
	events       EventPublisher
	refund       RefundPolicy
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
// location - часовой пояс заведений, в нем считается время начала бронирования
func NewService(
	bookingRepo BookingRepository,
	groundRepo GroundRepository,
	events EventPublisher,
	refund RefundPolicy,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		bookingRepo:  bookingRepo,
		groundRepo:   groundRepo,
		events:       events,
		refund:       refund,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Видеть бронирование может клиент или владелец заведения
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if booking.UserID != userID {
		if err := s.checkVenueOwner(ctx, booking.VenueID, userID); err != nil {
			s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
			return nil, err
		}
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	if req.RequesterID != req.UserID {
		s.logger.Warn("GetUserBookings: user=%d requested bookings of user=%d", req.RequesterID, req.UserID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetGroundBookings получает бронирования площадки (для персонала заведения)
// Доступно только владельцу заведения
func (s *Service) GetGroundBookings(ctx context.Context, req *models.GetGroundBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetGroundBookings: fetching bookings for ground=%d, user=%d", req.GroundID, req.UserID)
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	s.logger.Info(logMsg)

	ground, err := s.groundRepo.GetByID(ctx, req.GroundID)
	if err != nil {
		if errors.Is(err, groundRepo.ErrGroundNotFound) {
			s.logger.Warn("GetGroundBookings: ground id=%d not found", req.GroundID)
			return nil, ErrGroundNotFound
		}
		s.logger.Error("GetGroundBookings: failed to get ground id=%d: %v", req.GroundID, err)
		return nil, fmt.Errorf("%w: GetGroundBookings - failed to get ground: %v", ErrInternal, err)
	}

	if err := s.checkVenueOwner(ctx, ground.VenueID, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetGroundBookings: invalid filter for ground=%d: %v", req.GroundID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByGroundWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetGroundBookings: repository error for ground=%d: %v", req.GroundID, err)
		return nil, fmt.Errorf("%w: GetGroundBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetGroundBookings: successfully fetched %d bookings for ground=%d", len(bookings), req.GroundID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование клиентом.
// При отмене раньше чем за окно политики возврата возвращается часть стоимости.
func (s *Service) Cancel(ctx context.Context, bookingID int64, userID int64) (*models.CancelResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, userID)

	booking, err := s.getBooking(ctx, "Cancel", bookingID)
	if err != nil {
		return nil, err
	}

	if booking.UserID != userID {
		s.logger.Warn("Cancel: user=%d is not the owner of booking id=%d", userID, bookingID)
		return nil, ErrAccessDenied
	}

	if booking.IsCancelled() {
		s.logger.Warn("Cancel: booking id=%d is already cancelled", bookingID)
		return nil, ErrAlreadyCancelled
	}

	if booking.IsCompleted() {
		s.logger.Warn("Cancel: booking id=%d is completed", bookingID)
		return nil, ErrCannotCancel
	}

	startsAt, err := booking.StartsAt(s.location)
	if err != nil {
		s.logger.Error("Cancel: bad start time for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - start time: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	refundAmount, refundPercent := s.refund.Refund(booking.Price, startsAt, now)

	if err := s.bookingRepo.Cancel(ctx, bookingID, refundAmount); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrCannotCancel):
			// Статус успели поменять параллельно
			s.logger.Warn("Cancel: booking id=%d changed status concurrently", bookingID)
			return nil, ErrCannotCancel
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		default:
			s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
			return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
	}

	booking.Status = domain.StatusCancelled
	booking.RefundAmount = &refundAmount
	booking.CancelledAt = &now

	if s.events != nil {
		if err := s.events.BookingCancelled(ctx, booking); err != nil {
			s.logger.Warn("Cancel: failed to publish event for booking id=%d: %v", bookingID, err)
		}
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d, refund=%s (%d%%)",
		bookingID, refundAmount.StringFixed(2), refundPercent)

	return &models.CancelResponse{
		BookingID:     bookingID,
		Cancelled:     true,
		RefundAmount:  refundAmount,
		RefundPercent: refundPercent,
	}, nil
}

// UpdateStatus обновляет статус бронирования
// Доступно только владельцу заведения
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s", req.Status)
		return ErrInvalidStatus
	}

	booking, err := s.getBooking(ctx, "UpdateStatus", bookingID)
	if err != nil {
		return err
	}

	if err := s.checkVenueOwner(ctx, booking.VenueID, req.UserID); err != nil {
		return err
	}

	if !canTransition(booking.Status, newStatus) {
		s.logger.Warn("UpdateStatus: booking id=%d cannot go %s -> %s", bookingID, booking.Status, newStatus)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = newStatus
	if s.events != nil {
		if err := s.events.BookingStatusChanged(ctx, booking); err != nil {
			s.logger.Warn("UpdateStatus: failed to publish event for booking id=%d: %v", bookingID, err)
		}
	}

	s.logger.Info("UpdateStatus: booking id=%d is now %s", bookingID, newStatus)
	return nil
}

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// checkVenueOwner проверяет, что пользователь является владельцем заведения
func (s *Service) checkVenueOwner(ctx context.Context, venueID int64, userID int64) error {
	ownerID, err := s.groundRepo.GetVenueOwnerID(ctx, venueID)
	if err != nil {
		if errors.Is(err, groundRepo.ErrVenueNotFound) {
			s.logger.Warn("checkVenueOwner: venue id=%d not found", venueID)
			return ErrAccessDenied
		}
		s.logger.Error("checkVenueOwner: failed to get venue id=%d: %v", venueID, err)
		return fmt.Errorf("%w: checkVenueOwner - failed to get venue: %v", ErrInternal, err)
	}

	if ownerID != userID {
		s.logger.Warn("checkVenueOwner: user=%d is not the owner of venue=%d", userID, venueID)
		return ErrAccessDenied
	}

	return nil
}

func canTransition(from, to domain.BookingStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
