package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	RequesterID int64   `json:"-"` // Кто запрашивает (X-User-ID)
	UserID      int64   `json:"userId"`
	Status      *string `json:"status,omitempty"`
}

// GetGroundBookingsRequest запрос на получение бронирований площадки
type GetGroundBookingsRequest struct {
	UserID          int64      `json:"userId"` // Должен быть владельцем заведения
	GroundID        int64      `json:"groundId"`
	Date            *time.Time `json:"date,omitempty"`            // Фильтр по дате (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetGroundBookingsRequest) ToDomainFilter() (domain.GroundBookingsFilter, error) {
	filter := domain.GroundBookingsFilter{
		GroundID:        r.GroundID,
		Date:            r.Date,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest запрос на смену статуса (владелец заведения)
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64           `json:"id"`
	BookingCode   string          `json:"bookingCode"`
	UserID        int64           `json:"userId"`
	GroundID      int64           `json:"groundId"`
	VenueID       int64           `json:"venueId"`
	BookingDate   string          `json:"bookingDate"` // "2026-10-19"
	StartTime     string          `json:"startTime"`   // "18:00"
	DurationHours int             `json:"durationHours"`
	Price         decimal.Decimal `json:"price"`
	Status        string          `json:"status"`

	RefundAmount *decimal.Decimal `json:"refundAmount,omitempty"`
	CancelledAt  *string          `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// CancelResponse результат отмены
type CancelResponse struct {
	BookingID     int64           `json:"bookingId"`
	Cancelled     bool            `json:"cancelled"`
	RefundAmount  decimal.Decimal `json:"refundAmount"`
	RefundPercent int64           `json:"refundPercentage"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:            b.ID,
		BookingCode:   b.BookingCode,
		UserID:        b.UserID,
		GroundID:      b.GroundID,
		VenueID:       b.VenueID,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		DurationHours: b.DurationHours,
		Price:         b.Price,
		Status:        string(b.Status),
		RefundAmount:  b.RefundAmount,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	switch s {
	case domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusStarted,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusNoShow:
		return s, nil
	}

	return "", ErrInvalidStatus
}
