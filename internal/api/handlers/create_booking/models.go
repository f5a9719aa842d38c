package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-GroundBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-GroundBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	GroundID      int64  `json:"groundId" validate:"required,gt=0"`
	BookingDate   string `json:"bookingDate" validate:"required,datetime=2006-01-02"` // "2026-10-19"
	StartTime     string `json:"startTime" validate:"required,datetime=15:04"`        // "18:00"
	DurationHours int    `json:"durationHours" validate:"required,oneof=2 3"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64           `json:"id"`
	BookingCode   string          `json:"bookingCode"`
	UserID        int64           `json:"userId"`
	GroundID      int64           `json:"groundId"`
	VenueID       int64           `json:"venueId"`
	BookingDate   string          `json:"bookingDate"`
	StartTime     string          `json:"startTime"`
	DurationHours int             `json:"durationHours"`
	Price         decimal.Decimal `json:"price"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:        userID,
		GroundID:      r.GroundID,
		Date:          bookingDate,
		StartTime:     startTime,
		DurationHours: r.DurationHours,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		BookingCode:   resp.BookingCode,
		UserID:        resp.UserID,
		GroundID:      resp.GroundID,
		VenueID:       resp.VenueID,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		DurationHours: resp.DurationHours,
		Price:         resp.Price,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
