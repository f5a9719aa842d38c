package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-GroundBookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	GroundID      int64         `json:"groundId"`
	Date          string        `json:"date"`
	DurationHours int           `json:"durationHours"`
	Slots         []domain.Slot `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := resp.Slots
	if slots == nil {
		slots = []domain.Slot{}
	}

	return &AvailableSlotsResponse{
		GroundID:      resp.GroundID,
		Date:          resp.Date.Format(domain.DateFormat),
		DurationHours: resp.DurationHours,
		Slots:         slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(groundID int64, dateStr string, durationHours int) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		GroundID:      groundID,
		Date:          date,
		DurationHours: durationHours,
	}, nil
}
