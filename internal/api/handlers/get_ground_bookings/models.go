package get_ground_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
	"github.com/m04kA/SMC-GroundBookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	groundID int64,
	userID int64,
	statusStr string,
	dateStr string,
	includeInactiveStr string,
) (*models.GetGroundBookingsRequest, error) {
	req := &models.GetGroundBookingsRequest{
		UserID:   userID,
		GroundID: groundID,
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
