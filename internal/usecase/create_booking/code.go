package create_booking

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
)

// generateBookingCode генерирует короткий код бронирования вида BK7QX2
func generateBookingCode() (string, error) {
	suffix, err := gonanoid.Generate(domain.BookingCodeAlphabet, domain.BookingCodeLength)
	if err != nil {
		return "", fmt.Errorf("generate booking code: %w", err)
	}
	return domain.BookingCodePrefix + suffix, nil
}
