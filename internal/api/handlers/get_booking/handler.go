package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GroundBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-GroundBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-GroundBookingService/internal/service/bookings"
)

const (
	msgUnauthorized     = "пользователь не определен"
	msgInvalidBookingID = "некорректный ID бронирования"
	msgBookingNotFound  = "бронирование не найдено"
	msgAccessDenied     = "бронирование доступно только клиенту и владельцу площадки"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	raw := mux.Vars(r)["bookingId"]
	bookingID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("GET /bookings/{id} - Invalid booking ID: %q", raw)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID, userID)
	switch {
	case err == nil:
		h.logger.Info("GET /bookings/{id} - booking_id=%d, code=%s, requested by user_id=%d",
			bookingID, booking.BookingCode, userID)
		handlers.RespondJSON(w, http.StatusOK, booking)

	case errors.Is(err, bookings.ErrBookingNotFound):
		handlers.RespondNotFound(w, msgBookingNotFound)

	case errors.Is(err, bookings.ErrAccessDenied):
		h.logger.Warn("GET /bookings/{id} - user_id=%d is neither customer nor venue owner of booking_id=%d",
			userID, bookingID)
		handlers.RespondForbidden(w, msgAccessDenied)

	default:
		h.logger.Error("GET /bookings/{id} - booking_id=%d: %v", bookingID, err)
		handlers.RespondInternalError(w)
	}
}
