package get_ground_bookings

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
	msgInvalidGroundID = "некорректный ID площадки"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgInvalidParams   = "некорректные параметры запроса"
	msgGroundNotFound  = "площадка не найдена"
	msgForbidden       = "доступ только для владельца заведения"
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

// Handle GET /api/v1/grounds/{groundId}/bookings
// Query params: date, status, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	groundID, err := strconv.ParseInt(mux.Vars(r)["groundId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /grounds/{id}/bookings - Invalid ground ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGroundID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(groundID, userID, query.Get("status"), query.Get("date"), query.Get("includeInactive"))
	if err != nil {
		h.logger.Warn("GET /grounds/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetGroundBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrGroundNotFound):
			handlers.RespondNotFound(w, msgGroundNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /grounds/{id}/bookings - Access denied: ground_id=%d, user_id=%d",
				groundID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /grounds/{id}/bookings - Failed to get bookings: ground_id=%d, error=%v",
				groundID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /grounds/{id}/bookings - Bookings retrieved successfully: ground_id=%d, count=%d",
		groundID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
