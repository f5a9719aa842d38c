package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GroundBookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-GroundBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidGroundID = "некорректный ID площадки"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPastDate        = "дата в прошлом"
	msgMissingDuration = "длительность обязательна"
	msgInvalidDuration = "длительность должна быть 2 или 3 часа"
	msgGroundNotFound  = "площадка не найдена"
)

type Handler struct {
	useCase SlotsQuery
	logger  Logger
}

func NewHandler(useCase SlotsQuery, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/grounds/{groundId}/available-slots
// Query params: date (required, YYYY-MM-DD), duration (required, 2|3)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	groundID, err := strconv.ParseInt(vars["groundId"], 10, 64)
	if err != nil || groundID <= 0 {
		h.logger.Warn("GET /grounds/{id}/available-slots - Invalid ground ID: %s", vars["groundId"])
		handlers.RespondBadRequest(w, msgInvalidGroundID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /grounds/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	durationStr := r.URL.Query().Get("duration")
	if durationStr == "" {
		h.logger.Warn("GET /grounds/{id}/available-slots - Missing duration")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /grounds/{id}/available-slots - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	useCaseReq, err := ToUseCaseRequest(groundID, dateStr, duration)
	if err != nil {
		h.logger.Warn("GET /grounds/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrGroundNotFound):
			h.logger.Warn("GET /grounds/{id}/available-slots - Ground not found: ground_id=%d", groundID)
			handlers.RespondNotFound(w, msgGroundNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /grounds/{id}/available-slots - Failed to get slots: ground_id=%d, error=%v",
				groundID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /grounds/{id}/available-slots - Slots retrieved successfully: ground_id=%d, date=%s, duration=%d, slots_count=%d",
		groundID, dateStr, duration, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
