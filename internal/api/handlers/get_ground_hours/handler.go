package get_ground_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GroundBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-GroundBookingService/internal/service/grounds"
)

const (
	msgInvalidGroundID = "некорректный ID площадки"
	msgGroundNotFound  = "площадка не найдена"
)

type Handler struct {
	service GroundService
	logger  Logger
}

func NewHandler(service GroundService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/grounds/{groundId}/operating-hours
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	groundID, err := strconv.ParseInt(mux.Vars(r)["groundId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /grounds/{id}/operating-hours - Invalid ground ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGroundID)
		return
	}

	result, err := h.service.GetOperatingHours(r.Context(), groundID)
	if err != nil {
		if errors.Is(err, grounds.ErrGroundNotFound) {
			handlers.RespondNotFound(w, msgGroundNotFound)
			return
		}
		h.logger.Error("GET /grounds/{id}/operating-hours - Failed to get hours: ground_id=%d, error=%v",
			groundID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /grounds/{id}/operating-hours - Hours retrieved: ground_id=%d, scope=%s, windows=%d",
		groundID, result.Scope, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, result)
}
