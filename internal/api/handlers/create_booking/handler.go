package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GroundBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-GroundBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-GroundBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgUnauthorized       = "пользователь не определен"
	msgGroundNotFound     = "площадка не найдена"
	msgGroundInactive     = "площадка недоступна для бронирования"
	msgInvalidBookingDate = "некорректная дата бронирования"
	msgInvalidTimeSlot    = "время должно быть кратно 30 минутам"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgSlotLocked         = "слот сейчас бронирует другой пользователь, попробуйте позже"
	msgSlotAlreadyBooked  = "слот уже забронирован"
)

type Handler struct {
	useCase SlotBooker
	logger  Logger
}

func NewHandler(useCase SlotBooker, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotLocked):
			h.logger.Warn("POST /bookings - Slot locked: user_id=%d, ground_id=%d, time=%s",
				userID, req.GroundID, req.StartTime)
			handlers.RespondConflict(w, msgSlotLocked)

		case errors.Is(err, createBooking.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /bookings - Slot already booked: user_id=%d, ground_id=%d, time=%s",
				userID, req.GroundID, req.StartTime)
			handlers.RespondConflict(w, msgSlotAlreadyBooked)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, ground_id=%d, time=%s",
				userID, req.GroundID, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrGroundNotFound):
			h.logger.Warn("POST /bookings - Ground not found: ground_id=%d", req.GroundID)
			handlers.RespondNotFound(w, msgGroundNotFound)

		case errors.Is(err, createBooking.ErrGroundInactive):
			handlers.RespondBadRequest(w, msgGroundInactive)

		case errors.Is(err, createBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, ground_id=%d, error=%v",
				userID, req.GroundID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, code=%s, user_id=%d, ground_id=%d",
		result.ID, result.BookingCode, userID, req.GroundID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
