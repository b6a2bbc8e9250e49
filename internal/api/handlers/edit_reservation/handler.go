package edit_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tablebook/reservation-service/internal/api/handlers"
	"github.com/tablebook/reservation-service/internal/api/middleware"
	editReservation "github.com/tablebook/reservation-service/internal/usecase/edit_reservation"
	"github.com/tablebook/reservation-service/internal/validation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgTooLate            = "окно изменения бронирования истекло"
	msgInvalidState       = "бронирование отменено и не может быть изменено"
	msgTableNotFound      = "стол не найден в локации"
	msgCapacityExceeded   = "количество гостей превышает вместимость стола"
	msgSlotTaken          = "выбранный слот уже занят"
	msgNoWaiters          = "в локации нет официантов"
)

type Handler struct {
	useCase EditReservationUseCase
	logger  Logger
}

func NewHandler(useCase EditReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID := vars["reservationId"]

	var req EditReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	requesterID := middleware.UserEmail(r)

	useCaseReq, err := req.ToUseCaseRequest(reservationID, requesterID)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *validation.Error
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("PUT /reservations/{id} - Validation failed: id=%s, %v", reservationID, err)
			handlers.RespondBadRequest(w, validationErr.Error())

		case errors.Is(err, editReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation not found: id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, editReservation.ErrForbidden):
			h.logger.Warn("PUT /reservations/{id} - Access denied: id=%s, requester=%s", reservationID, requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, editReservation.ErrTooLate):
			h.logger.Warn("PUT /reservations/{id} - Edit window expired: id=%s", reservationID)
			handlers.RespondForbidden(w, msgTooLate)

		case errors.Is(err, editReservation.ErrInvalidState):
			h.logger.Warn("PUT /reservations/{id} - Reservation cancelled: id=%s", reservationID)
			handlers.RespondConflict(w, msgInvalidState)

		case errors.Is(err, editReservation.ErrTableNotFound):
			h.logger.Warn("PUT /reservations/{id} - Table not found: id=%s, table_id=%d", reservationID, req.TableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, editReservation.ErrCapacityExceeded):
			h.logger.Warn("PUT /reservations/{id} - Capacity exceeded: id=%s, guests=%d", reservationID, req.GuestCount)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, editReservation.ErrSlotTaken):
			h.logger.Warn("PUT /reservations/{id} - Slot taken: id=%s, date=%s, time=%s", reservationID, req.Date, req.TimeFrom)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, editReservation.ErrNoWaiters):
			h.logger.Warn("PUT /reservations/{id} - No waiters: id=%s", reservationID)
			handlers.RespondConflict(w, msgNoWaiters)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to edit reservation: id=%s, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /reservations/{id} - Reservation updated: id=%s, requester=%s", result.ID, requesterID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
