package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tablebook/reservation-service/internal/api/handlers"
	"github.com/tablebook/reservation-service/internal/api/middleware"
	"github.com/tablebook/reservation-service/internal/service/reservations"
)

const (
	msgNotFound     = "бронирование не найдено"
	msgForbidden    = "доступ запрещен"
	msgTooLate      = "окно отмены бронирования истекло"
	msgInvalidState = "бронирование не может быть отменено в текущем статусе"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID := vars["reservationId"]
	requesterID := middleware.UserEmail(r)

	err := h.service.CancelByOwner(r.Context(), reservationID, requesterID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Reservation not found: id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrForbidden):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Access denied: id=%s, requester=%s",
				reservationID, requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrTooLate):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Cancel window expired: id=%s", reservationID)
			handlers.RespondForbidden(w, msgTooLate)

		case errors.Is(err, reservations.ErrInvalidState):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Invalid state: id=%s", reservationID)
			handlers.RespondConflict(w, msgInvalidState)

		default:
			h.logger.Error("PATCH /reservations/{id}/cancel - Failed to cancel reservation: id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/cancel - Reservation cancelled: id=%s, requester=%s",
		reservationID, requesterID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
