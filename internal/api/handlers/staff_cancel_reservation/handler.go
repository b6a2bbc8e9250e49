package staff_cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tablebook/reservation-service/internal/api/handlers"
	"github.com/tablebook/reservation-service/internal/api/middleware"
	"github.com/tablebook/reservation-service/internal/service/reservations"
)

const (
	msgMissingWaiterEmail = "отсутствует заголовок X-Waiter-Email"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "официант не назначен на это бронирование"
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

// Handle DELETE /api/v1/reservations/{reservationId}
// Жёсткая отмена официантом: запись удаляется физически
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID := vars["reservationId"]

	waiterID := middleware.WaiterEmail(r)
	if waiterID == "" {
		h.logger.Warn("DELETE /reservations/{id} - Missing waiter email: id=%s", reservationID)
		handlers.RespondUnauthorized(w, msgMissingWaiterEmail)
		return
	}

	err := h.service.CancelByStaff(r.Context(), reservationID, waiterID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/{id} - Reservation not found: id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrForbidden):
			h.logger.Warn("DELETE /reservations/{id} - Waiter not assigned: id=%s, waiter=%s",
				reservationID, waiterID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /reservations/{id} - Failed to delete reservation: id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{id} - Reservation deleted: id=%s, waiter=%s", reservationID, waiterID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
