package get_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tablebook/reservation-service/internal/api/handlers"
	"github.com/tablebook/reservation-service/internal/api/middleware"
	"github.com/tablebook/reservation-service/internal/service/reservations"
)

const (
	msgNotFound  = "бронирование не найдено"
	msgForbidden = "доступ запрещен"
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

// Handle GET /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID := vars["reservationId"]
	requesterID := middleware.UserEmail(r)

	result, err := h.service.GetByID(r.Context(), reservationID, requesterID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{id} - Reservation not found: id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrForbidden):
			h.logger.Warn("GET /reservations/{id} - Access denied: id=%s, requester=%s",
				reservationID, requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /reservations/{id} - Failed to get reservation: id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{id} - Reservation retrieved: id=%s, requester=%s",
		reservationID, requesterID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
