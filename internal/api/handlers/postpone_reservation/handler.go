package postpone_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tablebook/reservation-service/internal/api/handlers"
	"github.com/tablebook/reservation-service/internal/service/reservations"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgNotFound           = "бронирование не найдено"
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

// Handle PATCH /api/v1/reservations/{reservationId}/postpone
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID := vars["reservationId"]

	var req PostponeReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/postpone - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, timeFrom, timeTo, err := req.Parse()
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/postpone - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	err = h.service.Postpone(r.Context(), reservationID, date, timeFrom, timeTo)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/postpone - Reservation not found: id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /reservations/{id}/postpone - Failed to postpone reservation: id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/postpone - Reservation postponed: id=%s, date=%s, time=%s-%s",
		reservationID, req.Date, req.TimeFrom, req.TimeTo)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
