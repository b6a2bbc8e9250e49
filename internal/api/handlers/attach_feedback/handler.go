package attach_feedback

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tablebook/reservation-service/internal/api/handlers"
	"github.com/tablebook/reservation-service/internal/service/reservations"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgFeedbackIDRequired = "feedbackId обязателен"
	msgNotFound           = "бронирование не найдено"
)

// AttachFeedbackRequest HTTP request model
type AttachFeedbackRequest struct {
	FeedbackID string `json:"feedbackId"`
}

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

// Handle PATCH /api/v1/reservations/{reservationId}/feedback
// Привязывает внешний отзыв к бронированию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID := vars["reservationId"]

	var req AttachFeedbackRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/feedback - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.AttachFeedback(r.Context(), reservationID, req.FeedbackID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/feedback - Missing feedback ID: id=%s", reservationID)
			handlers.RespondBadRequest(w, msgFeedbackIDRequired)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/feedback - Reservation not found: id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /reservations/{id}/feedback - Failed to attach feedback: id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/feedback - Feedback attached: id=%s, feedback=%s",
		reservationID, req.FeedbackID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
