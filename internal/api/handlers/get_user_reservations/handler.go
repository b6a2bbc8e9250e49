package get_user_reservations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tablebook/reservation-service/internal/api/handlers"
	"github.com/tablebook/reservation-service/internal/api/middleware"
	"github.com/tablebook/reservation-service/internal/service/reservations"
)

const (
	msgForbidden     = "доступ запрещен"
	msgInvalidStatus = "некорректный статус бронирования"
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

// Handle GET /api/v1/users/{email}/reservations
// Пользователь видит только собственную историю
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	email := vars["email"]

	if email != middleware.UserEmail(r) {
		h.logger.Warn("GET /users/{email}/reservations - Access denied: path=%s, requester=%s",
			email, middleware.UserEmail(r))
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	result, err := h.service.GetUserReservations(r.Context(), email, statusPtr)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /users/{email}/reservations - Invalid status: owner=%s, status=%s", email, status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /users/{email}/reservations - Failed to get reservations: owner=%s, error=%v",
				email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{email}/reservations - Reservations retrieved: owner=%s, count=%d",
		email, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result.Reservations)
}
