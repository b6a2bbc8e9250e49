package get_location_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tablebook/reservation-service/internal/api/handlers"
	"github.com/tablebook/reservation-service/internal/service/reservations"
)

const (
	msgInvalidLocationID = "некорректный ID локации"
	msgInvalidQuery      = "некорректные параметры запроса"
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

// Handle GET /api/v1/locations/{locationId}/reservations
// План зала для персонала: бронирования локации за период
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locationIDStr := vars["locationId"]

	locationID, err := strconv.ParseInt(locationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /locations/{locationId}/reservations - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	serviceReq, err := parseQuery(locationID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /locations/{locationId}/reservations - Invalid query: location_id=%d, %v",
			locationID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.GetLocationReservations(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /locations/{locationId}/reservations - Invalid filter: location_id=%d, %v",
				locationID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /locations/{locationId}/reservations - Failed to get reservations: location_id=%d, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /locations/{locationId}/reservations - Reservations retrieved: location_id=%d, count=%d",
		locationID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result.Reservations)
}
