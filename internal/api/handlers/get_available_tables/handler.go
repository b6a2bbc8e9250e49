package get_available_tables

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tablebook/reservation-service/internal/api/handlers"
	getAvailableTables "github.com/tablebook/reservation-service/internal/usecase/get_available_tables"
)

const (
	msgInvalidLocationID = "некорректный ID локации"
	msgInvalidQuery      = "некорректные параметры запроса"
	msgLocationNotFound  = "локация не найдена"
)

type Handler struct {
	useCase GetAvailableTablesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTablesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/available-tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locationIDStr := vars["locationId"]

	locationID, err := strconv.ParseInt(locationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /locations/{locationId}/available-tables - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	useCaseReq, err := parseQuery(locationID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /locations/{locationId}/available-tables - Invalid query: location_id=%d, %v",
			locationID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTables.ErrInvalidInput):
			h.logger.Warn("GET /locations/{locationId}/available-tables - Invalid input: location_id=%d, %v",
				locationID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, getAvailableTables.ErrLocationNotFound):
			h.logger.Warn("GET /locations/{locationId}/available-tables - Location not found: location_id=%d",
				locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		default:
			h.logger.Error("GET /locations/{locationId}/available-tables - Failed to get availability: location_id=%d, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /locations/{locationId}/available-tables - Availability retrieved: location_id=%d, tables=%d",
		locationID, len(response.Tables))
	handlers.RespondJSON(w, http.StatusOK, response)
}
