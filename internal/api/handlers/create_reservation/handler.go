package create_reservation

import (
	"errors"
	"net/http"

	"github.com/tablebook/reservation-service/internal/api/handlers"
	"github.com/tablebook/reservation-service/internal/api/middleware"
	createReservation "github.com/tablebook/reservation-service/internal/usecase/create_reservation"
	"github.com/tablebook/reservation-service/internal/validation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgLocationNotFound   = "локация не найдена"
	msgTableNotFound      = "стол не найден в локации"
	msgCapacityExceeded   = "количество гостей превышает вместимость стола"
	msgSlotTaken          = "выбранный слот уже занят"
	msgNoWaiters          = "в локации нет официантов"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userEmail := middleware.UserEmail(r)

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userEmail)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *validation.Error
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /reservations - Validation failed: owner=%s, %v", useCaseReq.OwnerID, err)
			handlers.RespondBadRequest(w, validationErr.Error())

		case errors.Is(err, createReservation.ErrLocationNotFound):
			h.logger.Warn("POST /reservations - Location not found: location_id=%d", req.LocationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, createReservation.ErrTableNotFound):
			h.logger.Warn("POST /reservations - Table not found: location_id=%d, table_id=%d", req.LocationID, req.TableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, createReservation.ErrCapacityExceeded):
			h.logger.Warn("POST /reservations - Capacity exceeded: table_id=%d, guests=%d", req.TableID, req.GuestCount)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot taken: location_id=%d, table_id=%d, date=%s, time=%s",
				req.LocationID, req.TableID, req.Date, req.TimeFrom)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createReservation.ErrNoWaiters):
			h.logger.Warn("POST /reservations - No waiters: location_id=%d", req.LocationID)
			handlers.RespondConflict(w, msgNoWaiters)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: owner=%s, error=%v",
				useCaseReq.OwnerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created: id=%s, owner=%s, waiter=%s",
		result.ID, result.OwnerID, result.WaiterID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
