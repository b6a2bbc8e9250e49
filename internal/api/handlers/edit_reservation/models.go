package edit_reservation

import (
	"time"

	"github.com/tablebook/reservation-service/internal/domain"
	editReservation "github.com/tablebook/reservation-service/internal/usecase/edit_reservation"
	"github.com/tablebook/reservation-service/pkg/types"
)

// EditReservationRequest HTTP request model
type EditReservationRequest struct {
	TableID    int64  `json:"tableId"`
	Date       string `json:"date"`     // "2025-10-15"
	TimeFrom   string `json:"timeFrom"` // "14:00"
	TimeTo     string `json:"timeTo"`   // "15:30"
	GuestCount int    `json:"guestCount"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID         string `json:"id"`
	LocationID int64  `json:"locationId"`
	TableID    int64  `json:"tableId"`
	Date       string `json:"date"`
	TimeFrom   string `json:"timeFrom"`
	TimeTo     string `json:"timeTo"`
	GuestCount int    `json:"guestCount"`
	Status     string `json:"status"`
	OwnerID    string `json:"ownerId"`
	WaiterID   string `json:"waiterId"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EditReservationRequest) ToUseCaseRequest(reservationID, requesterID string) (*editReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	timeFrom, err := types.NewTimeStringFromString(r.TimeFrom)
	if err != nil {
		return nil, err
	}

	timeTo, err := types.NewTimeStringFromString(r.TimeTo)
	if err != nil {
		return nil, err
	}

	return &editReservation.Request{
		ReservationID: reservationID,
		RequesterID:   requesterID,
		TableID:       r.TableID,
		Date:          date,
		TimeFrom:      timeFrom,
		TimeTo:        timeTo,
		GuestCount:    r.GuestCount,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *editReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:         resp.ID,
		LocationID: resp.LocationID,
		TableID:    resp.TableID,
		Date:       resp.Date.Format(domain.DateFormat),
		TimeFrom:   resp.TimeFrom.String(),
		TimeTo:     resp.TimeTo.String(),
		GuestCount: resp.GuestCount,
		Status:     resp.Status,
		OwnerID:    resp.OwnerID,
		WaiterID:   resp.WaiterID,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
