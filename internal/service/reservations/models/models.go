package models

import (
	"errors"
	"time"

	"github.com/tablebook/reservation-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// PostponeRequest запрос на перенос бронирования
type PostponeRequest struct {
	Date     string `json:"date"`     // "2025-10-15"
	TimeFrom string `json:"timeFrom"` // "14:00"
	TimeTo   string `json:"timeTo"`   // "15:30"
}

// TransitionRequest запрос на смену статуса от имени владельца
type TransitionRequest struct {
	Status string `json:"status"`
}

// GetLocationReservationsRequest запрос на выборку бронирований локации
type GetLocationReservationsRequest struct {
	LocationID      int64      `json:"locationId"`
	TableID         *int64     `json:"tableId,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetLocationReservationsRequest) ToDomainFilter() (domain.LocationReservationsFilter, error) {
	filter := domain.LocationReservationsFilter{
		LocationID:      r.LocationID,
		TableID:         r.TableID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID         string `json:"id"`
	LocationID int64  `json:"locationId"`
	TableID    int64  `json:"tableId"`
	Date       string `json:"date"`     // "2025-10-15"
	TimeFrom   string `json:"timeFrom"` // "14:00"
	TimeTo     string `json:"timeTo"`   // "15:30"
	GuestCount int    `json:"guestCount"`
	Status     string `json:"status"`
	OwnerID    string `json:"ownerId"`
	WaiterID   string `json:"waiterId"`

	FeedbackID *string `json:"feedbackId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:         r.ID,
		LocationID: r.LocationID,
		TableID:    r.TableID,
		Date:       r.Date.Format(domain.DateFormat),
		TimeFrom:   r.TimeFrom.String(),
		TimeTo:     r.TimeTo.String(),
		GuestCount: r.GuestCount,
		Status:     string(r.Status),
		OwnerID:    r.OwnerID,
		WaiterID:   r.WaiterID,
		FeedbackID: r.FeedbackID,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if dto := FromDomainReservation(r); dto != nil {
			resp.Reservations = append(resp.Reservations, *dto)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
