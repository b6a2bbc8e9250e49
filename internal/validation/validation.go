package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/tablebook/reservation-service/internal/domain"
	"github.com/tablebook/reservation-service/pkg/types"
)

// Error агрегированная ошибка валидации: собирает все нарушения сразу,
// а не останавливается на первом
type Error struct {
	Violations []string
}

func (e *Error) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// ReservationRequest поля заявки на бронирование, подлежащие проверке
type ReservationRequest struct {
	LocationID int64
	TableID    int64
	Date       time.Time
	TimeFrom   types.TimeString
	TimeTo     types.TimeString
	GuestCount int
	OwnerID    string
}

// ValidateReservationRequest проверяет заявку и возвращает *Error
// со списком всех нарушений, либо nil
func ValidateReservationRequest(req *ReservationRequest, now time.Time) error {
	var violations []string

	if req.LocationID <= 0 {
		violations = append(violations, "locationId must be positive")
	}
	if req.TableID <= 0 {
		violations = append(violations, "tableId must be positive")
	}
	if req.OwnerID == "" {
		violations = append(violations, "ownerId is required")
	}
	if req.GuestCount <= 0 {
		violations = append(violations, "guestCount must be positive")
	}

	if req.Date.IsZero() {
		violations = append(violations, "date is required")
	} else if isDateInPast(req.Date, now) {
		violations = append(violations, "date must not be in the past")
	}

	switch {
	case req.TimeFrom.IsZero():
		violations = append(violations, "timeFrom is required")
	case req.TimeFrom.Validate() != nil:
		violations = append(violations, fmt.Sprintf("timeFrom %q is not a valid HH:MM time", req.TimeFrom))
	}

	switch {
	case req.TimeTo.IsZero():
		violations = append(violations, "timeTo is required")
	case req.TimeTo.Validate() != nil:
		violations = append(violations, fmt.Sprintf("timeTo %q is not a valid HH:MM time", req.TimeTo))
	}

	if req.TimeFrom.Validate() == nil && req.TimeTo.Validate() == nil &&
		!req.TimeFrom.IsZero() && !req.TimeTo.IsZero() {
		if !IsAfterTime(req.TimeTo, req.TimeFrom) {
			violations = append(violations, "timeTo must be after timeFrom")
		}
		// Для сегодняшней даты время начала не должно быть в прошлом
		if !req.Date.IsZero() && isSameDay(req.Date, now) {
			if req.TimeFrom.IsBefore(types.NewTimeString(now)) {
				violations = append(violations, "timeFrom must not be in the past")
			}
		}
	}

	if len(violations) > 0 {
		return &Error{Violations: violations}
	}
	return nil
}

// IsWithin30MinutesOfCreation проверяет, что с момента создания брони
// прошло не больше окна редактирования
func IsWithin30MinutesOfCreation(createdAt, now time.Time) bool {
	return now.Sub(createdAt) <= domain.EditWindowMinutes*time.Minute
}

// IsAfterTime возвращает true, если a строго позже b
func IsAfterTime(a, b types.TimeString) bool {
	return a.IsAfter(b)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
