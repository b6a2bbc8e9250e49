package edit_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("edit_reservation: reservation not found")

	// ErrTooLate возвращается, когда окно редактирования (30 минут после
	// создания) уже закрыто
	ErrTooLate = errors.New("edit_reservation: edit window has expired")

	// ErrForbidden возвращается, когда запрашивающий не владелец бронирования
	ErrForbidden = errors.New("edit_reservation: requester is not the owner")

	// ErrInvalidState возвращается при попытке изменить отменённое бронирование
	ErrInvalidState = errors.New("edit_reservation: reservation is cancelled")

	// ErrTableNotFound возвращается, когда стол не принадлежит локации
	ErrTableNotFound = errors.New("edit_reservation: table not found at location")

	// ErrCapacityExceeded возвращается, когда гостей больше вместимости стола
	ErrCapacityExceeded = errors.New("edit_reservation: guest count exceeds table capacity")

	// ErrSlotTaken возвращается, когда новый слот уже занят
	ErrSlotTaken = errors.New("edit_reservation: slot already taken")

	// ErrNoWaiters возвращается, когда на локации нет ни одного официанта
	ErrNoWaiters = errors.New("edit_reservation: no waiters at location")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("edit_reservation: internal error")
)
