package create_reservation

import "errors"

var (
	// ErrLocationNotFound возвращается, когда локация не найдена в каталоге
	ErrLocationNotFound = errors.New("create_reservation: location not found")

	// ErrTableNotFound возвращается, когда стол не принадлежит локации
	ErrTableNotFound = errors.New("create_reservation: table not found at location")

	// ErrCapacityExceeded возвращается, когда гостей больше вместимости стола
	ErrCapacityExceeded = errors.New("create_reservation: guest count exceeds table capacity")

	// ErrSlotTaken возвращается, когда слот уже занят другим бронированием
	ErrSlotTaken = errors.New("create_reservation: slot already taken")

	// ErrNoWaiters возвращается, когда на локации нет ни одного официанта
	ErrNoWaiters = errors.New("create_reservation: no waiters at location")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
