package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrForbidden возвращается при несовпадении владельца или официанта
	ErrForbidden = errors.New("reservations: access denied")

	// ErrTooLate возвращается, когда 30-минутное окно после создания закрыто
	ErrTooLate = errors.New("reservations: edit window has expired")

	// ErrInvalidState возвращается, когда операция недопустима для текущего статуса
	ErrInvalidState = errors.New("reservations: operation not allowed in current status")

	// ErrInvalidStatus возвращается при неизвестном целевом статусе
	ErrInvalidStatus = errors.New("reservations: invalid reservation status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reservations: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)
