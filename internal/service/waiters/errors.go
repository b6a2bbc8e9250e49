package waiters

import "errors"

var (
	// ErrNoWaiters возвращается, когда на локации нет ни одного официанта
	ErrNoWaiters = errors.New("waiters: no waiters at location")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("waiters: internal error")
)
