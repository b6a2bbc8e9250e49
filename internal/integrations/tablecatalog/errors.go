package tablecatalog

import "errors"

var (
	// ErrLocationNotFound возвращается, когда локация не найдена в каталоге
	ErrLocationNotFound = errors.New("tablecatalog: location not found")

	// ErrInvalidResponse возвращается при некорректном ответе каталога
	ErrInvalidResponse = errors.New("tablecatalog: invalid response")

	// ErrUnavailable возвращается, когда каталог недоступен
	ErrUnavailable = errors.New("tablecatalog: service unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("tablecatalog: internal error")
)
