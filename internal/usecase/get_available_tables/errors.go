package get_available_tables

import "errors"

var (
	// ErrLocationNotFound возвращается, когда локация не найдена в каталоге
	ErrLocationNotFound = errors.New("get_available_tables: location not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_tables: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_tables: internal error")
)
