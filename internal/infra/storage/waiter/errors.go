package waiter

import "errors"

var (
	// ErrWaiterNotFound возвращается, когда официант не найден
	ErrWaiterNotFound = errors.New("waiter.repository: waiter not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("waiter.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("waiter.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("waiter.repository: failed to scan row")
)
