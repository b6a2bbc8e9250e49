package domain

// Waiter represents a waiter serving a location
//
// LifetimeAssignedCount считает все назначения за весь срок работы официанта
// и никогда не уменьшается - это честность распределения за весь стаж,
// а не балансировка текущей загрузки
type Waiter struct {
	ID                    int64
	Email                 string
	LocationID            int64
	LifetimeAssignedCount int64
}
