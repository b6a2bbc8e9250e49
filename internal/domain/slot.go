package domain

import "github.com/tablebook/reservation-service/pkg/types"

// SlotGrid фиксированная сетка времён начала посадки, единая для всех
// локаций и столов. Порядок значим
var SlotGrid = []types.TimeString{
	"10:30",
	"12:15",
	"14:00",
	"15:45",
	"17:30",
	"19:15",
	"21:00",
}

// TableAvailability свободные слоты одного стола
type TableAvailability struct {
	TableID  int64
	Capacity int
	Slots    []types.TimeString
}

// HasSlots returns true if the table still has at least one free slot
func (t *TableAvailability) HasSlots() bool {
	return len(t.Slots) > 0
}
