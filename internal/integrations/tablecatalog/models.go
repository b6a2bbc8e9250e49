package tablecatalog

// Table стол локации по данным каталога
type Table struct {
	ID         int64 `json:"id"`
	LocationID int64 `json:"locationId"`
	Capacity   int   `json:"capacity"`
}

// tablesResponse ответ каталога на запрос столов локации
type tablesResponse struct {
	Tables []Table `json:"tables"`
}
