package tablecatalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с каталогом столов
// Каталог владеет справочником локаций и столов; этот сервис
// читает его и никогда не изменяет
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога столов
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetTables получает список столов локации
func (c *Client) GetTables(ctx context.Context, locationID int64) ([]Table, error) {
	url := fmt.Sprintf("%s/internal/locations/%d/tables", c.baseURL, locationID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrLocationNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var parsed tablesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return parsed.Tables, nil
}

// FindTable ищет стол локации по ID
// Возвращает (nil, nil), если стол не принадлежит локации
func (c *Client) FindTable(ctx context.Context, locationID, tableID int64) (*Table, error) {
	tables, err := c.GetTables(ctx, locationID)
	if err != nil {
		return nil, err
	}

	for i := range tables {
		if tables[i].ID == tableID {
			return &tables[i], nil
		}
	}

	return nil, nil
}
