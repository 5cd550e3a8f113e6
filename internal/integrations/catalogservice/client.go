package catalogservice

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

// Client клиент для работы с CatalogService: каталог услуг
// и справочник мастеров салона.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CatalogService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListServices возвращает все услуги каталога, включая неактивные.
// Фильтрация по активности — ответственность вызывающего слоя.
func (c *Client) ListServices(ctx context.Context) ([]Service, error) {
	url := fmt.Sprintf("%s/internal/catalog/services", c.baseURL)

	var services []Service
	if err := c.getJSON(ctx, url, &services, nil); err != nil {
		return nil, err
	}
	return services, nil
}

// GetService возвращает услугу по ID
func (c *Client) GetService(ctx context.Context, serviceID int64) (*Service, error) {
	url := fmt.Sprintf("%s/internal/catalog/services/%d", c.baseURL, serviceID)

	var service Service
	if err := c.getJSON(ctx, url, &service, ErrServiceNotFound); err != nil {
		return nil, err
	}
	return &service, nil
}

// ListProfessionals возвращает справочник мастеров
func (c *Client) ListProfessionals(ctx context.Context) ([]Professional, error) {
	url := fmt.Sprintf("%s/internal/catalog/professionals", c.baseURL)

	var professionals []Professional
	if err := c.getJSON(ctx, url, &professionals, nil); err != nil {
		return nil, err
	}
	return professionals, nil
}

// GetProfessional возвращает мастера по ID
func (c *Client) GetProfessional(ctx context.Context, professionalID int64) (*Professional, error) {
	url := fmt.Sprintf("%s/internal/catalog/professionals/%d", c.baseURL, professionalID)

	var professional Professional
	if err := c.getJSON(ctx, url, &professional, ErrProfessionalNotFound); err != nil {
		return nil, err
	}
	return &professional, nil
}

// ListServicesWithGracefulDegradation возвращает каталог услуг,
// а при недоступности CatalogService — ErrServiceDegraded.
// Пока каталог недоступен, вызывающий слой считает его пустым:
// услуги невыбираемы, но сервис продолжает отвечать.
func (c *Client) ListServicesWithGracefulDegradation(ctx context.Context) ([]Service, error) {
	services, err := c.ListServices(ctx)
	if err != nil {
		c.log.Error("CatalogService unavailable, applying graceful degradation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}
	return services, nil
}

// getJSON выполняет GET запрос и декодирует ответ.
// notFoundErr подставляется на 404 (nil — 404 считается некорректным ответом).
func (c *Client) getJSON(ctx context.Context, url string, out interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		if notFoundErr != nil {
			return notFoundErr
		}
		return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}
