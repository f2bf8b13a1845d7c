package clientservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// HTTPClient клиент для работы с сервисом клиентов (CRM)
// Сетевые сбои ретраятся с экспоненциальной паузой; после исчерпания
// попыток применяется graceful degradation - вызывающая сторона
// генерирует идентификатор клиента локально
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	maxRetries uint64
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса клиентов
func NewClient(baseURL string, timeout time.Duration, maxRetries int, log Logger) *HTTPClient {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxRetries: uint64(maxRetries),
		log:        log,
	}
}

// RegisterClient регистрирует клиента заявки и возвращает его идентификатор
// Повторная регистрация с тем же email возвращает существующего клиента
func (c *HTTPClient) RegisterClient(ctx context.Context, req *RegisterClientRequest) (*Client, error) {
	url := fmt.Sprintf("%s/internal/clients", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	var client *Client

	operation := func() error {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("%w: failed to create request: %v", ErrInternal, err))
		}
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			// Сетевая ошибка - имеет смысл повторить
			return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
			// Продолжаем обработку
		case resp.StatusCode >= http.StatusInternalServerError:
			respBody, _ := io.ReadAll(resp.Body)
			return fmt.Errorf("%w: status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
		default:
			respBody, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(fmt.Errorf("%w: unexpected status code %d: %s",
				ErrInvalidResponse, resp.StatusCode, string(respBody)))
		}

		var decoded Client
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			return backoff.Permanent(fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err))
		}

		client = &decoded
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries),
		ctx,
	)

	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	return client, nil
}

// RegisterClientWithGracefulDegradation регистрирует клиента с graceful degradation
// При недоступности сервиса возвращает ErrServiceDegraded: оформление заявки
// важнее консистентности CRM, идентификатор генерируется локально
func (c *HTTPClient) RegisterClientWithGracefulDegradation(ctx context.Context, req *RegisterClientRequest) (*Client, error) {
	c.log.Info("Registering client email=%s", req.Email)

	client, err := c.RegisterClient(ctx, req)
	if err != nil {
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("ClientService unavailable, applying graceful degradation for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: email=%s, error=%v", ErrServiceDegraded, req.Email, err)
	}

	c.log.Info("Successfully registered client id=%s", client.ID)
	return client, nil
}
