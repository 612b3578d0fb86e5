package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платёжного провайдера (внешняя система, для нас - чёрный ящик).
// Операции: создание клиента, привязка способа оплаты, создание и отмена подписки.
// Любая инфраструктурная ошибка провайдера схлопывается в ErrUnavailable.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платёжного провайдера
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateCustomer создает клиента у платёжного провайдера
func (c *Client) CreateCustomer(ctx context.Context, name, email string) (*Customer, error) {
	var customer Customer
	err := c.post(ctx, "/v1/customers", createCustomerRequest{Name: name, Email: email}, &customer)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// AttachPaymentMethod привязывает способ оплаты к клиенту и делает его основным
func (c *Client) AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	path := fmt.Sprintf("/v1/customers/%s/payment-methods", customerID)
	return c.post(ctx, path, attachPaymentMethodRequest{PaymentMethodID: paymentMethodID}, nil)
}

// CreateSubscription создает подписку клиента на тарифный план
func (c *Client) CreateSubscription(ctx context.Context, customerID, priceID string) (*Subscription, error) {
	var subscription Subscription
	err := c.post(ctx, "/v1/subscriptions", createSubscriptionRequest{CustomerID: customerID, PriceID: priceID}, &subscription)
	if err != nil {
		return nil, err
	}
	return &subscription, nil
}

// CancelSubscription отменяет активную подписку клиента.
// Провайдер сам находит подписку по клиенту, идентификатор подписки
// на нашей стороне не хранится.
func (c *Client) CancelSubscription(ctx context.Context, customerID string) error {
	path := fmt.Sprintf("/v1/customers/%s/subscription", customerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("CancelSubscription: provider request failed: %v", err)
		return ErrUnavailable
	}
	defer resp.Body.Close()

	return c.mapStatus(resp.StatusCode, "CancelSubscription")
}

// post выполняет POST запрос к провайдеру и декодирует ответ в out (если out != nil)
func (c *Client) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("post %s: provider request failed: %v", path, err)
		return ErrUnavailable
	}
	defer resp.Body.Close()

	if err := c.mapStatus(resp.StatusCode, path); err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Error("post %s: failed to decode provider response: %v", path, err)
		return ErrUnavailable
	}

	return nil
}

// mapStatus переводит статус-код провайдера в ошибку клиента.
// Тело ответа провайдера не логируется и не возвращается наружу.
func (c *Client) mapStatus(statusCode int, operation string) error {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode == http.StatusNotFound:
		return ErrSubscriptionNotFound
	case statusCode == http.StatusPaymentRequired, statusCode == http.StatusUnprocessableEntity:
		c.log.Warn("%s: provider rejected operation with status %d", operation, statusCode)
		return ErrPaymentRejected
	default:
		c.log.Error("%s: provider returned status %d", operation, statusCode)
		return ErrUnavailable
	}
}
