package billing

// Customer модель клиента платёжного провайдера
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Subscription модель подписки платёжного провайдера
type Subscription struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	PriceID    string `json:"price_id"`
	Status     string `json:"status"`
}

// createCustomerRequest запрос на создание клиента
type createCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// attachPaymentMethodRequest запрос на привязку способа оплаты
type attachPaymentMethodRequest struct {
	PaymentMethodID string `json:"payment_method_id"`
}

// createSubscriptionRequest запрос на создание подписки
type createSubscriptionRequest struct {
	CustomerID string `json:"customer_id"`
	PriceID    string `json:"price_id"`
}
