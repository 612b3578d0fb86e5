package billing

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден у провайдера
	ErrCustomerNotFound = errors.New("billing client: customer not found")

	// ErrSubscriptionNotFound возвращается, когда подписка не найдена
	ErrSubscriptionNotFound = errors.New("billing client: subscription not found")

	// ErrPaymentRejected возвращается, когда провайдер отклонил операцию
	ErrPaymentRejected = errors.New("billing client: payment rejected")

	// ErrUnavailable возвращается, когда провайдер недоступен.
	// Детали внутренней ошибки провайдера наружу не выносятся:
	// вызывающая сторона видит только общий признак "попробуйте позже".
	ErrUnavailable = errors.New("billing client: provider unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("billing client: internal error")
)
