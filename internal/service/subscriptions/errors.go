package subscriptions

import "errors"

var (
	// ErrAlreadySubscribed возвращается, когда тариф пользователя уже платный
	ErrAlreadySubscribed = errors.New("user is already subscribed")

	// ErrNotSubscribed возвращается при попытке отменить несуществующую подписку
	ErrNotSubscribed = errors.New("user is not subscribed")

	// ErrUserNotFound возвращается, когда пользователь не найден в UserService
	ErrUserNotFound = errors.New("user not found")

	// ErrBillingUnavailable возвращается при любом сбое платёжного провайдера.
	// Наружу уходит один общий ответ "попробуйте позже", без деталей сбоя.
	ErrBillingUnavailable = errors.New("billing provider unavailable")

	// ErrPaymentRejected возвращается, когда провайдер отклонил оплату
	ErrPaymentRejected = errors.New("payment rejected")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("subscriptions service: internal error")
)
