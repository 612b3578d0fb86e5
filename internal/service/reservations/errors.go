package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied возвращается, когда бронь принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrTooLateToCancel возвращается, когда до времени брони осталось
	// меньше двух часов и отменить её уже нельзя
	ErrTooLateToCancel = errors.New("too late to cancel reservation")

	// ErrPaidPlanRequired возвращается, когда тариф пользователя
	// не даёт доступа к бронированию
	ErrPaidPlanRequired = errors.New("paid plan required")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations service: internal error")
)
