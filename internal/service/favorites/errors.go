package favorites

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrFavoriteNotFound возвращается, когда запись избранного не найдена
	ErrFavoriteNotFound = errors.New("favorite not found")

	// ErrAlreadyFavorite возвращается при повторном добавлении ресторана в избранное
	ErrAlreadyFavorite = errors.New("restaurant is already in favorites")

	// ErrAccessDenied возвращается, когда запись принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrPaidPlanRequired возвращается, когда тариф пользователя
	// не даёт доступа к избранному
	ErrPaidPlanRequired = errors.New("paid plan required")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("favorites service: internal error")
)
