package create_reservation

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден.
	// Проверяется до бизнес-правил: бронь в несуществующий ресторан -
	// это 404, а не ошибка валидации.
	ErrRestaurantNotFound = errors.New("create_reservation: restaurant not found")

	// ErrPaidPlanRequired возвращается, когда тариф пользователя
	// не даёт доступа к бронированию
	ErrPaidPlanRequired = errors.New("create_reservation: paid plan required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// FieldError нарушение одного бизнес-правила, привязанное к полю запроса
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors список нарушений бизнес-правил.
// Правила проверяются все сразу: клиент получает полный список нарушений
// за один запрос, а не по одному за попытку.
type ValidationErrors []FieldError

// Error реализует интерфейс error
func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "create_reservation: validation failed"
	}

	msg := "create_reservation: validation failed:"
	for _, fieldErr := range v {
		msg += " [" + fieldErr.Field + "] " + fieldErr.Message + ";"
	}
	return msg
}
