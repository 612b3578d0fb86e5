package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// Поля запроса, к которым привязываются нарушения правил
const (
	fieldNumberOfPeople   = "numberOfPeople"
	fieldReservedDateTime = "reservedDatetime"
)

// validateRequest валидирует входные данные запроса.
// Это проверки формата, не бизнес-правил: их нарушение - сразу ErrInvalidInput.
func validateRequest(req *Request) error {
	if req.Claims.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.RestaurantID <= 0 {
		return fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}

	if req.ReservedDateTime.IsZero() {
		return fmt.Errorf("%w: reservedDatetime is required", ErrInvalidInput)
	}

	return nil
}

// validateRules проверяет бизнес-правила брони и собирает ВСЕ нарушения,
// не останавливаясь на первом:
//   - количество гостей в допустимом диапазоне;
//   - компания не больше вместимости зала (проверка справочная, по полю
//     seating_capacity, без учёта занятости на это время);
//   - до времени брони не меньше двух часов, граница включительно.
func validateRules(req *Request, restaurant *domain.Restaurant, now time.Time) ValidationErrors {
	var violations ValidationErrors

	if req.NumberOfPeople < domain.MinNumberOfPeople || req.NumberOfPeople > domain.MaxNumberOfPeople {
		violations = append(violations, FieldError{
			Field: fieldNumberOfPeople,
			Message: fmt.Sprintf("количество гостей должно быть от %d до %d",
				domain.MinNumberOfPeople, domain.MaxNumberOfPeople),
		})
	} else if req.NumberOfPeople > restaurant.SeatingCapacity {
		violations = append(violations, FieldError{
			Field: fieldNumberOfPeople,
			Message: fmt.Sprintf("количество гостей превышает вместимость ресторана (%d мест)",
				restaurant.SeatingCapacity),
		})
	}

	// Ровно за два часа бронь ещё возможна: отвергаем только строго меньший запас
	if req.ReservedDateTime.Before(now.Add(domain.ReservationLeadTime)) {
		violations = append(violations, FieldError{
			Field:   fieldReservedDateTime,
			Message: "бронь возможна не позднее чем за 2 часа до выбранного времени",
		})
	}

	return violations
}
