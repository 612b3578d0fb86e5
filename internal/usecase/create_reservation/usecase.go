package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	restaurantRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/restaurant"
)

// UseCase use case создания брони столика
type UseCase struct {
	reservationRepo ReservationRepository
	restaurantRepo  RestaurantRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	restaurantRepo RestaurantRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		restaurantRepo:  restaurantRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания брони.
// Порядок проверок фиксирован: тариф, существование ресторана,
// затем бизнес-правила (все нарушения собираются в один ответ).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, restaurant=%d, datetime=%s, people=%d",
		req.Claims.UserID, req.RestaurantID,
		req.ReservedDateTime.Format(domain.DateTimeFormat), req.NumberOfPeople)

	// 1. Валидация формата входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверка тарифа
	if !req.Claims.Tier.CanUseReservations() {
		uc.logger.Warn("CreateReservation: user=%d has tier=%s, paid plan required",
			req.Claims.UserID, req.Claims.Tier)
		return nil, ErrPaidPlanRequired
	}

	// 3. Получаем ресторан (несуществующий ресторан - 404 до бизнес-правил)
	restaurant, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("CreateReservation: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("CreateReservation: failed to get restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	// 4. Бизнес-правила: собираем все нарушения разом
	now := uc.timeProvider.Now()
	if violations := validateRules(req, restaurant, now); len(violations) > 0 {
		uc.logger.Warn("CreateReservation: %d rule violations for user=%d", len(violations), req.Claims.UserID)
		return nil, violations
	}

	// 5. Сохраняем бронь
	reservation := &domain.Reservation{
		RestaurantID:     req.RestaurantID,
		UserID:           req.Claims.UserID,
		ReservedDateTime: req.ReservedDateTime,
		NumberOfPeople:   req.NumberOfPeople,
	}

	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", created.ID)

	return &Response{
		ID:               created.ID,
		RestaurantID:     created.RestaurantID,
		UserID:           created.UserID,
		ReservedDateTime: created.ReservedDateTime,
		NumberOfPeople:   created.NumberOfPeople,
		CreatedAt:        created.CreatedAt,
		UpdatedAt:        created.UpdatedAt,
	}, nil
}
