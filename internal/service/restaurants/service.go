package restaurants

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	restaurantRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/restaurant"
	"github.com/m04kA/SMC-RestaurantService/internal/service/restaurants/models"
)

// Service сервис карточки ресторана.
// Собирает производные агрегаты (средняя оценка, количество броней,
// признак "открыт сейчас", расстояние) поверх данных каталога.
type Service struct {
	restaurantRepo RestaurantRepository
	timeProvider   TimeProvider
	reference      domain.Coordinates
	logger         Logger
}

// NewService создает новый экземпляр сервиса ресторанов.
// reference - точка отсчёта для вычисления расстояния.
func NewService(
	restaurantRepo RestaurantRepository,
	reference domain.Coordinates,
	logger Logger,
) *Service {
	return &Service{
		restaurantRepo: restaurantRepo,
		timeProvider:   &RealTimeProvider{},
		reference:      reference,
		logger:         logger,
	}
}

// GetByID получает карточку ресторана с агрегатами.
// Агрегаты считаются по актуальным данным на каждый запрос, без кеша.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RestaurantResponse, error) {
	s.logger.Info("GetByID: fetching restaurant id=%d", id)

	restaurant, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("GetByID: restaurant id=%d not found", id)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("GetByID: repository error for restaurant id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainRestaurant(restaurant)

	categories, err := s.restaurantRepo.Categories(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to fetch categories for restaurant id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - fetch categories: %v", ErrInternal, err)
	}
	resp.Categories = models.FromDomainCategories(categories)

	dayIndexes, err := s.restaurantRepo.DayIndexes(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to fetch holidays for restaurant id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - fetch holidays: %v", ErrInternal, err)
	}
	resp.HolidayDayIndexes = dayIndexes

	avgScore, err := s.restaurantRepo.AverageScore(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to fetch average score for restaurant id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - fetch average score: %v", ErrInternal, err)
	}
	resp.AverageScore = avgScore

	reservationCount, err := s.restaurantRepo.ReservationCount(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to fetch reservation count for restaurant id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - fetch reservation count: %v", ErrInternal, err)
	}
	resp.ReservationCount = reservationCount

	resp.IsOpenNow = restaurant.IsOpenAt(s.timeProvider.Now(), dayIndexes)

	if restaurant.HasCoordinates() {
		distance := domain.Distance(s.reference, restaurant.Coordinates())
		resp.DistanceKm = &distance
	}

	s.logger.Info("GetByID: successfully fetched restaurant id=%d", id)
	return resp, nil
}
