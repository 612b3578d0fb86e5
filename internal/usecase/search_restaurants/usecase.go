package search_restaurants

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// PageConfig настройки пагинации поиска
type PageConfig struct {
	DefaultSize int
	MaxSize     int
}

// UseCase use case поиска ресторанов.
// Один компонуемый запрос: фильтр × сортировка × страница. Расстояния
// для выдачи считаются в Go от той же точки отсчёта, от которой строится
// SQL-сортировка по расстоянию.
type UseCase struct {
	restaurantRepo RestaurantRepository
	timeProvider   TimeProvider
	pageConfig     PageConfig
	reference      domain.Coordinates
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	restaurantRepo RestaurantRepository,
	pageConfig PageConfig,
	reference domain.Coordinates,
	logger Logger,
) *UseCase {
	return &UseCase{
		restaurantRepo: restaurantRepo,
		timeProvider:   &RealTimeProvider{},
		pageConfig:     pageConfig,
		reference:      reference,
		logger:         logger,
	}
}

// Execute выполняет поиск ресторанов.
// Страница за пределами диапазона - пустая выдача с корректным
// totalElements, не ошибка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchRestaurants: sort=%q, page=%d, pageSize=%d", req.Sort, req.Page, req.PageSize)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SearchRestaurants: validation failed: %v", err)
		return nil, err
	}

	sort, err := domain.ParseSortOrder(req.Sort)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownSortOrder) {
			uc.logger.Warn("SearchRestaurants: unknown sort order %q", req.Sort)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: parse sort order: %v", ErrInternal, err)
	}

	page := domain.NewPageRequest(req.Page, req.PageSize, uc.pageConfig.DefaultSize, uc.pageConfig.MaxSize)

	query := domain.SearchQuery{
		Filter: domain.RestaurantFilter{
			Keyword:    req.Keyword,
			CategoryID: req.CategoryID,
			MaxPrice:   req.MaxPrice,
			MinRating:  req.MinRating,
			OpenNow:    req.OpenNow,
		},
		Sort:      sort,
		Reference: uc.reference,
		Page:      page,
	}

	restaurants, total, err := uc.restaurantRepo.Search(ctx, query, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Error("SearchRestaurants: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	pageInfo := domain.PageInfo{Page: page.Page, Size: page.Size, TotalElements: total}

	resp := &Response{
		Items:         make([]Item, 0, len(restaurants)),
		Page:          pageInfo.Page,
		PageSize:      pageInfo.Size,
		TotalElements: pageInfo.TotalElements,
		TotalPages:    pageInfo.TotalPages(),
	}

	for _, restaurant := range restaurants {
		resp.Items = append(resp.Items, uc.toItem(restaurant))
	}

	uc.logger.Info("SearchRestaurants: found %d restaurants, total=%d", len(resp.Items), total)
	return resp, nil
}

// toItem конвертирует ресторан в элемент выдачи, вычисляя расстояние
// от точки отсчёта для ресторанов с координатами
func (uc *UseCase) toItem(r *domain.Restaurant) Item {
	item := Item{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		Address:         r.Address,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		LowestPrice:     r.LowestPrice,
		HighestPrice:    r.HighestPrice,
		SeatingCapacity: r.SeatingCapacity,
		OpeningTime:     r.OpeningTime.String(),
		ClosingTime:     r.ClosingTime.String(),
		CreatedAt:       r.CreatedAt,
	}

	if r.HasCoordinates() {
		distance := domain.Distance(uc.reference, r.Coordinates())
		item.DistanceKm = &distance
	}

	return item
}
