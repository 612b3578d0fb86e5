package favorites

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	favoriteRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/favorite"
	restaurantRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/restaurant"
	"github.com/m04kA/SMC-RestaurantService/internal/service/favorites/models"
)

// Service сервис избранных ресторанов
type Service struct {
	favoriteRepo   FavoriteRepository
	restaurantRepo RestaurantRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса избранного
func NewService(
	favoriteRepo FavoriteRepository,
	restaurantRepo RestaurantRepository,
	logger Logger,
) *Service {
	return &Service{
		favoriteRepo:   favoriteRepo,
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}
}

// Create добавляет ресторан в избранное пользователя.
// Повторное добавление того же ресторана - ошибка, а не дубликат записи.
func (s *Service) Create(ctx context.Context, claims domain.Claims, restaurantID int64) (*models.FavoriteResponse, error) {
	s.logger.Info("Create: adding restaurant id=%d to favorites for user=%d", restaurantID, claims.UserID)

	if !claims.Tier.CanUseReservations() {
		s.logger.Warn("Create: user=%d has tier=%s, paid plan required", claims.UserID, claims.Tier)
		return nil, ErrPaidPlanRequired
	}

	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("Create: restaurant id=%d not found", restaurantID)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("Create: failed to fetch restaurant id=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: Create - fetch restaurant: %v", ErrInternal, err)
	}

	existing, err := s.favoriteRepo.GetByRestaurantAndUser(ctx, restaurantID, claims.UserID)
	if err != nil && !errors.Is(err, favoriteRepo.ErrFavoriteNotFound) {
		s.logger.Error("Create: failed to check existing favorite for user=%d: %v", claims.UserID, err)
		return nil, fmt.Errorf("%w: Create - check existing favorite: %v", ErrInternal, err)
	}
	if existing != nil {
		s.logger.Warn("Create: restaurant id=%d is already in favorites for user=%d", restaurantID, claims.UserID)
		return nil, ErrAlreadyFavorite
	}

	favorite, err := s.favoriteRepo.Create(ctx, &domain.Favorite{
		RestaurantID: restaurantID,
		UserID:       claims.UserID,
	})
	if err != nil {
		s.logger.Error("Create: repository error for user=%d: %v", claims.UserID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully added favorite id=%d for user=%d", favorite.ID, claims.UserID)
	return models.FromDomainFavorite(favorite), nil
}

// GetUserFavorites получает избранное пользователя постранично,
// от недавно добавленных к старым
func (s *Service) GetUserFavorites(ctx context.Context, claims domain.Claims, page domain.PageRequest) (*models.FavoriteListResponse, error) {
	s.logger.Info("GetUserFavorites: fetching favorites for user=%d, page=%d", claims.UserID, page.Page)

	if !claims.Tier.CanUseReservations() {
		s.logger.Warn("GetUserFavorites: user=%d has tier=%s, paid plan required", claims.UserID, claims.Tier)
		return nil, ErrPaidPlanRequired
	}

	favorites, total, err := s.favoriteRepo.GetByUserID(ctx, claims.UserID, page)
	if err != nil {
		s.logger.Error("GetUserFavorites: repository error for user=%d: %v", claims.UserID, err)
		return nil, fmt.Errorf("%w: GetUserFavorites - repository error: %v", ErrInternal, err)
	}

	pageInfo := domain.PageInfo{Page: page.Page, Size: page.Size, TotalElements: total}

	s.logger.Info("GetUserFavorites: successfully fetched %d favorites for user=%d", len(favorites), claims.UserID)
	return models.FromDomainFavoriteList(favorites, pageInfo), nil
}

// Delete удаляет запись избранного.
// Удалить можно только собственную запись.
func (s *Service) Delete(ctx context.Context, claims domain.Claims, favoriteID int64) error {
	s.logger.Info("Delete: removing favorite id=%d by user=%d", favoriteID, claims.UserID)

	if !claims.Tier.CanUseReservations() {
		s.logger.Warn("Delete: user=%d has tier=%s, paid plan required", claims.UserID, claims.Tier)
		return ErrPaidPlanRequired
	}

	favorite, err := s.favoriteRepo.GetByID(ctx, favoriteID)
	if err != nil {
		if errors.Is(err, favoriteRepo.ErrFavoriteNotFound) {
			s.logger.Warn("Delete: favorite id=%d not found", favoriteID)
			return ErrFavoriteNotFound
		}
		s.logger.Error("Delete: repository error for favorite id=%d: %v", favoriteID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !favorite.IsOwnedBy(claims.UserID) {
		s.logger.Warn("Delete: access denied for user=%d to favorite id=%d", claims.UserID, favoriteID)
		return ErrAccessDenied
	}

	if err := s.favoriteRepo.Delete(ctx, favoriteID); err != nil {
		if errors.Is(err, favoriteRepo.ErrFavoriteNotFound) {
			s.logger.Warn("Delete: favorite id=%d not found during deletion", favoriteID)
			return ErrFavoriteNotFound
		}
		s.logger.Error("Delete: repository error deleting favorite id=%d: %v", favoriteID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully removed favorite id=%d", favoriteID)
	return nil
}
