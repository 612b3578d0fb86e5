package get_user_favorites

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/service/favorites/models"
)

type FavoriteService interface {
	GetUserFavorites(ctx context.Context, claims domain.Claims, page domain.PageRequest) (*models.FavoriteListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
