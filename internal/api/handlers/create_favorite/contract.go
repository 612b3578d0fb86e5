package create_favorite

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/service/favorites/models"
)

type FavoriteService interface {
	Create(ctx context.Context, claims domain.Claims, restaurantID int64) (*models.FavoriteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
