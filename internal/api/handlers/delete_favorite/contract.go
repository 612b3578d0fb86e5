package delete_favorite

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

type FavoriteService interface {
	Delete(ctx context.Context, claims domain.Claims, favoriteID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
