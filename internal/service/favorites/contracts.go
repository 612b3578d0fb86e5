package favorites

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// FavoriteRepository интерфейс репозитория избранного
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *domain.Favorite) (*domain.Favorite, error)
	GetByID(ctx context.Context, id int64) (*domain.Favorite, error)
	GetByRestaurantAndUser(ctx context.Context, restaurantID, userID int64) (*domain.Favorite, error)
	GetByUserID(ctx context.Context, userID int64, page domain.PageRequest) ([]*domain.Favorite, int64, error)
	Delete(ctx context.Context, id int64) error
}

// RestaurantRepository интерфейс репозитория ресторанов
// (проверка существования ресторана перед добавлением в избранное)
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
