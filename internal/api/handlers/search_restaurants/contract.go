package search_restaurants

import (
	"context"

	searchRestaurants "github.com/m04kA/SMC-RestaurantService/internal/usecase/search_restaurants"
)

type SearchRestaurantsUseCase interface {
	Execute(ctx context.Context, req *searchRestaurants.Request) (*searchRestaurants.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
