package middleware

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetClaims(ctx context.Context, userID int64) (domain.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
