package cancel_subscription

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

type SubscriptionService interface {
	Unsubscribe(ctx context.Context, claims domain.Claims) (domain.Claims, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
