package create_subscription

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

type SubscriptionService interface {
	Subscribe(ctx context.Context, claims domain.Claims, paymentMethodID string) (domain.Claims, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
