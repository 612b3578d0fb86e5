package subscriptions

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/billing"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/userservice"
)

// BillingClient интерфейс клиента платёжного провайдера
type BillingClient interface {
	CreateCustomer(ctx context.Context, name, email string) (*billing.Customer, error)
	AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error
	CreateSubscription(ctx context.Context, customerID, priceID string) (*billing.Subscription, error)
	CancelSubscription(ctx context.Context, customerID string) error
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
	SetBillingCustomerID(ctx context.Context, userID int64, customerID string) error
	SetMembershipTier(ctx context.Context, userID int64, tier domain.MembershipTier) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
