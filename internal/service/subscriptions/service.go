package subscriptions

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/billing"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/userservice"
)

// Service сервис подписки на платный тариф.
// Вся платёжная механика делегируется провайдеру; здесь - только граница:
// завести клиента, привязать оплату, создать или отменить подписку
// и зафиксировать новый тариф в UserService.
//
// Успешная операция возвращает НОВЫЙ Claims с изменённым тарифом,
// ничего не мутируя в состоянии текущего запроса.
type Service struct {
	billingClient BillingClient
	userClient    UserServiceClient
	priceID       string
	logger        Logger
}

// NewService создает новый экземпляр сервиса подписок.
// priceID - тарифный план подписки у платёжного провайдера.
func NewService(
	billingClient BillingClient,
	userClient UserServiceClient,
	priceID string,
	logger Logger,
) *Service {
	return &Service{
		billingClient: billingClient,
		userClient:    userClient,
		priceID:       priceID,
		logger:        logger,
	}
}

// Subscribe оформляет платную подписку пользователя.
// Клиент у провайдера создаётся лениво при первой подписке,
// его идентификатор сохраняется в UserService для повторных оформлений.
func (s *Service) Subscribe(ctx context.Context, claims domain.Claims, paymentMethodID string) (domain.Claims, error) {
	s.logger.Info("Subscribe: subscribing user=%d", claims.UserID)

	if claims.Tier.CanUseReservations() {
		s.logger.Warn("Subscribe: user=%d already has tier=%s", claims.UserID, claims.Tier)
		return claims, ErrAlreadySubscribed
	}

	user, err := s.userClient.GetUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			s.logger.Warn("Subscribe: user=%d not found", claims.UserID)
			return claims, ErrUserNotFound
		}
		s.logger.Error("Subscribe: failed to fetch user=%d: %v", claims.UserID, err)
		return claims, fmt.Errorf("%w: Subscribe - fetch user: %v", ErrInternal, err)
	}

	customerID := user.BillingCustomerID
	if customerID == "" {
		customer, err := s.billingClient.CreateCustomer(ctx, user.Name, user.Email)
		if err != nil {
			return claims, s.mapBillingError("Subscribe: create customer", claims.UserID, err)
		}
		customerID = customer.ID

		if err := s.userClient.SetBillingCustomerID(ctx, claims.UserID, customerID); err != nil {
			s.logger.Error("Subscribe: failed to store billing customer for user=%d: %v", claims.UserID, err)
			return claims, fmt.Errorf("%w: Subscribe - store billing customer: %v", ErrInternal, err)
		}
	}

	if err := s.billingClient.AttachPaymentMethod(ctx, customerID, paymentMethodID); err != nil {
		return claims, s.mapBillingError("Subscribe: attach payment method", claims.UserID, err)
	}

	if _, err := s.billingClient.CreateSubscription(ctx, customerID, s.priceID); err != nil {
		return claims, s.mapBillingError("Subscribe: create subscription", claims.UserID, err)
	}

	if err := s.userClient.SetMembershipTier(ctx, claims.UserID, domain.TierPaid); err != nil {
		s.logger.Error("Subscribe: failed to update tier for user=%d: %v", claims.UserID, err)
		return claims, fmt.Errorf("%w: Subscribe - update tier: %v", ErrInternal, err)
	}

	s.logger.Info("Subscribe: successfully subscribed user=%d", claims.UserID)
	return claims.WithTier(domain.TierPaid), nil
}

// Unsubscribe отменяет платную подписку пользователя.
// Admin подписки не имеет, отменять ему нечего.
func (s *Service) Unsubscribe(ctx context.Context, claims domain.Claims) (domain.Claims, error) {
	s.logger.Info("Unsubscribe: unsubscribing user=%d", claims.UserID)

	if claims.Tier != domain.TierPaid {
		s.logger.Warn("Unsubscribe: user=%d has tier=%s, nothing to cancel", claims.UserID, claims.Tier)
		return claims, ErrNotSubscribed
	}

	user, err := s.userClient.GetUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			s.logger.Warn("Unsubscribe: user=%d not found", claims.UserID)
			return claims, ErrUserNotFound
		}
		s.logger.Error("Unsubscribe: failed to fetch user=%d: %v", claims.UserID, err)
		return claims, fmt.Errorf("%w: Unsubscribe - fetch user: %v", ErrInternal, err)
	}

	if user.BillingCustomerID == "" {
		s.logger.Warn("Unsubscribe: user=%d has no billing customer", claims.UserID)
		return claims, ErrNotSubscribed
	}

	if err := s.billingClient.CancelSubscription(ctx, user.BillingCustomerID); err != nil {
		// Подписки у провайдера уже нет - считаем отмену состоявшейся
		// и продолжаем к смене тарифа
		if !errors.Is(err, billing.ErrSubscriptionNotFound) {
			return claims, s.mapBillingError("Unsubscribe: cancel subscription", claims.UserID, err)
		}
		s.logger.Warn("Unsubscribe: no active subscription at provider for user=%d", claims.UserID)
	}

	if err := s.userClient.SetMembershipTier(ctx, claims.UserID, domain.TierFree); err != nil {
		s.logger.Error("Unsubscribe: failed to update tier for user=%d: %v", claims.UserID, err)
		return claims, fmt.Errorf("%w: Unsubscribe - update tier: %v", ErrInternal, err)
	}

	s.logger.Info("Unsubscribe: successfully unsubscribed user=%d", claims.UserID)
	return claims.WithTier(domain.TierFree), nil
}

// mapBillingError переводит ошибку клиента провайдера в ошибку сервиса.
// Любой инфраструктурный сбой схлопывается в ErrBillingUnavailable.
func (s *Service) mapBillingError(operation string, userID int64, err error) error {
	if errors.Is(err, billing.ErrPaymentRejected) {
		s.logger.Warn("%s: payment rejected for user=%d", operation, userID)
		return ErrPaymentRejected
	}

	s.logger.Error("%s: billing provider error for user=%d: %v", operation, userID, err)
	return ErrBillingUnavailable
}
