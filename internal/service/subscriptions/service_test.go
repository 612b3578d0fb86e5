package subscriptions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/billing"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/userservice"
)

type fakeBillingClient struct {
	createCustomerErr      error
	attachErr              error
	createSubscriptionErr  error
	cancelSubscriptionErr  error
	createdCustomers       int
	attachedPaymentMethods []string
	subscribedPriceIDs     []string
	cancelledCustomerIDs   []string
}

func (f *fakeBillingClient) CreateCustomer(_ context.Context, name, email string) (*billing.Customer, error) {
	if f.createCustomerErr != nil {
		return nil, f.createCustomerErr
	}
	f.createdCustomers++
	return &billing.Customer{ID: "cus_new", Name: name, Email: email}, nil
}

func (f *fakeBillingClient) AttachPaymentMethod(_ context.Context, customerID, paymentMethodID string) error {
	if f.attachErr != nil {
		return f.attachErr
	}
	f.attachedPaymentMethods = append(f.attachedPaymentMethods, customerID+":"+paymentMethodID)
	return nil
}

func (f *fakeBillingClient) CreateSubscription(_ context.Context, customerID, priceID string) (*billing.Subscription, error) {
	if f.createSubscriptionErr != nil {
		return nil, f.createSubscriptionErr
	}
	f.subscribedPriceIDs = append(f.subscribedPriceIDs, priceID)
	return &billing.Subscription{ID: "sub_1", CustomerID: customerID}, nil
}

func (f *fakeBillingClient) CancelSubscription(_ context.Context, customerID string) error {
	if f.cancelSubscriptionErr != nil {
		return f.cancelSubscriptionErr
	}
	f.cancelledCustomerIDs = append(f.cancelledCustomerIDs, customerID)
	return nil
}

type fakeUserClient struct {
	user              *userservice.User
	getUserErr        error
	storedCustomerIDs []string
	storedTiers       []domain.MembershipTier
}

func (f *fakeUserClient) GetUser(_ context.Context, _ int64) (*userservice.User, error) {
	if f.getUserErr != nil {
		return nil, f.getUserErr
	}
	return f.user, nil
}

func (f *fakeUserClient) SetBillingCustomerID(_ context.Context, _ int64, customerID string) error {
	f.storedCustomerIDs = append(f.storedCustomerIDs, customerID)
	return nil
}

func (f *fakeUserClient) SetMembershipTier(_ context.Context, _ int64, tier domain.MembershipTier) error {
	f.storedTiers = append(f.storedTiers, tier)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const testPriceID = "price_premium_monthly"

func newTestService(billingClient *fakeBillingClient, userClient *fakeUserClient) *Service {
	return NewService(billingClient, userClient, testPriceID, noopLogger{})
}

func freeUser() *userservice.User {
	return &userservice.User{
		ID:             42,
		Name:           "Иван Иванов",
		Email:          "ivan@example.com",
		MembershipTier: "free",
	}
}

func TestService_Subscribe_FirstTime(t *testing.T) {
	billingClient := &fakeBillingClient{}
	userClient := &fakeUserClient{user: freeUser()}
	svc := newTestService(billingClient, userClient)

	claims := domain.Claims{UserID: 42, Tier: domain.TierFree}
	newClaims, err := svc.Subscribe(context.Background(), claims, "pm_card")

	require.NoError(t, err)
	assert.Equal(t, domain.TierPaid, newClaims.Tier)
	// Исходные claims не изменились
	assert.Equal(t, domain.TierFree, claims.Tier)

	// Клиент у провайдера создан и сохранён в UserService
	assert.Equal(t, 1, billingClient.createdCustomers)
	assert.Equal(t, []string{"cus_new"}, userClient.storedCustomerIDs)
	assert.Equal(t, []string{"cus_new:pm_card"}, billingClient.attachedPaymentMethods)
	assert.Equal(t, []string{testPriceID}, billingClient.subscribedPriceIDs)
	assert.Equal(t, []domain.MembershipTier{domain.TierPaid}, userClient.storedTiers)
}

func TestService_Subscribe_ReusesExistingCustomer(t *testing.T) {
	billingClient := &fakeBillingClient{}
	user := freeUser()
	user.BillingCustomerID = "cus_existing"
	userClient := &fakeUserClient{user: user}
	svc := newTestService(billingClient, userClient)

	_, err := svc.Subscribe(context.Background(), domain.Claims{UserID: 42, Tier: domain.TierFree}, "pm_card")

	require.NoError(t, err)
	assert.Zero(t, billingClient.createdCustomers)
	assert.Empty(t, userClient.storedCustomerIDs)
	assert.Equal(t, []string{"cus_existing:pm_card"}, billingClient.attachedPaymentMethods)
}

func TestService_Subscribe_AlreadySubscribed(t *testing.T) {
	svc := newTestService(&fakeBillingClient{}, &fakeUserClient{user: freeUser()})

	for _, tier := range []domain.MembershipTier{domain.TierPaid, domain.TierAdmin} {
		_, err := svc.Subscribe(context.Background(), domain.Claims{UserID: 42, Tier: tier}, "pm_card")
		assert.ErrorIs(t, err, ErrAlreadySubscribed)
	}
}

func TestService_Subscribe_PaymentRejected(t *testing.T) {
	billingClient := &fakeBillingClient{createSubscriptionErr: billing.ErrPaymentRejected}
	userClient := &fakeUserClient{user: freeUser()}
	svc := newTestService(billingClient, userClient)

	_, err := svc.Subscribe(context.Background(), domain.Claims{UserID: 42, Tier: domain.TierFree}, "pm_card")

	assert.ErrorIs(t, err, ErrPaymentRejected)
	// Тариф не менялся
	assert.Empty(t, userClient.storedTiers)
}

// Любой сбой провайдера схлопывается в одну общую ошибку
func TestService_Subscribe_BillingFailuresCollapse(t *testing.T) {
	providerDown := errors.New("connection refused")

	tests := []struct {
		name   string
		client *fakeBillingClient
	}{
		{name: "сбой создания клиента", client: &fakeBillingClient{createCustomerErr: providerDown}},
		{name: "сбой привязки оплаты", client: &fakeBillingClient{attachErr: billing.ErrUnavailable}},
		{name: "сбой создания подписки", client: &fakeBillingClient{createSubscriptionErr: providerDown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.client, &fakeUserClient{user: freeUser()})

			_, err := svc.Subscribe(context.Background(), domain.Claims{UserID: 42, Tier: domain.TierFree}, "pm_card")

			assert.ErrorIs(t, err, ErrBillingUnavailable)
		})
	}
}

func TestService_Subscribe_UserNotFound(t *testing.T) {
	svc := newTestService(&fakeBillingClient{}, &fakeUserClient{getUserErr: userservice.ErrUserNotFound})

	_, err := svc.Subscribe(context.Background(), domain.Claims{UserID: 42, Tier: domain.TierFree}, "pm_card")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_Unsubscribe(t *testing.T) {
	billingClient := &fakeBillingClient{}
	user := freeUser()
	user.MembershipTier = "paid"
	user.BillingCustomerID = "cus_existing"
	userClient := &fakeUserClient{user: user}
	svc := newTestService(billingClient, userClient)

	claims := domain.Claims{UserID: 42, Tier: domain.TierPaid}
	newClaims, err := svc.Unsubscribe(context.Background(), claims)

	require.NoError(t, err)
	assert.Equal(t, domain.TierFree, newClaims.Tier)
	assert.Equal(t, domain.TierPaid, claims.Tier)
	assert.Equal(t, []string{"cus_existing"}, billingClient.cancelledCustomerIDs)
	assert.Equal(t, []domain.MembershipTier{domain.TierFree}, userClient.storedTiers)
}

func TestService_Unsubscribe_NotSubscribed(t *testing.T) {
	svc := newTestService(&fakeBillingClient{}, &fakeUserClient{user: freeUser()})

	for _, tier := range []domain.MembershipTier{domain.TierFree, domain.TierAdmin} {
		_, err := svc.Unsubscribe(context.Background(), domain.Claims{UserID: 42, Tier: tier})
		assert.ErrorIs(t, err, ErrNotSubscribed)
	}
}

func TestService_Unsubscribe_NoBillingCustomer(t *testing.T) {
	user := freeUser()
	user.MembershipTier = "paid"
	svc := newTestService(&fakeBillingClient{}, &fakeUserClient{user: user})

	_, err := svc.Unsubscribe(context.Background(), domain.Claims{UserID: 42, Tier: domain.TierPaid})

	assert.ErrorIs(t, err, ErrNotSubscribed)
}

// Отсутствие подписки у провайдера не мешает отмене: тариф всё равно понижается
func TestService_Unsubscribe_SubscriptionGoneAtProvider(t *testing.T) {
	billingClient := &fakeBillingClient{cancelSubscriptionErr: billing.ErrSubscriptionNotFound}
	user := freeUser()
	user.MembershipTier = "paid"
	user.BillingCustomerID = "cus_existing"
	userClient := &fakeUserClient{user: user}
	svc := newTestService(billingClient, userClient)

	newClaims, err := svc.Unsubscribe(context.Background(), domain.Claims{UserID: 42, Tier: domain.TierPaid})

	require.NoError(t, err)
	assert.Equal(t, domain.TierFree, newClaims.Tier)
	assert.Equal(t, []domain.MembershipTier{domain.TierFree}, userClient.storedTiers)
}

func TestService_Unsubscribe_BillingUnavailable(t *testing.T) {
	billingClient := &fakeBillingClient{cancelSubscriptionErr: billing.ErrUnavailable}
	user := freeUser()
	user.MembershipTier = "paid"
	user.BillingCustomerID = "cus_existing"
	userClient := &fakeUserClient{user: user}
	svc := newTestService(billingClient, userClient)

	_, err := svc.Unsubscribe(context.Background(), domain.Claims{UserID: 42, Tier: domain.TierPaid})

	assert.ErrorIs(t, err, ErrBillingUnavailable)
	assert.Empty(t, userClient.storedTiers)
}
