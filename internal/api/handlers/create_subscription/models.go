package create_subscription

// SubscribeRequest HTTP request model
type SubscribeRequest struct {
	PaymentMethodID string `json:"paymentMethodId"`
}

// SubscriptionResponse HTTP response model: тариф пользователя после операции
type SubscriptionResponse struct {
	UserID         int64  `json:"userId"`
	MembershipTier string `json:"membershipTier"`
}
