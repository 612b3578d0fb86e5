package userservice

// User модель пользователя из UserService
type User struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	MembershipTier    string `json:"membership_tier"` // Тариф: free, paid, admin
	BillingCustomerID string `json:"billing_customer_id,omitempty"`
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
