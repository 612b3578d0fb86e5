package create_subscription

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/service/subscriptions"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgPaymentMethodRequired = "не указан способ оплаты"
	msgAlreadySubscribed     = "подписка уже оформлена"
	msgPaymentRejected       = "оплата отклонена"
	msgBillingUnavailable    = "платёжный сервис временно недоступен, попробуйте позже"
	msgUserNotFound          = "пользователь не найден"
)

type Handler struct {
	service SubscriptionService
	logger  Logger
}

func NewHandler(service SubscriptionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/subscription
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /subscription - No claims in context")
		handlers.RespondInternalError(w)
		return
	}

	var req SubscribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /subscription - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.PaymentMethodID == "" {
		h.logger.Warn("POST /subscription - Missing payment method: user_id=%d", claims.UserID)
		handlers.RespondBadRequest(w, msgPaymentMethodRequired)
		return
	}

	newClaims, err := h.service.Subscribe(r.Context(), claims, req.PaymentMethodID)
	if err != nil {
		switch {
		case errors.Is(err, subscriptions.ErrAlreadySubscribed):
			h.logger.Warn("POST /subscription - Already subscribed: user_id=%d", claims.UserID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadySubscribed)

		case errors.Is(err, subscriptions.ErrPaymentRejected):
			h.logger.Warn("POST /subscription - Payment rejected: user_id=%d", claims.UserID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentRejected)

		case errors.Is(err, subscriptions.ErrBillingUnavailable):
			h.logger.Error("POST /subscription - Billing unavailable: user_id=%d", claims.UserID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBillingUnavailable)

		case errors.Is(err, subscriptions.ErrUserNotFound):
			h.logger.Warn("POST /subscription - User not found: user_id=%d", claims.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("POST /subscription - Failed to subscribe: user_id=%d, error=%v", claims.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /subscription - Subscribed successfully: user_id=%d, tier=%s",
		newClaims.UserID, newClaims.Tier)
	handlers.RespondJSON(w, http.StatusCreated, SubscriptionResponse{
		UserID:         newClaims.UserID,
		MembershipTier: newClaims.Tier.String(),
	})
}
