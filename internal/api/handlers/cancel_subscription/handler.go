package cancel_subscription

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/service/subscriptions"
)

const (
	msgNotSubscribed      = "активная подписка не найдена"
	msgBillingUnavailable = "платёжный сервис временно недоступен, попробуйте позже"
	msgUserNotFound       = "пользователь не найден"
)

// UnsubscribeResponse HTTP response model: тариф пользователя после отмены
type UnsubscribeResponse struct {
	UserID         int64  `json:"userId"`
	MembershipTier string `json:"membershipTier"`
}

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

// Handle DELETE /api/v1/subscription
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		h.logger.Error("DELETE /subscription - No claims in context")
		handlers.RespondInternalError(w)
		return
	}

	newClaims, err := h.service.Unsubscribe(r.Context(), claims)
	if err != nil {
		switch {
		case errors.Is(err, subscriptions.ErrNotSubscribed):
			h.logger.Warn("DELETE /subscription - Not subscribed: user_id=%d", claims.UserID)
			handlers.RespondError(w, http.StatusConflict, msgNotSubscribed)

		case errors.Is(err, subscriptions.ErrBillingUnavailable):
			h.logger.Error("DELETE /subscription - Billing unavailable: user_id=%d", claims.UserID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBillingUnavailable)

		case errors.Is(err, subscriptions.ErrUserNotFound):
			h.logger.Warn("DELETE /subscription - User not found: user_id=%d", claims.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("DELETE /subscription - Failed to unsubscribe: user_id=%d, error=%v", claims.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /subscription - Unsubscribed successfully: user_id=%d, tier=%s",
		newClaims.UserID, newClaims.Tier)
	handlers.RespondJSON(w, http.StatusOK, UnsubscribeResponse{
		UserID:         newClaims.UserID,
		MembershipTier: newClaims.Tier.String(),
	})
}
