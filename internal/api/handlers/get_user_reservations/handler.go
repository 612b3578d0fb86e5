package get_user_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/service/reservations"
)

const (
	msgInvalidQueryParams = "некорректные параметры страницы"
	msgPaidPlanRequired   = "бронирование доступно только на платном тарифе"
)

type Handler struct {
	service      ReservationService
	pageDefaults handlers.PageDefaults
	logger       Logger
}

func NewHandler(service ReservationService, pageDefaults handlers.PageDefaults, logger Logger) *Handler {
	return &Handler{
		service:      service,
		pageDefaults: pageDefaults,
		logger:       logger,
	}
}

// Handle GET /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /reservations - No claims in context")
		handlers.RespondInternalError(w)
		return
	}

	page, err := h.pageDefaults.ParsePageRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQueryParams)
		return
	}

	result, err := h.service.GetUserReservations(r.Context(), claims, page)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrPaidPlanRequired):
			h.logger.Warn("GET /reservations - Paid plan required: user_id=%d", claims.UserID)
			handlers.RespondForbidden(w, msgPaidPlanRequired)

		default:
			h.logger.Error("GET /reservations - Failed to get reservations: user_id=%d, error=%v",
				claims.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Fetched %d reservations for user_id=%d",
		len(result.Reservations), claims.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
