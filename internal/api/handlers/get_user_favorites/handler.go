package get_user_favorites

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/service/favorites"
)

const (
	msgInvalidQueryParams = "некорректные параметры страницы"
	msgPaidPlanRequired   = "избранное доступно только на платном тарифе"
)

type Handler struct {
	service      FavoriteService
	pageDefaults handlers.PageDefaults
	logger       Logger
}

func NewHandler(service FavoriteService, pageDefaults handlers.PageDefaults, logger Logger) *Handler {
	return &Handler{
		service:      service,
		pageDefaults: pageDefaults,
		logger:       logger,
	}
}

// Handle GET /api/v1/favorites
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /favorites - No claims in context")
		handlers.RespondInternalError(w)
		return
	}

	page, err := h.pageDefaults.ParsePageRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /favorites - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQueryParams)
		return
	}

	result, err := h.service.GetUserFavorites(r.Context(), claims, page)
	if err != nil {
		switch {
		case errors.Is(err, favorites.ErrPaidPlanRequired):
			h.logger.Warn("GET /favorites - Paid plan required: user_id=%d", claims.UserID)
			handlers.RespondForbidden(w, msgPaidPlanRequired)

		default:
			h.logger.Error("GET /favorites - Failed to get favorites: user_id=%d, error=%v",
				claims.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /favorites - Fetched %d favorites for user_id=%d",
		len(result.Favorites), claims.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
