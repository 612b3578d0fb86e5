package delete_favorite

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/service/favorites"
)

const (
	msgInvalidFavoriteID = "некорректный ID записи избранного"
	msgNotFound          = "запись избранного не найдена"
	msgForbidden         = "запись принадлежит другому пользователю"
	msgPaidPlanRequired  = "избранное доступно только на платном тарифе"
)

type Handler struct {
	service FavoriteService
	logger  Logger
}

func NewHandler(service FavoriteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/favorites/{favoriteId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		h.logger.Error("DELETE /favorites/{id} - No claims in context")
		handlers.RespondInternalError(w)
		return
	}

	vars := mux.Vars(r)
	favoriteID, err := strconv.ParseInt(vars["favoriteId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /favorites/{id} - Invalid favorite ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFavoriteID)
		return
	}

	err = h.service.Delete(r.Context(), claims, favoriteID)
	if err != nil {
		switch {
		case errors.Is(err, favorites.ErrFavoriteNotFound):
			h.logger.Warn("DELETE /favorites/{id} - Favorite not found: favorite_id=%d", favoriteID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, favorites.ErrAccessDenied):
			h.logger.Warn("DELETE /favorites/{id} - Access denied: favorite_id=%d, user_id=%d",
				favoriteID, claims.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, favorites.ErrPaidPlanRequired):
			h.logger.Warn("DELETE /favorites/{id} - Paid plan required: user_id=%d", claims.UserID)
			handlers.RespondForbidden(w, msgPaidPlanRequired)

		default:
			h.logger.Error("DELETE /favorites/{id} - Failed to delete favorite: favorite_id=%d, error=%v",
				favoriteID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /favorites/{id} - Favorite deleted successfully: favorite_id=%d, user_id=%d",
		favoriteID, claims.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
