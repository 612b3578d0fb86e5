package create_favorite

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
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgRestaurantNotFound  = "ресторан не найден"
	msgAlreadyFavorite     = "ресторан уже в избранном"
	msgPaidPlanRequired    = "избранное доступно только на платном тарифе"
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

// Handle POST /api/v1/restaurants/{restaurantId}/favorites
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /restaurants/{id}/favorites - No claims in context")
		handlers.RespondInternalError(w)
		return
	}

	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/favorites - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	result, err := h.service.Create(r.Context(), claims, restaurantID)
	if err != nil {
		switch {
		case errors.Is(err, favorites.ErrRestaurantNotFound):
			h.logger.Warn("POST /restaurants/{id}/favorites - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, favorites.ErrAlreadyFavorite):
			h.logger.Warn("POST /restaurants/{id}/favorites - Already favorite: restaurant_id=%d, user_id=%d",
				restaurantID, claims.UserID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyFavorite)

		case errors.Is(err, favorites.ErrPaidPlanRequired):
			h.logger.Warn("POST /restaurants/{id}/favorites - Paid plan required: user_id=%d", claims.UserID)
			handlers.RespondForbidden(w, msgPaidPlanRequired)

		default:
			h.logger.Error("POST /restaurants/{id}/favorites - Failed to create favorite: restaurant_id=%d, user_id=%d, error=%v",
				restaurantID, claims.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /restaurants/{id}/favorites - Favorite created successfully: favorite_id=%d, user_id=%d",
		result.ID, claims.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
