package search_restaurants

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	searchRestaurants "github.com/m04kA/SMC-RestaurantService/internal/usecase/search_restaurants"
)

const (
	msgInvalidQueryParams = "некорректные параметры поиска"
)

type Handler struct {
	useCase SearchRestaurantsUseCase
	logger  Logger
}

func NewHandler(useCase SearchRestaurantsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /restaurants - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQueryParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, searchRestaurants.ErrInvalidInput):
			h.logger.Warn("GET /restaurants - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQueryParams)

		default:
			h.logger.Error("GET /restaurants - Search failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants - Found %d restaurants, total=%d", len(result.Items), result.TotalElements)
	handlers.RespondJSON(w, http.StatusOK, result)
}
