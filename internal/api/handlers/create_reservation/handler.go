package create_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-RestaurantService/internal/usecase/create_reservation"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateTime     = "некорректный формат даты и времени, ожидается YYYY-MM-DD HH:MM"
	msgRestaurantNotFound  = "ресторан не найден"
	msgPaidPlanRequired    = "бронирование доступно только на платном тарифе"
	msgRulesViolated       = "бронь не проходит по правилам"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/restaurants/{restaurantId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /restaurants/{id}/reservations - No claims in context")
		handlers.RespondInternalError(w)
		return
	}

	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/reservations - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurants/{id}/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(claims, restaurantID)
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/reservations - Failed to parse datetime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var violations createReservation.ValidationErrors

		switch {
		case errors.As(err, &violations):
			h.logger.Warn("POST /restaurants/{id}/reservations - Rules violated: user_id=%d, restaurant_id=%d, violations=%d",
				claims.UserID, restaurantID, len(violations))
			respondValidationErrors(w, msgRulesViolated, violations)

		case errors.Is(err, createReservation.ErrRestaurantNotFound):
			h.logger.Warn("POST /restaurants/{id}/reservations - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, createReservation.ErrPaidPlanRequired):
			h.logger.Warn("POST /restaurants/{id}/reservations - Paid plan required: user_id=%d", claims.UserID)
			handlers.RespondForbidden(w, msgPaidPlanRequired)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /restaurants/{id}/reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /restaurants/{id}/reservations - Failed to create reservation: user_id=%d, restaurant_id=%d, error=%v",
				claims.UserID, restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /restaurants/{id}/reservations - Reservation created successfully: reservation_id=%d, user_id=%d, restaurant_id=%d",
		result.ID, claims.UserID, restaurantID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
