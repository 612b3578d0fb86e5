package cancel_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/service/reservations"
)

const (
	msgInvalidReservationID = "некорректный ID брони"
	msgNotFound             = "бронь не найдена"
	msgNotOwner             = "бронь принадлежит другому пользователю"
	msgTooLate              = "до брони осталось меньше 2 часов, отмена невозможна"
	msgPaidPlanRequired     = "бронирование доступно только на платном тарифе"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		h.logger.Error("DELETE /reservations/{id} - No claims in context")
		handlers.RespondInternalError(w)
		return
	}

	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	err = h.service.Cancel(r.Context(), claims, reservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			respondCancelError(w, http.StatusNotFound, reasonNotFound, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("DELETE /reservations/{id} - Access denied: reservation_id=%d, user_id=%d",
				reservationID, claims.UserID)
			respondCancelError(w, http.StatusForbidden, reasonNotOwner, msgNotOwner)

		case errors.Is(err, reservations.ErrTooLateToCancel):
			h.logger.Warn("DELETE /reservations/{id} - Too late to cancel: reservation_id=%d", reservationID)
			respondCancelError(w, http.StatusConflict, reasonTooLate, msgTooLate)

		case errors.Is(err, reservations.ErrPaidPlanRequired):
			h.logger.Warn("DELETE /reservations/{id} - Paid plan required: user_id=%d", claims.UserID)
			handlers.RespondForbidden(w, msgPaidPlanRequired)

		default:
			h.logger.Error("DELETE /reservations/{id} - Failed to cancel reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{id} - Reservation cancelled successfully: reservation_id=%d, user_id=%d",
		reservationID, claims.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
