package cancel_reservation

import (
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
)

// Коды причин отказа в отмене. Клиент различает исходы по коду,
// а не по тексту сообщения.
const (
	reasonNotFound = "NOT_FOUND"
	reasonNotOwner = "NOT_OWNER"
	reasonTooLate  = "TOO_LATE"
)

// CancelErrorResponse ответ с причиной отказа в отмене брони
type CancelErrorResponse struct {
	Code    int    `json:"code"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// respondCancelError пишет ответ с кодом причины отказа
func respondCancelError(w http.ResponseWriter, status int, reason, message string) {
	handlers.RespondJSON(w, status, CancelErrorResponse{
		Code:    status,
		Reason:  reason,
		Message: message,
	})
}
