package create_reservation

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	createReservation "github.com/m04kA/SMC-RestaurantService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ReservedDatetime string `json:"reservedDatetime"` // "2025-10-15 18:00"
	NumberOfPeople   int    `json:"numberOfPeople"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID               int64  `json:"id"`
	RestaurantID     int64  `json:"restaurantId"`
	UserID           int64  `json:"userId"`
	ReservedDatetime string `json:"reservedDatetime"`
	NumberOfPeople   int    `json:"numberOfPeople"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// ValidationErrorResponse ответ со списком нарушений бизнес-правил,
// каждое привязано к полю запроса
type ValidationErrorResponse struct {
	Code    int                            `json:"code"`
	Message string                         `json:"message"`
	Errors  []createReservation.FieldError `json:"errors"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(claims domain.Claims, restaurantID int64) (*createReservation.Request, error) {
	reservedDateTime, err := time.Parse(domain.DateTimeFormat, r.ReservedDatetime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Claims:           claims,
		RestaurantID:     restaurantID,
		ReservedDateTime: reservedDateTime,
		NumberOfPeople:   r.NumberOfPeople,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:               resp.ID,
		RestaurantID:     resp.RestaurantID,
		UserID:           resp.UserID,
		ReservedDatetime: resp.ReservedDateTime.Format(domain.DateTimeFormat),
		NumberOfPeople:   resp.NumberOfPeople,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}

// respondValidationErrors пишет ответ 422 со всеми нарушениями разом
func respondValidationErrors(w http.ResponseWriter, message string, violations createReservation.ValidationErrors) {
	handlers.RespondJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
		Errors:  violations,
	})
}
