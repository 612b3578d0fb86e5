package models

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID               int64     `json:"id"`
	RestaurantID     int64     `json:"restaurantId"`
	UserID           int64     `json:"userId"`
	ReservedDateTime time.Time `json:"reservedDatetime"`
	NumberOfPeople   int       `json:"numberOfPeople"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ReservationListResponse страница броней пользователя
type ReservationListResponse struct {
	Reservations  []ReservationResponse `json:"reservations"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"pageSize"`
	TotalElements int64                 `json:"totalElements"`
	TotalPages    int64                 `json:"totalPages"`
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:               r.ID,
		RestaurantID:     r.RestaurantID,
		UserID:           r.UserID,
		ReservedDateTime: r.ReservedDateTime,
		NumberOfPeople:   r.NumberOfPeople,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует страницу броней в DTO
func FromDomainReservationList(reservations []*domain.Reservation, pageInfo domain.PageInfo) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations:  make([]ReservationResponse, 0, len(reservations)),
		Page:          pageInfo.Page,
		PageSize:      pageInfo.Size,
		TotalElements: pageInfo.TotalElements,
		TotalPages:    pageInfo.TotalPages(),
	}

	for _, reservation := range reservations {
		if r := FromDomainReservation(reservation); r != nil {
			resp.Reservations = append(resp.Reservations, *r)
		}
	}

	return resp
}
