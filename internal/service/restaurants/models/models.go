package models

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// CategoryResponse категория кухни
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RestaurantResponse карточка ресторана с производными агрегатами.
// AverageScore равен null, пока у ресторана нет ни одного отзыва.
// DistanceKm равен null, если у ресторана не заданы координаты.
type RestaurantResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Address         string   `json:"address"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	LowestPrice     int      `json:"lowestPrice"`
	HighestPrice    int      `json:"highestPrice"`
	SeatingCapacity int      `json:"seatingCapacity"`
	OpeningTime     string   `json:"openingTime"` // "10:00"
	ClosingTime     string   `json:"closingTime"` // "22:00"

	Categories        []CategoryResponse `json:"categories"`
	HolidayDayIndexes []int              `json:"holidayDayIndexes"` // 0 = воскресенье

	AverageScore     *float64 `json:"averageScore"`
	ReservationCount int64    `json:"reservationCount"`
	IsOpenNow        bool     `json:"isOpenNow"`
	DistanceKm       *float64 `json:"distanceKm"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainRestaurant конвертирует domain модель в DTO без агрегатов.
// Агрегаты (оценка, брони, выходные, категории) заполняет сервис.
func FromDomainRestaurant(r *domain.Restaurant) *RestaurantResponse {
	if r == nil {
		return nil
	}

	return &RestaurantResponse{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		Address:         r.Address,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		LowestPrice:     r.LowestPrice,
		HighestPrice:    r.HighestPrice,
		SeatingCapacity: r.SeatingCapacity,
		OpeningTime:     r.OpeningTime.String(),
		ClosingTime:     r.ClosingTime.String(),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// FromDomainCategories конвертирует список категорий в DTO
func FromDomainCategories(categories []*domain.Category) []CategoryResponse {
	resp := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		resp = append(resp, CategoryResponse{ID: category.ID, Name: category.Name})
	}
	return resp
}
