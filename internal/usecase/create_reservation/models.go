package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// Request модель запроса на создание брони
type Request struct {
	Claims           domain.Claims // Аутентифицированный пользователь и его тариф
	RestaurantID     int64         // ID ресторана
	ReservedDateTime time.Time     // Дата и время брони
	NumberOfPeople   int           // Количество гостей
}

// Response модель ответа с созданной бронью
type Response struct {
	ID               int64     `json:"id"`
	RestaurantID     int64     `json:"restaurantId"`
	UserID           int64     `json:"userId"`
	ReservedDateTime time.Time `json:"reservedDatetime"`
	NumberOfPeople   int       `json:"numberOfPeople"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
