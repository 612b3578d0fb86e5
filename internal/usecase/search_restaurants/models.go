package search_restaurants

import "time"

// Request параметры поиска из строки запроса.
// Оси фильтра независимы и комбинируются; пустой запрос - вся выдача
// с сортировкой по умолчанию.
type Request struct {
	Keyword    *string  // Подстрока: название, адрес, название категории
	CategoryID *int64   // Точное совпадение категории
	MaxPrice   *int     // Потолок по минимальной цене ресторана
	MinRating  *float64 // Нижняя граница средней оценки
	OpenNow    bool     // Только открытые в момент запроса
	Sort       string   // NEWEST | PRICE_ASC | RATING_DESC | POPULARITY_DESC | DISTANCE_ASC
	Page       int      // Номер страницы, с нуля
	PageSize   int      // Размер страницы; 0 - размер по умолчанию
}

// Item ресторан в поисковой выдаче.
// DistanceKm заполняется только у ресторанов с координатами.
type Item struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Address         string    `json:"address"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	LowestPrice     int       `json:"lowestPrice"`
	HighestPrice    int       `json:"highestPrice"`
	SeatingCapacity int       `json:"seatingCapacity"`
	OpeningTime     string    `json:"openingTime"`
	ClosingTime     string    `json:"closingTime"`
	DistanceKm      *float64  `json:"distanceKm,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Response страница поисковой выдачи
type Response struct {
	Items         []Item `json:"items"`
	Page          int    `json:"page"`
	PageSize      int    `json:"pageSize"`
	TotalElements int64  `json:"totalElements"`
	TotalPages    int64  `json:"totalPages"`
}
