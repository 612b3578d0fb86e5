package domain

import "time"

// Бизнес-константы бронирования
const (
	// MinNumberOfPeople минимальное количество гостей в брони
	MinNumberOfPeople = 1
	// MaxNumberOfPeople максимальное количество гостей в брони
	MaxNumberOfPeople = 50

	// ReservationLeadTime минимальный интервал между моментом создания (или отмены)
	// брони и самим временем брони. Граница включительно: ровно за 2 часа - можно.
	ReservationLeadTime = 2 * time.Hour
)

// Константы оценок
const (
	MinReviewScore = 1
	MaxReviewScore = 5
)

// Форматы даты и времени
const (
	TimeFormat     = "15:04"      // HH:MM
	DateFormat     = "2006-01-02" // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04"
)
