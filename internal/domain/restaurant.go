package domain

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// Restaurant ресторан каталога.
// Координаты опциональны: рестораны без координат исключаются из сортировки
// по расстоянию, это не ошибка.
type Restaurant struct {
	ID              int64
	Name            string
	Description     string
	Address         string
	Latitude        *float64
	Longitude       *float64
	LowestPrice     int
	HighestPrice    int
	SeatingCapacity int
	OpeningTime     types.TimeString
	ClosingTime     types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCoordinates возвращает true, если у ресторана заданы обе координаты
func (r *Restaurant) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// Coordinates возвращает координаты ресторана.
// Перед вызовом нужно проверить HasCoordinates.
func (r *Restaurant) Coordinates() Coordinates {
	return Coordinates{Latitude: *r.Latitude, Longitude: *r.Longitude}
}

// IsOpenAt возвращает true, если ресторан открыт в момент at с учётом
// расписания и еженедельных выходных (holidayDayIndexes, воскресенье = 0).
//
// Интервал полуоткрытый: ровно во время открытия - открыт,
// ровно во время закрытия - уже закрыт.
func (r *Restaurant) IsOpenAt(at time.Time, holidayDayIndexes []int) bool {
	dayIndex := int(at.Weekday())
	for _, holiday := range holidayDayIndexes {
		if holiday == dayIndex {
			return false
		}
	}

	current := types.NewTimeString(at)
	return !current.IsBefore(r.OpeningTime) && current.IsBefore(r.ClosingTime)
}

// Category категория кухни (справочник)
type Category struct {
	ID   int64
	Name string
}

// RegularHoliday еженедельный выходной день (справочник).
// DayIndex: 0 = воскресенье ... 6 = суббота.
type RegularHoliday struct {
	ID       int64
	DayIndex int
}
