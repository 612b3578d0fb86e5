package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownSortOrder возвращается при неизвестном значении сортировки
var ErrUnknownSortOrder = errors.New("domain: unknown sort order")

// SortOrder порядок сортировки результатов поиска
type SortOrder string

const (
	// SortNewest по дате создания, сначала новые (значение по умолчанию)
	SortNewest SortOrder = "NEWEST"
	// SortPriceAsc по минимальной цене, сначала дешёвые
	SortPriceAsc SortOrder = "PRICE_ASC"
	// SortRatingDesc по средней оценке, сначала высокие; рестораны без отзывов - в конце
	SortRatingDesc SortOrder = "RATING_DESC"
	// SortPopularityDesc по количеству броней; при равенстве - по id по возрастанию
	SortPopularityDesc SortOrder = "POPULARITY_DESC"
	// SortDistanceAsc по расстоянию от точки отсчёта; рестораны без координат исключаются
	SortDistanceAsc SortOrder = "DISTANCE_ASC"
)

// ParseSortOrder разбирает порядок сортировки из строки запроса.
// Пустая строка трактуется как сортировка по умолчанию (NEWEST).
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case "":
		return SortNewest, nil
	case SortNewest, SortPriceAsc, SortRatingDesc, SortPopularityDesc, SortDistanceAsc:
		return SortOrder(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSortOrder, s)
	}
}

// RestaurantFilter фильтр поиска ресторанов.
// Оси независимы: заполняется не больше одной (как в пользовательском UI),
// но построитель запроса корректно комбинирует и несколько сразу.
type RestaurantFilter struct {
	// Keyword подстрока для поиска по названию, адресу и названию категории.
	// Ресторан, совпавший по нескольким категориям, попадает в выдачу один раз.
	Keyword *string
	// CategoryID точное совпадение категории
	CategoryID *int64
	// MaxPrice потолок по минимальной цене ресторана (lowest_price <= MaxPrice)
	MaxPrice *int
	// MinRating нижняя граница средней оценки; рестораны без отзывов исключаются
	MinRating *float64
	// OpenNow только рестораны, открытые в момент запроса
	OpenNow bool
}

// SearchQuery полный запрос поиска: фильтр + сортировка + точка отсчёта + страница
type SearchQuery struct {
	Filter RestaurantFilter
	Sort   SortOrder
	// Reference точка отсчёта для DISTANCE_ASC; для остальных сортировок не используется
	Reference Coordinates
	Page      PageRequest
}
