package domain

import "math"

// EarthRadiusKm радиус Земли в километрах.
// Единственная точка правды для формулы гаверсинуса: и Go-реализация ниже,
// и SQL-выражение сортировки по расстоянию строятся от этой константы.
const EarthRadiusKm = 6371

// Coordinates географические координаты в градусах
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Distance возвращает расстояние по дуге большого круга между двумя точками
// в километрах, округлённое до 2 знаков (формула гаверсинуса).
func Distance(from, to Coordinates) float64 {
	dLat := toRadians(to.Latitude - from.Latitude)
	dLng := toRadians(to.Longitude - from.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(from.Latitude))*math.Cos(toRadians(to.Latitude))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return roundTo2(EarthRadiusKm * c)
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
