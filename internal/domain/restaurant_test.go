package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Понедельник, 13 октября 2025
var monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func restaurantOpen11To22() *Restaurant {
	return &Restaurant{
		ID:          1,
		Name:        "Суши у вокзала",
		OpeningTime: "11:00",
		ClosingTime: "22:00",
	}
}

func TestRestaurant_IsOpenAt(t *testing.T) {
	r := restaurantOpen11To22()

	tests := []struct {
		name     string
		at       time.Time
		holidays []int
		expected bool
	}{
		{
			name:     "в середине рабочего дня открыт",
			at:       monday.Add(15 * time.Hour),
			expected: true,
		},
		{
			name:     "ровно в открытие уже открыт",
			at:       monday.Add(11 * time.Hour),
			expected: true,
		},
		{
			name:     "ровно в закрытие уже закрыт",
			at:       monday.Add(22 * time.Hour),
			expected: false,
		},
		{
			name:     "за минуту до открытия закрыт",
			at:       monday.Add(10*time.Hour + 59*time.Minute),
			expected: false,
		},
		{
			name:     "за минуту до закрытия открыт",
			at:       monday.Add(21*time.Hour + 59*time.Minute),
			expected: true,
		},
		{
			name:     "еженедельный выходной в понедельник",
			at:       monday.Add(15 * time.Hour),
			holidays: []int{1},
			expected: false,
		},
		{
			name:     "выходной в другой день не мешает",
			at:       monday.Add(15 * time.Hour),
			holidays: []int{0, 6},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.IsOpenAt(tt.at, tt.holidays))
		})
	}
}

func TestRestaurant_IsOpenAt_SundayIndexZero(t *testing.T) {
	r := restaurantOpen11To22()

	// Воскресенье, 12 октября 2025
	sunday := time.Date(2025, 10, 12, 15, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, sunday.Weekday())

	assert.False(t, r.IsOpenAt(sunday, []int{0}))
	assert.True(t, r.IsOpenAt(sunday, []int{1}))
}

func TestRestaurant_Coordinates(t *testing.T) {
	lat, lng := 35.17, 136.88

	r := &Restaurant{Latitude: &lat, Longitude: &lng}
	require.True(t, r.HasCoordinates())
	assert.Equal(t, Coordinates{Latitude: lat, Longitude: lng}, r.Coordinates())

	noCoords := &Restaurant{Latitude: &lat}
	assert.False(t, noCoords.HasCoordinates())
}
