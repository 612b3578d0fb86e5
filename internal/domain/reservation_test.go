package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReservation_CanBeCancelledAt(t *testing.T) {
	now := time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		reserved time.Time
		expected bool
	}{
		{
			name:     "за три часа можно",
			reserved: now.Add(3 * time.Hour),
			expected: true,
		},
		{
			name:     "ровно за два часа ещё можно",
			reserved: now.Add(2 * time.Hour),
			expected: true,
		},
		{
			name:     "за час уже нельзя",
			reserved: now.Add(1 * time.Hour),
			expected: false,
		},
		{
			name:     "за минуту до границы нельзя",
			reserved: now.Add(2*time.Hour - time.Minute),
			expected: false,
		},
		{
			name:     "бронь в прошлом нельзя",
			reserved: now.Add(-1 * time.Hour),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Reservation{ReservedDateTime: tt.reserved}
			assert.Equal(t, tt.expected, r.CanBeCancelledAt(now))
		})
	}
}

func TestReservation_IsOwnedBy(t *testing.T) {
	r := &Reservation{UserID: 42}

	assert.True(t, r.IsOwnedBy(42))
	assert.False(t, r.IsOwnedBy(7))
}
