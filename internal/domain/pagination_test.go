package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageRequest(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		size     int
		expected PageRequest
	}{
		{
			name:     "обычные значения проходят как есть",
			page:     2,
			size:     20,
			expected: PageRequest{Page: 2, Size: 20},
		},
		{
			name:     "отрицательная страница становится нулевой",
			page:     -1,
			size:     20,
			expected: PageRequest{Page: 0, Size: 20},
		},
		{
			name:     "нулевой размер заменяется дефолтным",
			page:     0,
			size:     0,
			expected: PageRequest{Page: 0, Size: 15},
		},
		{
			name:     "размер сверх максимума обрезается",
			page:     0,
			size:     500,
			expected: PageRequest{Page: 0, Size: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewPageRequest(tt.page, tt.size, 15, 100))
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	p := PageRequest{Page: 3, Size: 15}

	assert.Equal(t, 45, p.Offset())
	assert.Equal(t, 15, p.Limit())
}

func TestPageInfo_TotalPages(t *testing.T) {
	tests := []struct {
		name     string
		info     PageInfo
		expected int64
	}{
		{name: "ровное деление", info: PageInfo{Size: 10, TotalElements: 30}, expected: 3},
		{name: "неполная последняя страница", info: PageInfo{Size: 10, TotalElements: 31}, expected: 4},
		{name: "пустая выдача", info: PageInfo{Size: 10, TotalElements: 0}, expected: 0},
		{name: "нулевой размер", info: PageInfo{Size: 0, TotalElements: 10}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.info.TotalPages())
		})
	}
}
