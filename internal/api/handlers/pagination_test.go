package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

func TestPageDefaults_ParsePageRequest(t *testing.T) {
	defaults := PageDefaults{DefaultSize: 15, MaxSize: 100}

	tests := []struct {
		name     string
		query    string
		expected domain.PageRequest
		wantErr  bool
	}{
		{
			name:     "оба параметра заданы",
			query:    "page=2&pageSize=20",
			expected: domain.PageRequest{Page: 2, Size: 20},
		},
		{
			name:     "параметры не заданы",
			query:    "",
			expected: domain.PageRequest{Page: 0, Size: 15},
		},
		{
			name:     "размер сверх максимума обрезается",
			query:    "pageSize=500",
			expected: domain.PageRequest{Page: 0, Size: 100},
		},
		{
			name:     "отрицательная страница нормализуется",
			query:    "page=-1",
			expected: domain.PageRequest{Page: 0, Size: 15},
		},
		{
			name:    "нечисловая страница",
			query:   "page=abc",
			wantErr: true,
		},
		{
			name:    "нечисловой размер",
			query:   "pageSize=big",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			page, err := defaults.ParsePageRequest(values)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, page)
		})
	}
}
