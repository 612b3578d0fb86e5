package handlers

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// PageDefaults границы пагинации списков, приходят из конфигурации
type PageDefaults struct {
	DefaultSize int
	MaxSize     int
}

// ParsePageRequest разбирает page/pageSize из строки запроса и нормализует
// их под границы: отсутствующие параметры заменяются значениями по умолчанию
func (d PageDefaults) ParsePageRequest(values url.Values) (domain.PageRequest, error) {
	var page, pageSize int

	if raw := values.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return domain.PageRequest{}, fmt.Errorf("page: %v", err)
		}
		page = parsed
	}

	if raw := values.Get("pageSize"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return domain.PageRequest{}, fmt.Errorf("pageSize: %v", err)
		}
		pageSize = parsed
	}

	return domain.NewPageRequest(page, pageSize, d.DefaultSize, d.MaxSize), nil
}
