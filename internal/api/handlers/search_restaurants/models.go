package search_restaurants

import (
	"fmt"
	"net/url"
	"strconv"

	searchRestaurants "github.com/m04kA/SMC-RestaurantService/internal/usecase/search_restaurants"
	"github.com/m04kA/SMC-RestaurantService/pkg/ptr"
)

// parseQuery разбирает параметры поиска из строки запроса.
// Отсутствующий параметр - это отсутствие фильтра, не значение по умолчанию.
func parseQuery(values url.Values) (*searchRestaurants.Request, error) {
	req := &searchRestaurants.Request{
		Sort: values.Get("sort"),
	}

	if keyword := values.Get("keyword"); keyword != "" {
		req.Keyword = ptr.Ptr(keyword)
	}

	if raw := values.Get("categoryId"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("categoryId: %v", err)
		}
		req.CategoryID = ptr.Ptr(categoryID)
	}

	if raw := values.Get("maxPrice"); raw != "" {
		maxPrice, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("maxPrice: %v", err)
		}
		req.MaxPrice = ptr.Ptr(maxPrice)
	}

	if raw := values.Get("minRating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("minRating: %v", err)
		}
		req.MinRating = ptr.Ptr(minRating)
	}

	if raw := values.Get("openNow"); raw != "" {
		openNow, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("openNow: %v", err)
		}
		req.OpenNow = openNow
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("page: %v", err)
		}
		req.Page = page
	}

	if raw := values.Get("pageSize"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("pageSize: %v", err)
		}
		req.PageSize = pageSize
	}

	return req, nil
}
