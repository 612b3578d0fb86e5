package search_restaurants

import (
	"fmt"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// validateRequest валидирует параметры поиска
func validateRequest(req *Request) error {
	if req.Keyword != nil && *req.Keyword == "" {
		return fmt.Errorf("%w: keyword must not be empty", ErrInvalidInput)
	}

	if req.CategoryID != nil && *req.CategoryID <= 0 {
		return fmt.Errorf("%w: categoryId must be positive", ErrInvalidInput)
	}

	if req.MaxPrice != nil && *req.MaxPrice < 0 {
		return fmt.Errorf("%w: maxPrice must not be negative", ErrInvalidInput)
	}

	if req.MinRating != nil &&
		(*req.MinRating < domain.MinReviewScore || *req.MinRating > domain.MaxReviewScore) {
		return fmt.Errorf("%w: minRating must be between %d and %d",
			ErrInvalidInput, domain.MinReviewScore, domain.MaxReviewScore)
	}

	return nil
}
