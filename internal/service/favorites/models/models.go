package models

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// FavoriteResponse запись избранного
type FavoriteResponse struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurantId"`
	UserID       int64     `json:"userId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FavoriteListResponse страница избранного пользователя
type FavoriteListResponse struct {
	Favorites     []FavoriteResponse `json:"favorites"`
	Page          int                `json:"page"`
	PageSize      int                `json:"pageSize"`
	TotalElements int64              `json:"totalElements"`
	TotalPages    int64              `json:"totalPages"`
}

// FromDomainFavorite конвертирует domain модель в DTO
func FromDomainFavorite(f *domain.Favorite) *FavoriteResponse {
	if f == nil {
		return nil
	}

	return &FavoriteResponse{
		ID:           f.ID,
		RestaurantID: f.RestaurantID,
		UserID:       f.UserID,
		CreatedAt:    f.CreatedAt,
	}
}

// FromDomainFavoriteList конвертирует страницу избранного в DTO
func FromDomainFavoriteList(favorites []*domain.Favorite, pageInfo domain.PageInfo) *FavoriteListResponse {
	resp := &FavoriteListResponse{
		Favorites:     make([]FavoriteResponse, 0, len(favorites)),
		Page:          pageInfo.Page,
		PageSize:      pageInfo.Size,
		TotalElements: pageInfo.TotalElements,
		TotalPages:    pageInfo.TotalPages(),
	}

	for _, favorite := range favorites {
		if f := FromDomainFavorite(favorite); f != nil {
			resp.Favorites = append(resp.Favorites, *f)
		}
	}

	return resp
}
