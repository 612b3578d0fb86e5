package domain

import "time"

// Favorite избранный ресторан пользователя
type Favorite struct {
	ID           int64
	RestaurantID int64
	UserID       int64
	CreatedAt    time.Time
}

// IsOwnedBy возвращает true, если запись принадлежит пользователю
func (f *Favorite) IsOwnedBy(userID int64) bool {
	return f.UserID == userID
}
