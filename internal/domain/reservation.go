package domain

import "time"

// Reservation бронь столика.
// Запись не редактируется после создания: изменение брони - это отмена
// и создание новой. CreatedAt/UpdatedAt выставляются сервером.
type Reservation struct {
	ID               int64
	RestaurantID     int64
	UserID           int64
	ReservedDateTime time.Time
	NumberOfPeople   int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy возвращает true, если бронь принадлежит пользователю
func (r *Reservation) IsOwnedBy(userID int64) bool {
	return r.UserID == userID
}

// CanBeCancelledAt возвращает true, если бронь ещё можно отменить в момент now.
// Правило то же, что и при создании: до времени брони должно оставаться
// не меньше ReservationLeadTime (граница включительно).
func (r *Reservation) CanBeCancelledAt(now time.Time) bool {
	return !r.ReservedDateTime.Before(now.Add(ReservationLeadTime))
}

// IsUpcoming возвращает true, если время брони ещё не наступило
func (r *Reservation) IsUpcoming(now time.Time) bool {
	return r.ReservedDateTime.After(now)
}
