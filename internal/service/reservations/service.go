package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RestaurantService/internal/service/reservations/models"
)

// Service сервис для работы с бронями.
// Создание брони живёт в отдельном usecase со своей валидацией;
// здесь - просмотр истории и отмена.
type Service struct {
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	reservationRepo ReservationRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetUserReservations получает брони пользователя постранично,
// от новых к старым по времени брони. Доступно только платному тарифу.
func (s *Service) GetUserReservations(ctx context.Context, claims domain.Claims, page domain.PageRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d, page=%d", claims.UserID, page.Page)

	if !claims.Tier.CanUseReservations() {
		s.logger.Warn("GetUserReservations: user=%d has tier=%s, paid plan required", claims.UserID, claims.Tier)
		return nil, ErrPaidPlanRequired
	}

	reservations, total, err := s.reservationRepo.GetByUserID(ctx, claims.UserID, page)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", claims.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	pageInfo := domain.PageInfo{Page: page.Page, Size: page.Size, TotalElements: total}

	s.logger.Info("GetUserReservations: successfully fetched %d reservations for user=%d", len(reservations), claims.UserID)
	return models.FromDomainReservationList(reservations, pageInfo), nil
}

// Cancel отменяет бронь пользователя.
// Исходы различаются строго в этом порядке: брони нет - ErrReservationNotFound,
// бронь чужая - ErrAccessDenied, до времени брони меньше двух часов -
// ErrTooLateToCancel. Ровно за два часа отмена ещё возможна.
func (s *Service) Cancel(ctx context.Context, claims domain.Claims, reservationID int64) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", reservationID, claims.UserID)

	if !claims.Tier.CanUseReservations() {
		s.logger.Warn("Cancel: user=%d has tier=%s, paid plan required", claims.UserID, claims.Tier)
		return ErrPaidPlanRequired
	}

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !reservation.IsOwnedBy(claims.UserID) {
		s.logger.Warn("Cancel: access denied for user=%d to reservation id=%d", claims.UserID, reservationID)
		return ErrAccessDenied
	}

	if !reservation.CanBeCancelledAt(s.timeProvider.Now()) {
		s.logger.Warn("Cancel: reservation id=%d is too close to reserved time, cannot cancel", reservationID)
		return ErrTooLateToCancel
	}

	if err := s.reservationRepo.Delete(ctx, reservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found during deletion", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error deleting reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", reservationID)
	return nil
}
