package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownMembershipTier возвращается при неизвестном значении тарифа
var ErrUnknownMembershipTier = errors.New("domain: unknown membership tier")

// MembershipTier тариф пользователя.
// Сравнивается только через switch по перечислению, никогда по сырым строкам.
type MembershipTier int

const (
	TierFree MembershipTier = iota
	TierPaid
	TierAdmin
)

// ParseMembershipTier разбирает тариф из строкового представления UserService
func ParseMembershipTier(s string) (MembershipTier, error) {
	switch s {
	case "free":
		return TierFree, nil
	case "paid":
		return TierPaid, nil
	case "admin":
		return TierAdmin, nil
	default:
		return TierFree, fmt.Errorf("%w: %q", ErrUnknownMembershipTier, s)
	}
}

// String возвращает строковое представление тарифа
func (t MembershipTier) String() string {
	switch t {
	case TierPaid:
		return "paid"
	case TierAdmin:
		return "admin"
	default:
		return "free"
	}
}

// CanUseReservations возвращает true, если тариф открывает доступ
// к бронированию и избранному (платные функции)
func (t MembershipTier) CanUseReservations() bool {
	switch t {
	case TierPaid, TierAdmin:
		return true
	default:
		return false
	}
}

// Claims данные аутентифицированного пользователя на время запроса.
// Значение неизменяемое: смена тарифа возвращает новый Claims,
// ничего не мутируя в общем состоянии.
type Claims struct {
	UserID int64
	Tier   MembershipTier
}

// WithTier возвращает копию Claims с новым тарифом
func (c Claims) WithTier(tier MembershipTier) Claims {
	return Claims{UserID: c.UserID, Tier: tier}
}
