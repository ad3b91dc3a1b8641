package loyalty

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/spud-shack/internal/domain/user"
)

// Service applies order-driven loyalty side effects to users.
type Service struct {
	users user.Repository
}

// NewService creates a loyalty Service over the user repository.
func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

// OrderPlaced awards points and badges for a placed order. priorOrders is
// the size of the owner's history before this order.
//
// The balance delta is floor(subtotal) - pointsUsed with no floor at zero:
// redemption is already capped at quote time, and the raw formula is kept so
// the balance stays an exact ledger of earns minus burns.
func (s *Service) OrderPlaced(ctx context.Context, userID string, subtotal decimal.Decimal, pointsUsed, priorOrders int) error {
	if userID == user.GuestID {
		return nil
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "load user")
	}

	earned := int(subtotal.Floor().IntPart())
	u.SpudPoints += earned - pointsUsed

	if priorOrders == 0 {
		s.unlock(u, BadgeFirstFry)
	}
	if pointsUsed > 0 {
		s.unlock(u, BadgeSpudSaver)
	}

	if err := s.users.Update(ctx, u); err != nil {
		return errors.Wrap(err, "store user")
	}
	return nil
}

// unlock adds the badge and any accessory it grants. Idempotent.
func (s *Service) unlock(u *user.User, badgeID string) {
	if u.HasBadge(badgeID) {
		return
	}
	u.UnlockBadge(badgeID)
	if b := BadgeByID(badgeID); b != nil && b.Unlocks != "" {
		u.UnlockAccessory(b.Unlocks)
	}
}
