package order

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/spud-shack/internal/domain/cart"
)

// GuestUserID is the sentinel owner for orders placed without an account.
const GuestUserID = "guest"

// ErrNotFound is returned when a requested order does not exist.
var ErrNotFound = errors.New("order not found")

// Type selects the fulfilment track an order follows for its whole lifetime.
type Type string

const (
	Delivery Type = "Delivery"
	Pickup   Type = "Pickup"
)

// Order is an immutable snapshot of a placed checkout. Only Status changes
// after creation; orders are never deleted.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Items           []cart.Line     `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	PromoDiscount   decimal.Decimal `json:"promoDiscount"`
	PointsDiscount  decimal.Decimal `json:"pointsDiscount"`
	Tax             decimal.Decimal `json:"tax"`
	DeliveryFee     decimal.Decimal `json:"deliveryFee"`
	Total           decimal.Decimal `json:"total"`
	Status          Status          `json:"status"`
	Type            Type            `json:"type"`
	DeliveryAddress string          `json:"deliveryAddress,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	ScheduledAt     *time.Time      `json:"scheduledAt,omitempty"`
	PromoCode       string          `json:"promoCode,omitempty"`
	PointsUsed      int             `json:"pointsUsed"`
}

// Repository defines order persistence. ListByUser returns the user's orders
// newest first; the guest sentinel yields no history.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}
