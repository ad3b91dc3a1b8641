package order

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/spud-shack/internal/domain/cart"
)

// Sentinel errors for order placement validation.
var (
	ErrEmptyItems      = errors.New("items required")
	ErrAddressRequired = errors.New("delivery address required")
)

// LoyaltyAwarder applies the point/badge side effects of a placed order to
// its owner. Implementations must skip guests.
type LoyaltyAwarder interface {
	OrderPlaced(ctx context.Context, userID string, subtotal decimal.Decimal, pointsUsed, priorOrders int) error
}

// PlaceRequest holds the input for placing an order. The pricing breakdown
// is computed by the caller; the service persists it as-is.
type PlaceRequest struct {
	UserID          string
	Items           []cart.Line
	Subtotal        decimal.Decimal
	PromoDiscount   decimal.Decimal
	PointsDiscount  decimal.Decimal
	Tax             decimal.Decimal
	DeliveryFee     decimal.Decimal
	Total           decimal.Decimal
	Type            Type
	DeliveryAddress string
	ScheduledAt     *time.Time
	PromoCode       string
	PointsUsed      int
}

// Service owns order creation and status transitions.
type Service struct {
	orders Repository
	awards LoyaltyAwarder
	now    func() time.Time
}

// NewService creates an order Service with the required dependencies.
func NewService(orders Repository, awards LoyaltyAwarder) *Service {
	return &Service{orders: orders, awards: awards, now: time.Now}
}

// Place validates the request, persists a new order in the Confirmed state,
// and applies loyalty side effects for non-guest owners. Badge checks run
// against the owner's history prior to this order.
func (s *Service) Place(ctx context.Context, req PlaceRequest) (*Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyItems
	}
	if req.Type == Delivery && req.DeliveryAddress == "" {
		return nil, ErrAddressRequired
	}

	userID := req.UserID
	if userID == "" {
		userID = GuestUserID
	}

	priorOrders := 0
	if userID != GuestUserID {
		history, err := s.orders.ListByUser(ctx, userID)
		if err != nil {
			return nil, errors.Wrap(err, "load order history")
		}
		priorOrders = len(history)
	}

	o := &Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		Items:           req.Items,
		Subtotal:        req.Subtotal.Round(2),
		PromoDiscount:   req.PromoDiscount.Round(2),
		PointsDiscount:  req.PointsDiscount.Round(2),
		Tax:             req.Tax.Round(2),
		DeliveryFee:     req.DeliveryFee.Round(2),
		Total:           req.Total.Round(2),
		Status:          StatusConfirmed,
		Type:            req.Type,
		DeliveryAddress: req.DeliveryAddress,
		CreatedAt:       s.now().UTC(),
		ScheduledAt:     req.ScheduledAt,
		PromoCode:       req.PromoCode,
		PointsUsed:      req.PointsUsed,
	}

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, errors.Wrap(err, "create order")
	}

	if userID != GuestUserID {
		if err := s.awards.OrderPlaced(ctx, userID, req.Subtotal, req.PointsUsed, priorOrders); err != nil {
			return nil, errors.Wrap(err, "apply loyalty")
		}
	}

	return o, nil
}

// Get returns an order by id.
func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	return s.orders.GetByID(ctx, id)
}

// History returns the user's orders newest first. Guests have no history.
func (s *Service) History(ctx context.Context, userID string) ([]Order, error) {
	if userID == "" || userID == GuestUserID {
		return nil, nil
	}
	return s.orders.ListByUser(ctx, userID)
}

// List returns all orders (back-office view).
func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.orders.List(ctx)
}

// Advance moves the order one forward step along its own track. Terminal
// orders are returned unchanged; the transition itself cannot fail.
func (s *Service) Advance(ctx context.Context, id string) (*Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if IsTerminal(o.Status) {
		return o, nil
	}
	next := Next(o.Status, o.Type)
	if next == o.Status {
		return o, nil
	}
	if err := s.orders.UpdateStatus(ctx, id, next); err != nil {
		return nil, errors.Wrap(err, "update status")
	}
	o.Status = next
	return o, nil
}

// SetStatus is the back-office override: it writes any status, including
// cross-track and backward ones, bypassing the forward-only rule.
func (s *Service) SetStatus(ctx context.Context, id string, status Status) (*Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, errors.Wrap(err, "update status")
	}
	o.Status = status
	return o, nil
}
