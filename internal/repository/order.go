package repository

import (
	"context"
	"sort"

	"github.com/go-faster/errors"

	"github.com/xenking/spud-shack/internal/domain/order"
	"github.com/xenking/spud-shack/internal/storage/kv"
)

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository stores the order collection.
type OrderRepository struct {
	store kv.Store
}

// NewOrderRepository returns an OrderRepository over the given store.
func NewOrderRepository(store kv.Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// Create appends a new order.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	orders, err := r.List(ctx)
	if err != nil {
		return err
	}
	orders = append(orders, *o)
	if err := r.store.Put(ctx, keyOrders, orders); err != nil {
		return errors.Wrap(err, "store orders")
	}
	return nil
}

// GetByID returns an order by id, or order.ErrNotFound.
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*order.Order, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, order.ErrNotFound
}

// List returns all orders.
func (r *OrderRepository) List(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	if err := load(ctx, r.store, keyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByUser returns the user's orders newest first. The guest sentinel
// matches nothing: guest orders are persisted but excluded from history.
func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	if userID == order.GuestUserID {
		return nil, nil
	}
	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var mine []order.Order
	for _, o := range orders {
		if o.UserID == userID {
			mine = append(mine, o)
		}
	}
	sort.Slice(mine, func(i, j int) bool {
		return mine[i].CreatedAt.After(mine[j].CreatedAt)
	})
	return mine, nil
}

// UpdateStatus rewrites one order's status.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status order.Status) error {
	orders, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			if err := r.store.Put(ctx, keyOrders, orders); err != nil {
				return errors.Wrap(err, "store orders")
			}
			return nil
		}
	}
	return order.ErrNotFound
}
