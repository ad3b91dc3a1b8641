package cart

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/xenking/spud-shack/internal/domain/catalog"
)

// Repository persists one cart per owner. Owners are user ids or the guest
// sentinel; a missing cart loads as empty.
type Repository interface {
	Get(ctx context.Context, owner string) (*Cart, error)
	Put(ctx context.Context, owner string, c *Cart) error
}

// Service applies cart mutations through the repository using a
// read-modify-write cycle. Derived values are recomputed on every read.
type Service struct {
	carts Repository
}

// NewService creates a cart Service backed by the given repository.
func NewService(carts Repository) *Service {
	return &Service{carts: carts}
}

// Get loads the owner's cart.
func (s *Service) Get(ctx context.Context, owner string) (*Cart, error) {
	c, err := s.carts.Get(ctx, owner)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}
	return c, nil
}

// Add puts qty of the item with the given customization selection into the
// owner's cart, merging with an existing matching line.
func (s *Service) Add(ctx context.Context, owner string, item catalog.MenuItem, qty int, customizations []catalog.Customization) (*Cart, error) {
	return s.mutate(ctx, owner, func(c *Cart) {
		c.Add(item, qty, customizations)
	})
}

// Remove drops all lines matching the item and selection.
func (s *Service) Remove(ctx context.Context, owner, itemID string, customizations []catalog.Customization) (*Cart, error) {
	return s.mutate(ctx, owner, func(c *Cart) {
		c.Remove(itemID, customizations)
	})
}

// SetQuantity overwrites a line's quantity; qty <= 0 removes the line.
func (s *Service) SetQuantity(ctx context.Context, owner, itemID string, customizations []catalog.Customization, qty int) (*Cart, error) {
	return s.mutate(ctx, owner, func(c *Cart) {
		c.SetQuantity(itemID, customizations, qty)
	})
}

// Clear empties the owner's cart.
func (s *Service) Clear(ctx context.Context, owner string) error {
	_, err := s.mutate(ctx, owner, func(c *Cart) {
		c.Clear()
	})
	return err
}

func (s *Service) mutate(ctx context.Context, owner string, fn func(*Cart)) (*Cart, error) {
	c, err := s.carts.Get(ctx, owner)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}
	fn(c)
	if err := s.carts.Put(ctx, owner, c); err != nil {
		return nil, errors.Wrap(err, "store cart")
	}
	return c, nil
}
