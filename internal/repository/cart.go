package repository

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/xenking/spud-shack/internal/domain/cart"
	"github.com/xenking/spud-shack/internal/storage/kv"
)

var _ cart.Repository = (*CartRepository)(nil)

// CartRepository stores one cart per owner under "cart:<owner>". Carts are
// session-scoped data; a missing key is an empty cart.
type CartRepository struct {
	store kv.Store
}

// NewCartRepository returns a CartRepository over the given store.
func NewCartRepository(store kv.Store) *CartRepository {
	return &CartRepository{store: store}
}

// Get loads the owner's cart, empty when never written.
func (r *CartRepository) Get(ctx context.Context, owner string) (*cart.Cart, error) {
	var c cart.Cart
	if err := load(ctx, r.store, cartKeyPrefix+owner, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Put stores the owner's cart; an empty cart clears the key instead.
func (r *CartRepository) Put(ctx context.Context, owner string, c *cart.Cart) error {
	key := cartKeyPrefix + owner
	if len(c.Lines) == 0 {
		if err := r.store.Delete(ctx, key); err != nil {
			return errors.Wrap(err, "clear cart")
		}
		return nil
	}
	if err := r.store.Put(ctx, key, c); err != nil {
		return errors.Wrap(err, "store cart")
	}
	return nil
}
