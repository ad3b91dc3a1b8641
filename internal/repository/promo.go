package repository

import (
	"context"
	"strings"

	"github.com/go-faster/errors"

	"github.com/xenking/spud-shack/internal/domain/promo"
	"github.com/xenking/spud-shack/internal/storage/kv"
)

var _ promo.Repository = (*PromoRepository)(nil)

// PromoRepository stores the promo code collection.
type PromoRepository struct {
	store kv.Store
}

// NewPromoRepository returns a PromoRepository over the given store.
func NewPromoRepository(store kv.Store) *PromoRepository {
	return &PromoRepository{store: store}
}

// List returns all promo codes, active or not.
func (r *PromoRepository) List(ctx context.Context) ([]promo.Code, error) {
	var codes []promo.Code
	if err := load(ctx, r.store, keyPromoCodes, &codes); err != nil {
		return nil, err
	}
	return codes, nil
}

// FindByCode matches case-insensitively among active codes only.
func (r *PromoRepository) FindByCode(ctx context.Context, code string) (*promo.Code, error) {
	codes, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range codes {
		if codes[i].Active && strings.EqualFold(codes[i].Code, code) {
			return &codes[i], nil
		}
	}
	return nil, promo.ErrInvalidCode
}

// Replace overwrites the whole promo collection.
func (r *PromoRepository) Replace(ctx context.Context, codes []promo.Code) error {
	if err := r.store.Put(ctx, keyPromoCodes, codes); err != nil {
		return errors.Wrap(err, "store promo codes")
	}
	return nil
}
