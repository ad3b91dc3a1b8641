package repository

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/xenking/spud-shack/internal/domain/catalog"
	"github.com/xenking/spud-shack/internal/storage/kv"
)

var _ catalog.Repository = (*CatalogRepository)(nil)

// CatalogRepository stores the menu collection and the daily special pointer.
type CatalogRepository struct {
	store kv.Store
}

// NewCatalogRepository returns a CatalogRepository over the given store.
func NewCatalogRepository(store kv.Store) *CatalogRepository {
	return &CatalogRepository{store: store}
}

// List returns all menu items.
func (r *CatalogRepository) List(ctx context.Context) ([]catalog.MenuItem, error) {
	var items []catalog.MenuItem
	if err := load(ctx, r.store, keyMenuItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns a single menu item, or catalog.ErrNotFound.
func (r *CatalogRepository) GetByID(ctx context.Context, id string) (*catalog.MenuItem, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, catalog.ErrNotFound
}

// Replace overwrites the whole menu collection.
func (r *CatalogRepository) Replace(ctx context.Context, items []catalog.MenuItem) error {
	if err := r.store.Put(ctx, keyMenuItems, items); err != nil {
		return errors.Wrap(err, "store menu")
	}
	return nil
}

// DailySpecialID returns the id of today's special, or empty when unset.
func (r *CatalogRepository) DailySpecialID(ctx context.Context) (string, error) {
	var id string
	if err := load(ctx, r.store, keyDailySpecial, &id); err != nil {
		return "", err
	}
	return id, nil
}

// SetDailySpecial points the daily special at the given item id.
func (r *CatalogRepository) SetDailySpecial(ctx context.Context, id string) error {
	if err := r.store.Put(ctx, keyDailySpecial, id); err != nil {
		return errors.Wrap(err, "store daily special")
	}
	return nil
}
