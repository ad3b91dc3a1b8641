// Package repository implements the domain repositories over a kv.Store.
// Each collection lives under one logical key; mutations follow the
// read-clone-mutate-write pattern with last-write-wins semantics.
package repository

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/xenking/spud-shack/internal/storage/kv"
)

// Logical keys of the persisted state layout.
const (
	keyMenuItems    = "menuItems"
	keyUsers        = "users"
	keyOrders       = "orders"
	keyPromoCodes   = "promoCodes"
	keyDailySpecial = "dailySpecialId"
	keyReservations = "reservations"
	cartKeyPrefix   = "cart:"
)

// load reads the collection under key into dest, treating a missing key as
// an empty collection.
func load(ctx context.Context, store kv.Store, key string, dest any) error {
	err := store.Get(ctx, key, dest)
	if err != nil && !errors.Is(err, kv.ErrKeyNotFound) {
		return errors.Wrapf(err, "load %s", key)
	}
	return nil
}
