package repository

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/xenking/spud-shack/internal/domain/reservation"
	"github.com/xenking/spud-shack/internal/storage/kv"
)

var _ reservation.Repository = (*ReservationRepository)(nil)

// ReservationRepository stores the reservation collection.
type ReservationRepository struct {
	store kv.Store
}

// NewReservationRepository returns a ReservationRepository over the store.
func NewReservationRepository(store kv.Store) *ReservationRepository {
	return &ReservationRepository{store: store}
}

// Create appends a new reservation.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	all, err := r.List(ctx)
	if err != nil {
		return err
	}
	all = append(all, *res)
	if err := r.store.Put(ctx, keyReservations, all); err != nil {
		return errors.Wrap(err, "store reservations")
	}
	return nil
}

// List returns all reservations.
func (r *ReservationRepository) List(ctx context.Context) ([]reservation.Reservation, error) {
	var all []reservation.Reservation
	if err := load(ctx, r.store, keyReservations, &all); err != nil {
		return nil, err
	}
	return all, nil
}
