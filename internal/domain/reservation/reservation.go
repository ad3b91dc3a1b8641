// Package reservation records table reservations. Reservations sit outside
// the cart/order path entirely.
package reservation

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

// Reservation is a table booking request.
type Reservation struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	PartySize      int       `json:"partySize"`
	SpecialRequest string    `json:"specialRequest,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Repository persists reservations.
type Repository interface {
	Create(ctx context.Context, r *Reservation) error
	List(ctx context.Context) ([]Reservation, error)
}

// Service creates and lists reservations.
type Service struct {
	reservations Repository
	now          func() time.Time
}

// NewService creates a reservation Service.
func NewService(reservations Repository) *Service {
	return &Service{reservations: reservations, now: time.Now}
}

// Create assigns an id and timestamp and persists the reservation.
func (s *Service) Create(ctx context.Context, r Reservation) (*Reservation, error) {
	r.ID = uuid.New().String()
	r.CreatedAt = s.now().UTC()
	if err := s.reservations.Create(ctx, &r); err != nil {
		return nil, errors.Wrap(err, "create reservation")
	}
	return &r, nil
}

// List returns all reservations.
func (s *Service) List(ctx context.Context) ([]Reservation, error) {
	return s.reservations.List(ctx)
}
