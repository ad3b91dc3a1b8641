package promo

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrInvalidCode is returned when a promo code is unknown or inactive.
var ErrInvalidCode = errors.New("invalid or expired promo code")

// Code is a percentage discount keyed by a case-insensitive code.
type Code struct {
	Code               string          `json:"code"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	Active             bool            `json:"isActive"`
}

// Repository provides promo code lookup and full-collection replacement.
// FindByCode matches case-insensitively among active codes only and returns
// ErrInvalidCode otherwise.
type Repository interface {
	List(ctx context.Context) ([]Code, error)
	FindByCode(ctx context.Context, code string) (*Code, error)
	Replace(ctx context.Context, codes []Code) error
}
