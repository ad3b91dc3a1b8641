package promo

import (
	"context"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

const (
	// bloomCapacity sizes the filter for bulk-ingested code sets, not just
	// the handful of admin-managed promos.
	bloomCapacity = 1_000_000
	bloomFPR      = 0.001
)

// Validator resolves a promo code to its discount percentage. A bloom filter
// over the active codes answers most misses without touching the store; the
// store remains authoritative for hits (the filter can false-positive).
type Validator struct {
	repo Repository

	mu     sync.RWMutex
	filter *bloom.BloomFilter
}

// NewValidator creates a Validator. Call Rebuild before first use and after
// every Replace of the promo collection.
func NewValidator(repo Repository) *Validator {
	return &Validator{repo: repo}
}

// Rebuild repopulates the bloom filter from the active codes in the store.
func (v *Validator) Rebuild(ctx context.Context) error {
	codes, err := v.repo.List(ctx)
	if err != nil {
		return errors.Wrap(err, "list promo codes")
	}

	filter := bloom.NewWithEstimates(bloomCapacity, bloomFPR)
	for _, c := range codes {
		if c.Active {
			filter.AddString(strings.ToUpper(c.Code))
		}
	}

	v.mu.Lock()
	v.filter = filter
	v.mu.Unlock()
	return nil
}

// Validate returns the discount percentage for the code, or ErrInvalidCode.
// Matching is case-insensitive and covers active codes only.
func (v *Validator) Validate(ctx context.Context, code string) (decimal.Decimal, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return decimal.Zero, ErrInvalidCode
	}

	v.mu.RLock()
	filter := v.filter
	v.mu.RUnlock()

	if filter != nil && !filter.TestString(normalized) {
		return decimal.Zero, ErrInvalidCode
	}

	found, err := v.repo.FindByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, ErrInvalidCode) {
			return decimal.Zero, ErrInvalidCode
		}
		return decimal.Zero, errors.Wrap(err, "lookup promo code")
	}
	return found.DiscountPercentage, nil
}
