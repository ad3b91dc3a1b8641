// Package pricing derives a checkout quote from a cart subtotal, an optional
// promo discount, and loyalty point redemption. All arithmetic uses decimals
// and stays unrounded; callers round to currency precision at the boundary.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/spud-shack/internal/domain/order"
)

var (
	hundred         = decimal.NewFromInt(100)
	pointsPerDollar = decimal.NewFromInt(10)
)

// Quote is the full pricing breakdown for a checkout.
//
// Total = Subtotal - PromoDiscount - PointsDiscount + Tax + DeliveryFee,
// with tax computed on the discounted subtotal and the delivery fee applied
// only to delivery orders.
type Quote struct {
	Subtotal       decimal.Decimal
	PromoDiscount  decimal.Decimal
	PointsDiscount decimal.Decimal
	Tax            decimal.Decimal
	DeliveryFee    decimal.Decimal
	Total          decimal.Decimal

	// PointsUsed is the redeemed point count after clamping. It is always a
	// multiple of 10, at most the user's balance, and its dollar value never
	// exceeds the post-promo subtotal.
	PointsUsed int
}

// Calculator computes quotes with a fixed tax rate and delivery fee.
type Calculator struct {
	TaxRate     decimal.Decimal
	DeliveryFee decimal.Decimal
}

// NewCalculator returns a Calculator with the given tax rate (fraction, e.g.
// 0.08) and flat delivery fee.
func NewCalculator(taxRate, deliveryFee decimal.Decimal) Calculator {
	return Calculator{TaxRate: taxRate, DeliveryFee: deliveryFee}
}

// Quote prices a checkout. promoPercent is the validated promo discount
// percentage (zero when no code applies). pointsRequested is clamped to
// pointsBalance and to the largest multiple of 10 whose dollar value does
// not exceed the post-promo subtotal.
func (c Calculator) Quote(subtotal decimal.Decimal, promoPercent decimal.Decimal, pointsRequested, pointsBalance int, orderType order.Type) Quote {
	promoDiscount := subtotal.Mul(promoPercent).Div(hundred)

	points := clampPoints(pointsRequested, pointsBalance, subtotal.Sub(promoDiscount))
	pointsDiscount := decimal.NewFromInt(int64(points)).Div(pointsPerDollar)

	discounted := subtotal.Sub(promoDiscount).Sub(pointsDiscount)
	tax := discounted.Mul(c.TaxRate)

	deliveryFee := decimal.Zero
	if orderType == order.Delivery {
		deliveryFee = c.DeliveryFee
	}

	return Quote{
		Subtotal:       subtotal,
		PromoDiscount:  promoDiscount,
		PointsDiscount: pointsDiscount,
		Tax:            tax,
		DeliveryFee:    deliveryFee,
		Total:          discounted.Add(tax).Add(deliveryFee),
		PointsUsed:     points,
	}
}

// clampPoints enforces both redemption caps: the user's balance and the
// post-promo subtotal, stepping down to a multiple of 10.
func clampPoints(requested, balance int, postPromoSubtotal decimal.Decimal) int {
	if requested <= 0 {
		return 0
	}
	points := requested
	if points > balance {
		points = balance
	}
	// Largest point count whose value fits in the remaining subtotal.
	maxPoints := int(postPromoSubtotal.Mul(pointsPerDollar).IntPart())
	if maxPoints < 0 {
		maxPoints = 0
	}
	if points > maxPoints {
		points = maxPoints
	}
	return points - points%10
}
