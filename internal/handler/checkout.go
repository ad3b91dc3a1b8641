package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/xenking/spud-shack/internal/domain/cart"
	"github.com/xenking/spud-shack/internal/domain/order"
	"github.com/xenking/spud-shack/internal/domain/pricing"
	"github.com/xenking/spud-shack/internal/domain/promo"
	"github.com/xenking/spud-shack/internal/domain/user"
)

// checkoutRequest drives both the quote preview and order placement.
type checkoutRequest struct {
	Type            string `json:"type"`
	PromoCode       string `json:"promoCode"`
	Points          int    `json:"points"`
	DeliveryAddress string `json:"deliveryAddress"`
	ScheduledAt     string `json:"scheduledAt"`
}

// apiError is a 4xx resolved at this boundary.
type apiError struct {
	status  int
	message string
}

func parseOrderType(s string) (order.Type, bool) {
	switch order.Type(s) {
	case order.Delivery:
		return order.Delivery, true
	case order.Pickup:
		return order.Pickup, true
	}
	return "", false
}

// buildQuote loads the owner's cart and prices the checkout: promo
// validation, point clamping against the owner's balance, tax and fee.
func (h *Handler) buildQuote(ctx context.Context, ownerID string, req checkoutRequest, typ order.Type) (pricing.Quote, *cart.Cart, *apiError, error) {
	c, err := h.carts.Get(ctx, ownerID)
	if err != nil {
		return pricing.Quote{}, nil, nil, err
	}
	if len(c.Lines) == 0 {
		return pricing.Quote{}, nil, &apiError{http.StatusBadRequest, "cart is empty"}, nil
	}

	promoPercent := decimal.Zero
	if req.PromoCode != "" {
		percent, err := h.promos.Validate(ctx, req.PromoCode)
		if err != nil {
			if errors.Is(err, promo.ErrInvalidCode) {
				return pricing.Quote{}, nil, &apiError{http.StatusUnprocessableEntity, "invalid or expired promo code"}, nil
			}
			return pricing.Quote{}, nil, nil, err
		}
		promoPercent = percent
	}

	balance := 0
	if ownerID != user.GuestID {
		u, err := h.users.Get(ctx, ownerID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return pricing.Quote{}, nil, &apiError{http.StatusNotFound, "user not found"}, nil
			}
			return pricing.Quote{}, nil, nil, err
		}
		balance = u.SpudPoints
	}

	q := h.calc.Quote(c.Total(), promoPercent, req.Points, balance, typ)
	return q, c, nil, nil
}

// QuoteCheckout prices the owner's cart without placing an order.
func (h *Handler) QuoteCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	typ, ok := parseOrderType(req.Type)
	if !ok {
		respondError(w, http.StatusBadRequest, "type must be Delivery or Pickup")
		return
	}

	q, _, apiErr, err := h.buildQuote(r.Context(), owner(r), req, typ)
	if err != nil {
		internalError(w, r, err)
		return
	}
	if apiErr != nil {
		respondError(w, apiErr.status, apiErr.message)
		return
	}

	e := &jx.Encoder{}
	encQuote(e, q)
	respond(w, http.StatusOK, e)
}
