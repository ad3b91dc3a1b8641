package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/xenking/spud-shack/internal/domain/order"
)

// PlaceOrder prices the owner's cart, persists the order, and clears the
// cart. The promo code is recorded only when it produced a discount.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
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
	if typ == order.Delivery && req.DeliveryAddress == "" {
		respondError(w, http.StatusBadRequest, "delivery address required")
		return
	}

	var scheduledAt *time.Time
	if req.ScheduledAt != "" {
		t, err := time.Parse(time.RFC3339, req.ScheduledAt)
		if err != nil {
			respondError(w, http.StatusBadRequest, "scheduledAt must be RFC 3339")
			return
		}
		scheduledAt = &t
	}

	ownerID := owner(r)
	q, c, apiErr, err := h.buildQuote(r.Context(), ownerID, req, typ)
	if err != nil {
		internalError(w, r, err)
		return
	}
	if apiErr != nil {
		respondError(w, apiErr.status, apiErr.message)
		return
	}

	promoCode := ""
	if q.PromoDiscount.IsPositive() {
		promoCode = req.PromoCode
	}

	o, err := h.orders.Place(r.Context(), order.PlaceRequest{
		UserID:          ownerID,
		Items:           c.Lines,
		Subtotal:        q.Subtotal,
		PromoDiscount:   q.PromoDiscount,
		PointsDiscount:  q.PointsDiscount,
		Tax:             q.Tax,
		DeliveryFee:     q.DeliveryFee,
		Total:           q.Total,
		Type:            typ,
		DeliveryAddress: req.DeliveryAddress,
		ScheduledAt:     scheduledAt,
		PromoCode:       promoCode,
		PointsUsed:      q.PointsUsed,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyItems):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, order.ErrAddressRequired):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			internalError(w, r, err)
		}
		return
	}

	if err := h.carts.Clear(r.Context(), ownerID); err != nil {
		internalError(w, r, err)
		return
	}

	e := &jx.Encoder{}
	encOrder(e, o)
	respond(w, http.StatusCreated, e)
}

// ListOrders returns the acting user's history, newest first. Guests get an
// empty list.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.History(r.Context(), owner(r))
	if err != nil {
		internalError(w, r, err)
		return
	}
	h.respondOrders(w, orders)
}

// GetOrder returns a single order.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			respondError(w, http.StatusNotFound, "order not found")
			return
		}
		internalError(w, r, err)
		return
	}
	e := &jx.Encoder{}
	encOrder(e, o)
	respond(w, http.StatusOK, e)
}

// WatchOrder starts the auto-advance simulation for the order, replacing
// any previously watched order.
func (h *Handler) WatchOrder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	o, err := h.orders.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			respondError(w, http.StatusNotFound, "order not found")
			return
		}
		internalError(w, r, err)
		return
	}

	if !order.IsTerminal(o.Status) {
		// Detach from the request context: the watch outlives the request.
		h.tracker.Watch(context.WithoutCancel(r.Context()), id)
	}

	e := &jx.Encoder{}
	encOrder(e, o)
	respond(w, http.StatusAccepted, e)
}

// UnwatchOrder stops the simulation for the watched order.
func (h *Handler) UnwatchOrder(w http.ResponseWriter, r *http.Request) {
	if h.tracker.Watched() == r.PathValue("id") {
		h.tracker.Stop()
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondOrders(w http.ResponseWriter, orders []order.Order) {
	e := &jx.Encoder{}
	e.ArrStart()
	for i := range orders {
		encOrder(e, &orders[i])
	}
	e.ArrEnd()
	respond(w, http.StatusOK, e)
}
