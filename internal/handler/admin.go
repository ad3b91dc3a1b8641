package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/xenking/spud-shack/internal/domain/catalog"
	"github.com/xenking/spud-shack/internal/domain/order"
	"github.com/xenking/spud-shack/internal/domain/promo"
)

// ReplaceMenu overwrites the whole catalog. Callers read, clone, mutate and
// write back the full collection; last write wins.
func (h *Handler) ReplaceMenu(w http.ResponseWriter, r *http.Request) {
	var items []catalog.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.menu.Replace(r.Context(), items); err != nil {
		internalError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetDailySpecial points the daily special at an existing menu item.
func (h *Handler) SetDailySpecial(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID string `json:"itemId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := h.menu.GetByID(r.Context(), req.ItemID); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, http.StatusUnprocessableEntity, "menu item not found")
			return
		}
		internalError(w, r, err)
		return
	}
	if err := h.menu.SetDailySpecial(r.Context(), req.ItemID); err != nil {
		internalError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReplacePromos overwrites the promo collection and rebuilds the validator's
// bloom filter so the new codes take effect immediately.
func (h *Handler) ReplacePromos(w http.ResponseWriter, r *http.Request) {
	var codes []promo.Code
	if err := json.NewDecoder(r.Body).Decode(&codes); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.promoRepo.Replace(r.Context(), codes); err != nil {
		internalError(w, r, err)
		return
	}
	if err := h.promos.Rebuild(r.Context()); err != nil {
		internalError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListUsers returns every account (back-office view).
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}

	e := &jx.Encoder{}
	e.ArrStart()
	for i := range users {
		encUser(e, &users[i])
	}
	e.ArrEnd()
	respond(w, http.StatusOK, e)
}

// ListAllOrders returns every order across all users.
func (h *Handler) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	h.respondOrders(w, orders)
}

var validStatuses = map[order.Status]bool{
	order.StatusConfirmed:      true,
	order.StatusPreparing:      true,
	order.StatusOutForDelivery: true,
	order.StatusDelivered:      true,
	order.StatusReadyForPickup: true,
	order.StatusPickedUp:       true,
}

// OverrideOrderStatus is the privileged escape hatch: it writes any status,
// unconstrained by the forward-only customer path.
func (h *Handler) OverrideOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	status := order.Status(req.Status)
	if !validStatuses[status] {
		respondError(w, http.StatusBadRequest, "unknown order status")
		return
	}

	o, err := h.orders.SetStatus(r.Context(), r.PathValue("id"), status)
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
