package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/xenking/spud-shack/internal/domain/cart"
	"github.com/xenking/spud-shack/internal/domain/catalog"
)

// cartItemRequest mutates one cart line. Customizations lists the names of
// the selected add-ons for the line being targeted.
type cartItemRequest struct {
	ItemID         string   `json:"itemId"`
	Quantity       int      `json:"quantity"`
	Customizations []string `json:"customizations"`
}

// selection marks the named customizations as selected on a copy of the
// item's templates, so the line snapshot carries the full option set.
func selection(item *catalog.MenuItem, names []string) []catalog.Customization {
	chosen := make(map[string]bool, len(names))
	for _, n := range names {
		chosen[n] = true
	}
	out := make([]catalog.Customization, len(item.Customizations))
	for i, c := range item.Customizations {
		c.Selected = chosen[c.Name]
		out[i] = c
	}
	return out
}

// selectionOnly builds a matching key from bare names, for removal and
// quantity updates where the item need not be re-fetched.
func selectionOnly(names []string) []catalog.Customization {
	out := make([]catalog.Customization, len(names))
	for i, n := range names {
		out[i] = catalog.Customization{Name: n, Selected: true}
	}
	return out
}

// GetCart returns the owner's cart with derived count and total.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.carts.Get(r.Context(), owner(r))
	if err != nil {
		internalError(w, r, err)
		return
	}
	h.respondCart(w, c)
}

// AddCartItem puts an item into the cart, merging lines with an identical
// customization selection.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Quantity <= 0 {
		respondError(w, http.StatusUnprocessableEntity, "quantity must be greater than 0")
		return
	}

	item, err := h.menu.GetByID(r.Context(), req.ItemID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, http.StatusUnprocessableEntity, "menu item not found")
			return
		}
		internalError(w, r, err)
		return
	}
	if !item.Available {
		respondError(w, http.StatusUnprocessableEntity, "menu item is unavailable")
		return
	}

	c, err := h.carts.Add(r.Context(), owner(r), *item, req.Quantity, selection(item, req.Customizations))
	if err != nil {
		internalError(w, r, err)
		return
	}
	h.respondCart(w, c)
}

// UpdateCartItem overwrites a line's quantity; zero or less removes it.
func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.carts.SetQuantity(r.Context(), owner(r), req.ItemID, selectionOnly(req.Customizations), req.Quantity)
	if err != nil {
		internalError(w, r, err)
		return
	}
	h.respondCart(w, c)
}

// RemoveCartItem drops all lines matching the item and selection.
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.carts.Remove(r.Context(), owner(r), req.ItemID, selectionOnly(req.Customizations))
	if err != nil {
		internalError(w, r, err)
		return
	}
	h.respondCart(w, c)
}

// ClearCart empties the owner's cart.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.carts.Clear(r.Context(), owner(r)); err != nil {
		internalError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondCart(w http.ResponseWriter, c *cart.Cart) {
	e := &jx.Encoder{}
	encCart(e, c)
	respond(w, http.StatusOK, e)
}
