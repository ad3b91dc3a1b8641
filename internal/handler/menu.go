package handler

import (
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/xenking/spud-shack/internal/domain/catalog"
	"github.com/xenking/spud-shack/internal/domain/loyalty"
)

// ListMenu returns the whole catalog plus the daily special pointer. The
// special's marked-down price is included on its item.
func (h *Handler) ListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.menu.List(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	specialID, err := h.menu.DailySpecialID(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}

	e := &jx.Encoder{}
	e.ObjStart()
	e.FieldStart("items")
	e.ArrStart()
	for _, item := range items {
		encMenuItem(e, item, specialID)
	}
	e.ArrEnd()
	e.FieldStart("dailySpecialId")
	if specialID == "" {
		e.Null()
	} else {
		e.Str(specialID)
	}
	e.ObjEnd()
	respond(w, http.StatusOK, e)
}

// GetMenuItem returns a single menu item.
func (h *Handler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.menu.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, http.StatusNotFound, "menu item not found")
			return
		}
		internalError(w, r, err)
		return
	}
	specialID, err := h.menu.DailySpecialID(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}

	e := &jx.Encoder{}
	encMenuItem(e, *item, specialID)
	respond(w, http.StatusOK, e)
}

// ListBadges returns the static badge catalog.
func (h *Handler) ListBadges(w http.ResponseWriter, _ *http.Request) {
	e := &jx.Encoder{}
	e.ArrStart()
	for _, b := range loyalty.Badges {
		encBadge(e, b)
	}
	e.ArrEnd()
	respond(w, http.StatusOK, e)
}
