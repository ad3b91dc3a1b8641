// Package handler exposes the ordering service over HTTP. Request decoding
// uses encoding/json; responses are encoded by hand with jx. All errors are
// resolved here: validation maps to 4xx bodies, unexpected failures to 500.
package handler

import (
	"net/http"

	"github.com/xenking/spud-shack/internal/domain/cart"
	"github.com/xenking/spud-shack/internal/domain/catalog"
	"github.com/xenking/spud-shack/internal/domain/order"
	"github.com/xenking/spud-shack/internal/domain/pricing"
	"github.com/xenking/spud-shack/internal/domain/promo"
	"github.com/xenking/spud-shack/internal/domain/reservation"
	"github.com/xenking/spud-shack/internal/domain/user"
)

// Handler wires the domain services to HTTP routes.
type Handler struct {
	menu         catalog.Repository
	carts        *cart.Service
	calc         pricing.Calculator
	promos       *promo.Validator
	promoRepo    promo.Repository
	orders       *order.Service
	tracker      *order.Tracker
	users        *user.Service
	reservations *reservation.Service
}

// Deps holds the Handler's dependencies.
type Deps struct {
	Menu         catalog.Repository
	Carts        *cart.Service
	Calc         pricing.Calculator
	Promos       *promo.Validator
	PromoRepo    promo.Repository
	Orders       *order.Service
	Tracker      *order.Tracker
	Users        *user.Service
	Reservations *reservation.Service
}

// New constructs a Handler.
func New(d Deps) *Handler {
	return &Handler{
		menu:         d.Menu,
		carts:        d.Carts,
		calc:         d.Calc,
		promos:       d.Promos,
		promoRepo:    d.PromoRepo,
		orders:       d.Orders,
		tracker:      d.Tracker,
		users:        d.Users,
		reservations: d.Reservations,
	}
}

// Register adds every API route to the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/menu", h.ListMenu)
	mux.HandleFunc("GET /api/menu/{id}", h.GetMenuItem)
	mux.HandleFunc("GET /api/badges", h.ListBadges)

	mux.HandleFunc("GET /api/cart", h.GetCart)
	mux.HandleFunc("DELETE /api/cart", h.ClearCart)
	mux.HandleFunc("POST /api/cart/items", h.AddCartItem)
	mux.HandleFunc("PATCH /api/cart/items", h.UpdateCartItem)
	mux.HandleFunc("DELETE /api/cart/items", h.RemoveCartItem)

	mux.HandleFunc("POST /api/checkout/quote", h.QuoteCheckout)

	mux.HandleFunc("POST /api/orders", h.PlaceOrder)
	mux.HandleFunc("GET /api/orders", h.ListOrders)
	mux.HandleFunc("GET /api/orders/{id}", h.GetOrder)
	mux.HandleFunc("POST /api/orders/{id}/watch", h.WatchOrder)
	mux.HandleFunc("DELETE /api/orders/{id}/watch", h.UnwatchOrder)

	mux.HandleFunc("POST /api/auth/signup", h.SignUp)
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/guest", h.Guest)

	mux.HandleFunc("POST /api/reservations", h.CreateReservation)
	mux.HandleFunc("GET /api/reservations", h.ListReservations)

	mux.HandleFunc("PUT /api/admin/menu", h.requireAdmin(h.ReplaceMenu))
	mux.HandleFunc("PUT /api/admin/menu/special", h.requireAdmin(h.SetDailySpecial))
	mux.HandleFunc("PUT /api/admin/promos", h.requireAdmin(h.ReplacePromos))
	mux.HandleFunc("GET /api/admin/users", h.requireAdmin(h.ListUsers))
	mux.HandleFunc("GET /api/admin/orders", h.requireAdmin(h.ListAllOrders))
	mux.HandleFunc("PUT /api/admin/orders/{id}/status", h.requireAdmin(h.OverrideOrderStatus))
}

// requireAdmin enforces the fixed-email back-office contract: the caller
// identifies via the X-Admin-Email header and must match the reserved
// administrator address.
func (h *Handler) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.users.IsAdmin(r.Header.Get("X-Admin-Email")) {
			respondError(w, http.StatusForbidden, "admin access required")
			return
		}
		next(w, r)
	}
}

// owner resolves the acting customer: the X-User-ID header, the user query
// parameter, or the guest sentinel.
func owner(r *http.Request) string {
	if id := r.Header.Get("X-User-ID"); id != "" {
		return id
	}
	if id := r.URL.Query().Get("user"); id != "" {
		return id
	}
	return user.GuestID
}
