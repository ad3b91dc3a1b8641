package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/jx"

	"github.com/xenking/spud-shack/internal/domain/reservation"
)

type reservationRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	PartySize      int    `json:"partySize"`
	SpecialRequest string `json:"specialRequest"`
}

// CreateReservation records a table booking.
func (h *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Date == "" || req.Time == "" || req.PartySize <= 0 {
		respondError(w, http.StatusBadRequest, "name, date, time and party size are required")
		return
	}

	res, err := h.reservations.Create(r.Context(), reservation.Reservation{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Date:           req.Date,
		Time:           req.Time,
		PartySize:      req.PartySize,
		SpecialRequest: req.SpecialRequest,
	})
	if err != nil {
		internalError(w, r, err)
		return
	}

	e := &jx.Encoder{}
	encReservation(e, res)
	respond(w, http.StatusCreated, e)
}

// ListReservations returns all reservations.
func (h *Handler) ListReservations(w http.ResponseWriter, r *http.Request) {
	all, err := h.reservations.List(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}

	e := &jx.Encoder{}
	e.ArrStart()
	for i := range all {
		encReservation(e, &all[i])
	}
	e.ArrEnd()
	respond(w, http.StatusOK, e)
}
