package handler

import (
	"time"

	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/xenking/spud-shack/internal/domain/cart"
	"github.com/xenking/spud-shack/internal/domain/catalog"
	"github.com/xenking/spud-shack/internal/domain/loyalty"
	"github.com/xenking/spud-shack/internal/domain/order"
	"github.com/xenking/spud-shack/internal/domain/pricing"
	"github.com/xenking/spud-shack/internal/domain/reservation"
	"github.com/xenking/spud-shack/internal/domain/user"
)

// Hand-written jx encoders for the response path. Money is rounded to
// currency precision here and nowhere earlier.

func encMoney(e *jx.Encoder, d decimal.Decimal) {
	e.Float64(d.Round(2).InexactFloat64())
}

func encMenuItem(e *jx.Encoder, item catalog.MenuItem, specialID string) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(item.ID)
	e.FieldStart("name")
	e.Str(item.Name)
	e.FieldStart("description")
	e.Str(item.Description)
	e.FieldStart("price")
	encMoney(e, item.Price)
	if item.ID == specialID {
		e.FieldStart("specialPrice")
		encMoney(e, catalog.SpecialPrice(item))
	}
	e.FieldStart("category")
	e.Str(item.Category)
	e.FieldStart("imageUrl")
	e.Str(item.ImageURL)
	e.FieldStart("rating")
	e.Float64(item.Rating)
	e.FieldStart("dietaryTags")
	e.ArrStart()
	for _, t := range item.DietaryTags {
		e.Str(string(t))
	}
	e.ArrEnd()
	e.FieldStart("isSpicy")
	e.Bool(item.Spicy)
	e.FieldStart("isAvailable")
	e.Bool(item.Available)
	e.FieldStart("customizations")
	e.ArrStart()
	for _, c := range item.Customizations {
		encCustomization(e, c)
	}
	e.ArrEnd()
	e.FieldStart("reviews")
	e.ArrStart()
	for _, rv := range item.Reviews {
		e.ObjStart()
		e.FieldStart("author")
		e.Str(rv.Author)
		e.FieldStart("rating")
		e.Int(rv.Rating)
		e.FieldStart("comment")
		e.Str(rv.Comment)
		e.ObjEnd()
	}
	e.ArrEnd()
	e.FieldStart("nutrition")
	e.ObjStart()
	e.FieldStart("calories")
	e.Int(item.Nutrition.Calories)
	e.FieldStart("protein")
	e.Int(item.Nutrition.Protein)
	e.FieldStart("carbs")
	e.Int(item.Nutrition.Carbs)
	e.FieldStart("fat")
	e.Int(item.Nutrition.Fat)
	e.ObjEnd()
	e.ObjEnd()
}

func encCustomization(e *jx.Encoder, c catalog.Customization) {
	e.ObjStart()
	e.FieldStart("name")
	e.Str(c.Name)
	e.FieldStart("price")
	encMoney(e, c.Price)
	e.FieldStart("selected")
	e.Bool(c.Selected)
	e.ObjEnd()
}

func encCartLine(e *jx.Encoder, l cart.Line) {
	e.ObjStart()
	e.FieldStart("itemId")
	e.Str(l.Item.ID)
	e.FieldStart("name")
	e.Str(l.Item.Name)
	e.FieldStart("quantity")
	e.Int(l.Quantity)
	e.FieldStart("unitPrice")
	encMoney(e, l.UnitPrice())
	e.FieldStart("customizations")
	e.ArrStart()
	for _, c := range l.Customizations {
		encCustomization(e, c)
	}
	e.ArrEnd()
	e.ObjEnd()
}

func encCart(e *jx.Encoder, c *cart.Cart) {
	e.ObjStart()
	e.FieldStart("lines")
	e.ArrStart()
	for _, l := range c.Lines {
		encCartLine(e, l)
	}
	e.ArrEnd()
	e.FieldStart("count")
	e.Int(c.Count())
	e.FieldStart("total")
	encMoney(e, c.Total())
	e.ObjEnd()
}

func encQuote(e *jx.Encoder, q pricing.Quote) {
	e.ObjStart()
	e.FieldStart("subtotal")
	encMoney(e, q.Subtotal)
	e.FieldStart("promoDiscount")
	encMoney(e, q.PromoDiscount)
	e.FieldStart("pointsDiscount")
	encMoney(e, q.PointsDiscount)
	e.FieldStart("tax")
	encMoney(e, q.Tax)
	e.FieldStart("deliveryFee")
	encMoney(e, q.DeliveryFee)
	e.FieldStart("total")
	encMoney(e, q.Total)
	e.FieldStart("pointsUsed")
	e.Int(q.PointsUsed)
	e.ObjEnd()
}

func encOrder(e *jx.Encoder, o *order.Order) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(o.ID)
	e.FieldStart("userId")
	e.Str(o.UserID)
	e.FieldStart("items")
	e.ArrStart()
	for _, l := range o.Items {
		encCartLine(e, l)
	}
	e.ArrEnd()
	e.FieldStart("subtotal")
	encMoney(e, o.Subtotal)
	e.FieldStart("promoDiscount")
	encMoney(e, o.PromoDiscount)
	e.FieldStart("pointsDiscount")
	encMoney(e, o.PointsDiscount)
	e.FieldStart("tax")
	encMoney(e, o.Tax)
	e.FieldStart("deliveryFee")
	encMoney(e, o.DeliveryFee)
	e.FieldStart("total")
	encMoney(e, o.Total)
	e.FieldStart("status")
	e.Str(string(o.Status))
	e.FieldStart("type")
	e.Str(string(o.Type))
	if o.DeliveryAddress != "" {
		e.FieldStart("deliveryAddress")
		e.Str(o.DeliveryAddress)
	}
	e.FieldStart("createdAt")
	e.Str(o.CreatedAt.Format(time.RFC3339))
	if o.ScheduledAt != nil {
		e.FieldStart("scheduledAt")
		e.Str(o.ScheduledAt.Format(time.RFC3339))
	}
	if o.PromoCode != "" {
		e.FieldStart("promoCode")
		e.Str(o.PromoCode)
	}
	e.FieldStart("pointsUsed")
	e.Int(o.PointsUsed)
	e.ObjEnd()
}

func encUser(e *jx.Encoder, u *user.User) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(u.ID)
	e.FieldStart("name")
	e.Str(u.Name)
	e.FieldStart("email")
	e.Str(u.Email)
	e.FieldStart("avatar")
	e.ObjStart()
	e.FieldStart("base")
	e.Str(u.Avatar.Base)
	e.FieldStart("accessories")
	e.ArrStart()
	for _, a := range u.Avatar.Accessories {
		e.Str(a)
	}
	e.ArrEnd()
	e.ObjEnd()
	e.FieldStart("spudPoints")
	e.Int(u.SpudPoints)
	e.FieldStart("unlockedBadges")
	e.ArrStart()
	for _, b := range u.UnlockedBadges {
		e.Str(b)
	}
	e.ArrEnd()
	e.FieldStart("unlockedAccessories")
	e.ArrStart()
	for _, a := range u.UnlockedAccessories {
		e.Str(a)
	}
	e.ArrEnd()
	e.ObjEnd()
}

func encBadge(e *jx.Encoder, b loyalty.Badge) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(b.ID)
	e.FieldStart("name")
	e.Str(b.Name)
	e.FieldStart("description")
	e.Str(b.Description)
	e.FieldStart("icon")
	e.Str(b.Icon)
	if b.Unlocks != "" {
		e.FieldStart("unlocks")
		e.Str(b.Unlocks)
	}
	e.ObjEnd()
}

func encReservation(e *jx.Encoder, r *reservation.Reservation) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(r.ID)
	e.FieldStart("name")
	e.Str(r.Name)
	e.FieldStart("email")
	e.Str(r.Email)
	e.FieldStart("phone")
	e.Str(r.Phone)
	e.FieldStart("date")
	e.Str(r.Date)
	e.FieldStart("time")
	e.Str(r.Time)
	e.FieldStart("partySize")
	e.Int(r.PartySize)
	if r.SpecialRequest != "" {
		e.FieldStart("specialRequest")
		e.Str(r.SpecialRequest)
	}
	e.FieldStart("createdAt")
	e.Str(r.CreatedAt.Format(time.RFC3339))
	e.ObjEnd()
}
