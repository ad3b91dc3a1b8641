// Package seed holds the initial data set: the launch menu, the stock promo
// codes, and the reserved admin account. Collections are only seeded when
// empty so admin edits survive restarts.
package seed

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/spud-shack/internal/domain/catalog"
	"github.com/xenking/spud-shack/internal/domain/promo"
	"github.com/xenking/spud-shack/internal/domain/user"
)

// DefaultDailySpecialID is the item featured until an admin picks another.
const DefaultDailySpecialID = "lf-02"

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Menu returns the launch menu.
func Menu() []catalog.MenuItem {
	return []catalog.MenuItem{
		{
			ID:          "lf-01",
			Name:        "Classic Cheesy Fries",
			Description: "Crispy golden fries smothered in our signature three-cheese sauce and topped with fresh chives.",
			Price:       price("8.99"),
			Category:    "Loaded Fries",
			ImageURL:    "https://picsum.photos/seed/cheesyfries/600/400",
			Rating:      4.5,
			DietaryTags: []catalog.DietaryTag{catalog.Vegetarian},
			Available:   true,
			Customizations: []catalog.Customization{
				{Name: "Add Bacon Bits", Price: price("1.50")},
				{Name: "Extra Cheese", Price: price("2.00")},
				{Name: "Add Jalapeños", Price: price("0.75")},
			},
			Reviews: []catalog.Review{
				{Author: "FryFanatic", Rating: 5, Comment: "The best cheesy fries in town!"},
			},
			Nutrition: catalog.NutritionFacts{Calories: 650, Protein: 15, Carbs: 70, Fat: 35},
		},
		{
			ID:          "lf-02",
			Name:        "Spicy Volcano Fries",
			Description: "A fiery eruption of flavor! Fries topped with spicy chili, jalapeños, pepper jack cheese, and a drizzle of sriracha aioli.",
			Price:       price("10.99"),
			Category:    "Loaded Fries",
			ImageURL:    "https://picsum.photos/seed/volcanofries/600/400",
			Rating:      4.8,
			DietaryTags: []catalog.DietaryTag{},
			Spicy:       true,
			Available:   true,
			Customizations: []catalog.Customization{
				{Name: "Extra Chili", Price: price("2.50")},
				{Name: "Sour Cream", Price: price("1.00")},
			},
			Reviews: []catalog.Review{
				{Author: "HeatSeeker", Rating: 5, Comment: "Perfectly spicy and delicious!"},
			},
			Nutrition: catalog.NutritionFacts{Calories: 800, Protein: 25, Carbs: 75, Fat: 45},
		},
		{
			ID:          "lf-03",
			Name:        "Vegan Garden Delight",
			Description: "A healthy and hearty option. Sweet potato fries topped with black beans, corn salsa, avocado, and a cilantro-lime vegan crema.",
			Price:       price("11.99"),
			Category:    "Loaded Fries",
			ImageURL:    "https://picsum.photos/seed/veganfries/600/400",
			Rating:      4.7,
			DietaryTags: []catalog.DietaryTag{catalog.Vegan, catalog.GlutenFree, catalog.Vegetarian},
			Available:   true,
			Customizations: []catalog.Customization{
				{Name: "Add Vegan Chorizo", Price: price("3.00")},
				{Name: "Extra Avocado", Price: price("2.00")},
			},
			Reviews: []catalog.Review{
				{Author: "PlantPower", Rating: 5, Comment: "So fresh and flavorful!"},
			},
			Nutrition: catalog.NutritionFacts{Calories: 550, Protein: 12, Carbs: 80, Fat: 20},
		},
		{
			ID:          "sd-01",
			Name:        "Crispy Onion Rings",
			Description: "Golden, beer-battered onion rings served with your choice of dip.",
			Price:       price("5.99"),
			Category:    "Sides",
			ImageURL:    "https://picsum.photos/seed/onionrings/600/400",
			Rating:      4.3,
			DietaryTags: []catalog.DietaryTag{catalog.Vegetarian},
			Available:   true,
			Nutrition:   catalog.NutritionFacts{Calories: 400, Protein: 5, Carbs: 50, Fat: 20},
		},
		{
			ID:          "dr-01",
			Name:        "Fresh Lemonade",
			Description: "House-made lemonade, perfectly sweet and tart.",
			Price:       price("3.50"),
			Category:    "Drinks",
			ImageURL:    "https://picsum.photos/seed/lemonade/600/400",
			Rating:      4.9,
			DietaryTags: []catalog.DietaryTag{catalog.Vegan, catalog.GlutenFree, catalog.Vegetarian},
			Available:   true,
			Customizations: []catalog.Customization{
				{Name: "Add Strawberry Puree", Price: price("0.50")},
				{Name: "Add Mint", Price: price("0.50")},
			},
			Nutrition: catalog.NutritionFacts{Calories: 150, Protein: 0, Carbs: 40, Fat: 0},
		},
	}
}

// Promos returns the stock promo codes.
func Promos() []promo.Code {
	return []promo.Code{
		{Code: "SAVE10", DiscountPercentage: decimal.NewFromInt(10), Active: true},
		{Code: "POTATO20", DiscountPercentage: decimal.NewFromInt(20), Active: true},
	}
}

// AdminUser returns the reserved back-office account. credentialHash is the
// peppered hash of the bootstrap password.
func AdminUser(email, credentialHash string) user.User {
	return user.User{
		ID:                  "admin-user",
		Name:                "Admin",
		Email:               email,
		CredentialHash:      credentialHash,
		Avatar:              user.PotatoAvatar{Base: "classic"},
		SpudPoints:          1000,
		UnlockedBadges:      []string{},
		UnlockedAccessories: []string{},
	}
}

// Stores groups the repositories Ensure seeds.
type Stores struct {
	Catalog catalog.Repository
	Promos  promo.Repository
	Users   user.Repository
}

// Ensure seeds each empty collection and leaves non-empty ones alone.
func Ensure(ctx context.Context, st Stores, adminEmail, adminCredentialHash string) error {
	items, err := st.Catalog.List(ctx)
	if err != nil {
		return errors.Wrap(err, "list menu")
	}
	if len(items) == 0 {
		if err := st.Catalog.Replace(ctx, Menu()); err != nil {
			return errors.Wrap(err, "seed menu")
		}
		if err := st.Catalog.SetDailySpecial(ctx, DefaultDailySpecialID); err != nil {
			return errors.Wrap(err, "seed daily special")
		}
	}

	promos, err := st.Promos.List(ctx)
	if err != nil {
		return errors.Wrap(err, "list promos")
	}
	if len(promos) == 0 {
		if err := st.Promos.Replace(ctx, Promos()); err != nil {
			return errors.Wrap(err, "seed promos")
		}
	}

	users, err := st.Users.List(ctx)
	if err != nil {
		return errors.Wrap(err, "list users")
	}
	if len(users) == 0 {
		admin := AdminUser(adminEmail, adminCredentialHash)
		if err := st.Users.Replace(ctx, []user.User{admin}); err != nil {
			return errors.Wrap(err, "seed admin user")
		}
	}
	return nil
}
