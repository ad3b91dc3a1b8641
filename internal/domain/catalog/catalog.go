package catalog

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested menu item does not exist.
var ErrNotFound = errors.New("menu item not found")

// Categories lists the fixed menu categories in display order.
var Categories = []string{"Loaded Fries", "Sides", "Dips", "Drinks"}

// DietaryTag marks a menu item as matching a dietary restriction.
type DietaryTag string

const (
	Vegetarian DietaryTag = "Vegetarian"
	Vegan      DietaryTag = "Vegan"
	GlutenFree DietaryTag = "Gluten-Free"
)

// specialMarkdown is the fraction knocked off the daily special's price.
var specialMarkdown = decimal.RequireFromString("0.2")

// MenuItem is a catalog entry. The customizations carried here are templates:
// their Selected flag only gains meaning once the item is snapshotted into a
// cart line.
type MenuItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Category       string          `json:"category"`
	ImageURL       string          `json:"imageUrl"`
	Rating         float64         `json:"rating"`
	DietaryTags    []DietaryTag    `json:"dietaryTags"`
	Spicy          bool            `json:"isSpicy"`
	Available      bool            `json:"isAvailable"`
	Customizations []Customization `json:"customizations"`
	Reviews        []Review        `json:"reviews"`
	Nutrition      NutritionFacts  `json:"nutrition"`
}

// Customization is an optional paid add-on. Selected is per cart line.
type Customization struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Selected bool            `json:"selected,omitempty"`
}

// Review is a customer review attached to a menu item.
type Review struct {
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// NutritionFacts holds per-serving nutrition information.
type NutritionFacts struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// SpecialPrice returns the item's price with the daily-special markdown
// applied. Callers decide whether the item actually is today's special.
func SpecialPrice(item MenuItem) decimal.Decimal {
	return item.Price.Sub(item.Price.Mul(specialMarkdown)).Round(2)
}

// Repository defines catalog persistence. Writes replace the whole
// collection; there are no partial updates.
type Repository interface {
	List(ctx context.Context) ([]MenuItem, error)
	GetByID(ctx context.Context, id string) (*MenuItem, error)
	Replace(ctx context.Context, items []MenuItem) error

	DailySpecialID(ctx context.Context) (string, error)
	SetDailySpecial(ctx context.Context, id string) error
}
