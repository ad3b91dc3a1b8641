// Package loyalty implements the Spud Points currency and badge unlocks.
// Ten points redeem for one dollar; earning happens only on order placement.
package loyalty

// Badge is a static catalog entry. Unlocks optionally names an avatar
// accessory granted together with the badge.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Unlocks     string `json:"unlocks,omitempty"`
}

// Badge ids referenced by the award rules.
const (
	BadgeFirstFry     = "b-01"
	BadgeLoadedLegend = "b-02"
	BadgeSpudSaver    = "b-03"
	BadgeNightOwl     = "b-04"
)

// Badges is the static badge catalog. Never mutated at runtime.
var Badges = []Badge{
	{ID: BadgeFirstFry, Name: "First Fry", Description: "Placed your first order!", Icon: "🍟"},
	{ID: BadgeLoadedLegend, Name: "Loaded Legend", Description: "Tried all loaded fry varieties.", Icon: "🏆", Unlocks: "Crown"},
	{ID: BadgeSpudSaver, Name: "Spud Saver", Description: "Used Spud Points for a discount.", Icon: "💰"},
	{ID: BadgeNightOwl, Name: "Night Owl", Description: "Ordered after 10 PM.", Icon: "🦉", Unlocks: "Top Hat"},
}

// Accessories maps accessory names to their avatar glyphs.
var Accessories = map[string]string{
	"Crown":      "👑",
	"Top Hat":    "🎩",
	"Chef Hat":   "👨‍🍳",
	"Sunglasses": "😎",
}

// BadgeByID returns the catalog entry for the given id, or nil.
func BadgeByID(id string) *Badge {
	for i := range Badges {
		if Badges[i].ID == id {
			return &Badges[i]
		}
	}
	return nil
}
