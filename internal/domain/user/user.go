package user

import (
	"context"

	"github.com/go-faster/errors"
)

// GuestID is the reserved id of the session-only guest pseudo-account.
const GuestID = "guest"

var (
	// ErrNotFound is returned when a requested user does not exist.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken is returned on signup with an already registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// PotatoAvatar is the user's profile avatar: a base potato plus any unlocked
// accessories currently worn.
type PotatoAvatar struct {
	Base        string   `json:"base"`
	Accessories []string `json:"accessories"`
}

// User is a customer account. SpudPoints is the loyalty balance; badge and
// accessory unlocks are set-union only.
type User struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Email               string       `json:"email"`
	CredentialHash      string       `json:"credentialHash,omitempty"`
	Avatar              PotatoAvatar `json:"avatar"`
	SpudPoints          int          `json:"spudPoints"`
	UnlockedBadges      []string     `json:"unlockedBadges"`
	UnlockedAccessories []string     `json:"unlockedAccessories"`
}

// HasBadge reports whether the badge id is already unlocked.
func (u *User) HasBadge(id string) bool {
	for _, b := range u.UnlockedBadges {
		if b == id {
			return true
		}
	}
	return false
}

// UnlockBadge adds the badge id to the unlocked set. Idempotent.
func (u *User) UnlockBadge(id string) {
	if !u.HasBadge(id) {
		u.UnlockedBadges = append(u.UnlockedBadges, id)
	}
}

// UnlockAccessory adds the accessory to the unlocked set and puts it on the
// avatar immediately. Idempotent.
func (u *User) UnlockAccessory(name string) {
	for _, a := range u.UnlockedAccessories {
		if a == name {
			return
		}
	}
	u.UnlockedAccessories = append(u.UnlockedAccessories, name)
	u.Avatar.Accessories = append(u.Avatar.Accessories, name)
}

// Repository defines user persistence. Replace performs a full-collection
// write; Update writes back a single user in place.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Replace(ctx context.Context, users []User) error
}
