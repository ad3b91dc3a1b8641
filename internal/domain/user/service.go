package user

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

// Service handles signup, login, the guest session, and the admin identity
// contract. Credentials are stored as HMAC-SHA256 hashes keyed by a
// deployment-wide pepper.
type Service struct {
	users       Repository
	pepper      []byte
	signupBonus int
	adminEmail  string
}

// NewService creates a user Service. adminEmail identifies the single
// back-office account; signupBonus is the welcome point grant.
func NewService(users Repository, pepper []byte, signupBonus int, adminEmail string) *Service {
	return &Service{
		users:       users,
		pepper:      pepper,
		signupBonus: signupBonus,
		adminEmail:  adminEmail,
	}
}

// SignUp creates a new account with the welcome bonus. A duplicate email
// returns ErrEmailTaken and leaves the existing account untouched.
func (s *Service) SignUp(ctx context.Context, name, email, password string) (*User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, errors.Wrap(err, "lookup email")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	u := &User{
		ID:                  uuid.New().String(),
		Name:                name,
		Email:               email,
		CredentialHash:      s.hash(password),
		Avatar:              PotatoAvatar{Base: "classic"},
		SpudPoints:          s.signupBonus,
		UnlockedBadges:      []string{},
		UnlockedAccessories: []string{},
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, errors.Wrap(err, "create user")
	}
	return u, nil
}

// Login authenticates by email and password. Both an unknown email and a
// wrong password yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, "lookup email")
	}

	stored, err := hex.DecodeString(u.CredentialHash)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	mac := hmac.New(sha256.New, s.pepper)
	mac.Write([]byte(password))
	if subtle.ConstantTimeCompare(mac.Sum(nil), stored) != 1 {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Guest returns the session-only guest pseudo-account. It is never persisted
// and holds no points, badges, or history.
func (s *Service) Guest() *User {
	return &User{
		ID:                  GuestID,
		Name:                "Guest",
		Email:               "guest@potato.com",
		Avatar:              PotatoAvatar{Base: "classic"},
		UnlockedBadges:      []string{},
		UnlockedAccessories: []string{},
	}
}

// IsAdmin reports whether the email matches the reserved back-office account.
func (s *Service) IsAdmin(email string) bool {
	return strings.EqualFold(email, s.adminEmail)
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.users.GetByID(ctx, id)
}

// List returns all users (back-office view).
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.users.List(ctx)
}

// Update writes back a modified user. Guest updates are session-only and
// silently skipped.
func (s *Service) Update(ctx context.Context, u *User) error {
	if u.ID == GuestID {
		return nil
	}
	return s.users.Update(ctx, u)
}

func (s *Service) hash(password string) string {
	return HashCredential(s.pepper, password)
}

// HashCredential computes the peppered HMAC-SHA256 hash stored for a
// password. Shared with bootstrap seeding.
func HashCredential(pepper []byte, password string) string {
	mac := hmac.New(sha256.New, pepper)
	mac.Write([]byte(password))
	return hex.EncodeToString(mac.Sum(nil))
}
