package repository

import (
	"context"
	"strings"

	"github.com/go-faster/errors"

	"github.com/xenking/spud-shack/internal/domain/user"
	"github.com/xenking/spud-shack/internal/storage/kv"
)

var _ user.Repository = (*UserRepository)(nil)

// UserRepository stores the user collection.
type UserRepository struct {
	store kv.Store
}

// NewUserRepository returns a UserRepository over the given store.
func NewUserRepository(store kv.Store) *UserRepository {
	return &UserRepository{store: store}
}

// List returns all users.
func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	var users []user.User
	if err := load(ctx, r.store, keyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID returns a user by id, or user.ErrNotFound.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, user.ErrNotFound
}

// FindByEmail returns a user by email (case-insensitive), or user.ErrNotFound.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, user.ErrNotFound
}

// Create appends a new user to the collection.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	users = append(users, *u)
	if err := r.store.Put(ctx, keyUsers, users); err != nil {
		return errors.Wrap(err, "store users")
	}
	return nil
}

// Update writes back a single user in place. Unknown ids are a not-found.
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == u.ID {
			users[i] = *u
			if err := r.store.Put(ctx, keyUsers, users); err != nil {
				return errors.Wrap(err, "store users")
			}
			return nil
		}
	}
	return user.ErrNotFound
}

// Replace overwrites the whole user collection.
func (r *UserRepository) Replace(ctx context.Context, users []user.User) error {
	if err := r.store.Put(ctx, keyUsers, users); err != nil {
		return errors.Wrap(err, "store users")
	}
	return nil
}
