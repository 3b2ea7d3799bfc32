package store

import (
	"context"

	"github.com/phrazzld/streamly-api/internal/domain"
)

// UserStore defines the interface for user persistence.
//
// The store preserves insertion order and enforces no invariants of its own;
// callers (the service layer) are responsible for uniqueness and validation
// before insertion.
type UserStore interface {
	// Create appends a new user to the store.
	Create(ctx context.Context, user *domain.User) error

	// List returns all users in insertion order.
	List(ctx context.Context) ([]*domain.User, error)

	// GetByUsername retrieves a user by exact username match.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByCardNumber retrieves the first user with the given credit card
	// number on file. Returns ErrUserNotFound if no user holds the card.
	GetByCardNumber(ctx context.Context, ccNumber string) (*domain.User, error)

	// Delete removes the first user with the given username.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, username string) error
}
