package memory

import (
	"context"
	"sync"

	"github.com/phrazzld/streamly-api/internal/domain"
	"github.com/phrazzld/streamly-api/internal/store"
)

// UserStore is a mutex-guarded, insertion-order-preserving in-memory user
// store. Lookups are linear scans, which is acceptable at this scale.
type UserStore struct {
	mu    sync.Mutex
	users []*domain.User
}

// NewUserStore creates an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{}
}

// Create implements store.UserStore. It appends unconditionally; uniqueness
// is the caller's responsibility.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *user
	s.users = append(s.users, &stored)
	return nil
}

// List implements store.UserStore.
func (s *UserStore) List(ctx context.Context) ([]*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}

// GetByUsername implements store.UserStore.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByCardNumber implements store.UserStore.
func (s *UserStore) GetByCardNumber(ctx context.Context, ccNumber string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.CCNumber == ccNumber {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// Delete implements store.UserStore. It removes the first exact match.
func (s *UserStore) Delete(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.Username == username {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return store.ErrUserNotFound
}
