package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/phrazzld/streamly-api/internal/domain"
	"github.com/phrazzld/streamly-api/internal/store"
)

// Credit card filter values accepted by GetUsers.
const (
	CardFilterNone   = ""
	CardFilterWithCC = "yes"
	CardFilterNoCC   = "no"
)

// CreateUserInput carries the candidate fields for user registration.
// Password is plaintext here; it is hashed before the user is stored.
type CreateUserInput struct {
	Username  string
	Password  string
	Email     string
	Birthdate string
	CCNumber  string
}

// UserService orchestrates user registration, lookup, and deletion.
type UserService struct {
	users  store.UserStore
	hasher PasswordHasher
}

// NewUserService creates a new UserService with the given dependencies.
func NewUserService(users store.UserStore, hasher PasswordHasher) *UserService {
	return &UserService{
		users:  users,
		hasher: hasher,
	}
}

// CreateUser validates the candidate and stores it on success.
//
// Checks run in a fixed order and short-circuit on the first failure; the
// order determines which single error is reported when several fields are
// invalid, so it must not be rearranged:
//
//  1. username is alphanumeric
//  2. username is not taken
//  3. password is long enough
//  4. password has an uppercase letter and a digit
//  5. email is well-formed
//  6. birthdate is in YYYY-MM-DD form
//  7. user is at least 18
//  8. card number, when present, is 16 digits
//
// The stored record carries the password digest, never the plaintext.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if !domain.IsAlphanumericUsername(input.Username) {
		return nil, domain.ErrUsernameNotAlphanumeric
	}

	if _, err := s.users.GetByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !store.IsNotFoundError(err) {
		return nil, fmt.Errorf("checking username uniqueness: %w", err)
	}

	if !domain.IsPasswordLongEnough(input.Password) {
		return nil, domain.ErrPasswordTooShort
	}

	if !domain.HasUpperAndDigit(input.Password) {
		return nil, domain.ErrPasswordMissingClasses
	}

	if !domain.IsValidEmail(input.Email) {
		return nil, domain.ErrInvalidEmail
	}

	if !domain.IsISODate(input.Birthdate) {
		return nil, domain.ErrInvalidBirthdate
	}

	if !domain.IsAtLeast18(input.Birthdate) {
		return nil, domain.ErrUnderage
	}

	if input.CCNumber != "" && !domain.IsValidCardNumber(input.CCNumber) {
		return nil, domain.ErrInvalidCardFormat
	}

	user := &domain.User{
		Username:       input.Username,
		HashedPassword: s.hasher.Hash(input.Password),
		Email:          input.Email,
		Birthdate:      input.Birthdate,
		CCNumber:       input.CCNumber,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("storing user: %w", err)
	}

	return user, nil
}

// GetUsers returns all users, optionally narrowed by credit card presence.
// The filter is case-insensitive: "yes" keeps users with a card on file,
// "no" keeps users without one, and the empty string keeps everyone. Any
// other value fails with ErrInvalidCardFilter.
func (s *UserService) GetUsers(ctx context.Context, cardFilter string) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	switch strings.ToLower(cardFilter) {
	case CardFilterNone:
		return users, nil
	case CardFilterWithCC:
		return filterUsers(users, func(u *domain.User) bool { return u.HasCreditCard() }), nil
	case CardFilterNoCC:
		return filterUsers(users, func(u *domain.User) bool { return !u.HasCreditCard() }), nil
	default:
		return nil, domain.ErrInvalidCardFilter
	}
}

// GetUserByUsername retrieves a single user by exact username match.
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.GetByUsername(ctx, username)
}

// DeleteUser removes the user with the given username.
func (s *UserService) DeleteUser(ctx context.Context, username string) error {
	return s.users.Delete(ctx, username)
}

func filterUsers(users []*domain.User, keep func(*domain.User) bool) []*domain.User {
	out := make([]*domain.User, 0, len(users))
	for _, u := range users {
		if keep(u) {
			out = append(out, u)
		}
	}
	return out
}
