package service

import (
	"fmt"

	"github.com/phrazzld/streamly-api/internal/store"
)

// Service-level errors.
var (
	// ErrCardNotRegistered is returned when a payment references a card
	// number that no user has on file. It wraps store.ErrNotFound so the
	// HTTP boundary maps it to 404.
	ErrCardNotRegistered = fmt.Errorf("%w: card number is not registered to any user", store.ErrNotFound)
)
