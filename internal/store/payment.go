package store

import (
	"context"

	"github.com/phrazzld/streamly-api/internal/domain"
)

// PaymentStore defines the interface for payment persistence.
//
// The store preserves insertion order. Create assigns the payment id under
// the store's own synchronization so concurrent creates cannot mint
// duplicate ids.
type PaymentStore interface {
	// Create appends a new payment and assigns its id: one more than the id
	// of the last stored payment, or 1 when the store is empty.
	Create(ctx context.Context, payment *domain.Payment) error

	// List returns all payments in insertion order.
	List(ctx context.Context) ([]*domain.Payment, error)

	// GetByID retrieves a payment by exact id match.
	// Returns ErrPaymentNotFound if the payment does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)

	// Delete removes the first payment with the given id.
	// Returns ErrPaymentNotFound if the payment does not exist.
	Delete(ctx context.Context, id int64) error
}
