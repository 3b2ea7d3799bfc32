package memory

import (
	"context"
	"sync"

	"github.com/phrazzld/streamly-api/internal/domain"
	"github.com/phrazzld/streamly-api/internal/store"
)

// PaymentStore is a mutex-guarded, insertion-order-preserving in-memory
// payment store. Lookups are linear scans.
type PaymentStore struct {
	mu       sync.Mutex
	payments []*domain.Payment
}

// NewPaymentStore creates an empty in-memory payment store.
func NewPaymentStore() *PaymentStore {
	return &PaymentStore{}
}

// Create implements store.PaymentStore. The id is derived from the last
// stored element rather than a monotonic counter, so deleting the most
// recent payment allows its id to be reissued. Assignment happens under the
// mutex, which rules out duplicate ids under concurrent creates.
func (s *PaymentStore) Create(ctx context.Context, payment *domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lastID int64
	if n := len(s.payments); n > 0 {
		lastID = s.payments[n-1].ID
	}
	payment.ID = lastID + 1

	stored := *payment
	s.payments = append(s.payments, &stored)
	return nil
}

// List implements store.PaymentStore.
func (s *PaymentStore) List(ctx context.Context) ([]*domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Payment, 0, len(s.payments))
	for _, p := range s.payments {
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

// GetByID implements store.PaymentStore.
func (s *PaymentStore) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.payments {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, store.ErrPaymentNotFound
}

// Delete implements store.PaymentStore. It removes the first exact match.
func (s *PaymentStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.payments {
		if p.ID == id {
			s.payments = append(s.payments[:i], s.payments[i+1:]...)
			return nil
		}
	}
	return store.ErrPaymentNotFound
}
