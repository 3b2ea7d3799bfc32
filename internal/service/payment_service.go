package service

import (
	"context"
	"fmt"
	"time"

	"github.com/phrazzld/streamly-api/internal/domain"
	"github.com/phrazzld/streamly-api/internal/store"
)

// CreatePaymentInput carries the candidate fields for a new payment.
type CreatePaymentInput struct {
	CCNumber string
	Amount   int
}

// PaymentService orchestrates payment creation, lookup, and deletion.
type PaymentService struct {
	payments store.PaymentStore
	users    store.UserStore
	now      func() time.Time
}

// NewPaymentService creates a new PaymentService with the given dependencies.
func NewPaymentService(payments store.PaymentStore, users store.UserStore) *PaymentService {
	return &PaymentService{
		payments: payments,
		users:    users,
		now:      time.Now,
	}
}

// CreatePayment validates the candidate and stores it on success.
//
// Checks run in a fixed order and short-circuit on the first failure:
//
//  1. card number is 16 digits
//  2. card number is on file for some user
//  3. amount is within 100-999
//
// Card "registration" is intentionally nothing more than some user having
// the number on file; user creation never records the card anywhere else.
// The store assigns the id; the service assigns the creation timestamp.
func (s *PaymentService) CreatePayment(ctx context.Context, input CreatePaymentInput) (*domain.Payment, error) {
	if !domain.IsValidCardNumber(input.CCNumber) {
		return nil, domain.ErrInvalidCardNumber
	}

	if _, err := s.users.GetByCardNumber(ctx, input.CCNumber); err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrCardNotRegistered
		}
		return nil, fmt.Errorf("checking card registration: %w", err)
	}

	if !domain.IsValidAmount(input.Amount) {
		return nil, domain.ErrInvalidAmount
	}

	payment := &domain.Payment{
		CCNumber:  input.CCNumber,
		Amount:    input.Amount,
		CreatedAt: s.now().UTC(),
	}

	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("storing payment: %w", err)
	}

	return payment, nil
}

// GetPayments returns all payments in insertion order.
func (s *PaymentService) GetPayments(ctx context.Context) ([]*domain.Payment, error) {
	return s.payments.List(ctx)
}

// GetPaymentByID retrieves a single payment by exact id match.
func (s *PaymentService) GetPaymentByID(ctx context.Context, id int64) (*domain.Payment, error) {
	return s.payments.GetByID(ctx, id)
}

// DeletePayment removes the payment with the given id.
func (s *PaymentService) DeletePayment(ctx context.Context, id int64) error {
	return s.payments.Delete(ctx, id)
}
