package domain

import "time"

// Payment represents a single payment made with a registered credit card.
//
// ID is assigned by the store at creation time: one more than the id of the
// last stored payment, or 1 when the store is empty. CreatedAt is the
// timestamp assigned when the payment is accepted.
type Payment struct {
	ID        int64     `json:"id"`
	CCNumber  string    `json:"ccNumber"`
	Amount    int       `json:"amount"`
	CreatedAt time.Time `json:"date"`
}
