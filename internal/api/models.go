package api

import (
	"time"

	"github.com/phrazzld/streamly-api/internal/domain"
)

// Common request/response structures.

// CreateUserRequest defines the payload for the user creation endpoint.
// The fields carry no validation tags: all checks run in the service layer
// in a fixed order, and a presence check here would preempt their error
// messages. A missing or empty field fails the matching ordered check
// instead (empty username is not alphanumeric, empty password is too
// short, and so on).
type CreateUserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	Birthdate string `json:"birthdate"`
	CCNumber  string `json:"ccNumber"`
}

// CreatePaymentRequest defines the payload for the payment creation endpoint.
// An absent card number or amount fails the service-layer format and range
// checks, so no presence tags are needed.
type CreatePaymentRequest struct {
	CCNumber string `json:"ccNumber"`
	Amount   int    `json:"amount"`
}

// UserResponse is the wire representation of a user. The password field
// carries the hex-encoded digest, never the plaintext.
type UserResponse struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	Birthdate string `json:"birthdate"`
	CCNumber  string `json:"ccNumber,omitempty"`
}

// PaymentResponse is the wire representation of a payment. The date is the
// RFC 3339 creation timestamp.
type PaymentResponse struct {
	ID       int64  `json:"id"`
	CCNumber string `json:"ccNumber"`
	Amount   int    `json:"amount"`
	Date     string `json:"date"`
}

// UserListResponse wraps the user listing endpoint's payload.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// UserEnvelope wraps a single user lookup's payload.
type UserEnvelope struct {
	User UserResponse `json:"user"`
}

// UserCreatedResponse is the payload returned on successful user creation.
type UserCreatedResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// PaymentListResponse wraps the payment listing endpoint's payload.
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// PaymentEnvelope wraps a single payment lookup's payload.
type PaymentEnvelope struct {
	Payment PaymentResponse `json:"payment"`
}

// PaymentCreatedResponse is the payload returned on successful payment
// creation.
type PaymentCreatedResponse struct {
	Message string          `json:"message"`
	Payment PaymentResponse `json:"payment"`
}

// MessageResponse carries a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// userToResponse converts a domain.User to its wire representation.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		Username:  user.Username,
		Password:  user.HashedPassword,
		Email:     user.Email,
		Birthdate: user.Birthdate,
		CCNumber:  user.CCNumber,
	}
}

// paymentToResponse converts a domain.Payment to its wire representation.
func paymentToResponse(payment *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:       payment.ID,
		CCNumber: payment.CCNumber,
		Amount:   payment.Amount,
		Date:     payment.CreatedAt.Format(time.RFC3339),
	}
}
