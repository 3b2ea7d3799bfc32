package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/streamly-api/internal/api/shared"
	"github.com/phrazzld/streamly-api/internal/domain"
	"github.com/phrazzld/streamly-api/internal/service"
	"github.com/phrazzld/streamly-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error kind. This prevents leaking internal error types to
// clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Business-rule rejections
	case errors.Is(err, domain.ErrEligibility):
		return http.StatusForbidden

	// Conflict errors
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Malformed input
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// User validation errors
	case errors.Is(err, domain.ErrUsernameNotAlphanumeric):
		return "Username must be alphanumeric"

	case errors.Is(err, domain.ErrUsernameTaken):
		return "Username already exists"

	case errors.Is(err, domain.ErrPasswordTooShort):
		return "Password must be at least 8 characters long"

	case errors.Is(err, domain.ErrPasswordMissingClasses):
		return "Password must include at least 1 uppercase letter and 1 number"

	case errors.Is(err, domain.ErrInvalidEmail):
		return "Invalid email format"

	case errors.Is(err, domain.ErrInvalidBirthdate):
		return "Birthdate must be in YYYY-MM-DD format"

	case errors.Is(err, domain.ErrUnderage):
		return "User must be at least 18 years old to register"

	case errors.Is(err, domain.ErrInvalidCardFormat):
		return "Invalid credit card number format"

	case errors.Is(err, domain.ErrInvalidCardFilter):
		return "Invalid creditcard filter. Use 'yes' or 'no'"

	// Payment validation errors
	case errors.Is(err, domain.ErrInvalidCardNumber):
		return "Card number must be numeric and 16 digits long"

	case errors.Is(err, domain.ErrInvalidAmount):
		return "Amount must be exactly 3 digits (100-999)"

	// Not found errors
	case errors.Is(err, service.ErrCardNotRegistered):
		return "Card number is not registered to any user"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrPaymentNotFound):
		return "Payment not found"

	default:
		return "An unexpected error occurred"
	}
}

// HandleServiceError writes the error response for a failed service call,
// combining the status and message mappers.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
}
