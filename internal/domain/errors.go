package domain

import (
	"errors"
	"fmt"
)

// Common domain error kinds. Specific errors wrap one of these so callers
// can classify failures with errors.Is without matching every sentinel.
var (
	// ErrValidation is returned when input fails a format or range check.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned when an operation would duplicate a unique key.
	ErrConflict = errors.New("resource conflict")

	// ErrEligibility is returned when input is well-formed but a business
	// rule rejects it.
	ErrEligibility = errors.New("eligibility check failed")
)

// User-specific errors.
var (
	// ErrUsernameNotAlphanumeric indicates the username contains characters
	// other than letters and digits, or is empty.
	ErrUsernameNotAlphanumeric = fmt.Errorf("%w: username must be alphanumeric", ErrValidation)

	// ErrUsernameTaken indicates another user already holds the username.
	ErrUsernameTaken = fmt.Errorf("%w: username already exists", ErrConflict)

	// ErrPasswordTooShort indicates the password is shorter than 8 characters.
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least 8 characters long", ErrValidation)

	// ErrPasswordMissingClasses indicates the password lacks an uppercase
	// letter or a digit.
	ErrPasswordMissingClasses = fmt.Errorf(
		"%w: password must include at least 1 uppercase letter and 1 number",
		ErrValidation,
	)

	// ErrInvalidEmail indicates the email address is malformed.
	ErrInvalidEmail = fmt.Errorf("%w: invalid email format", ErrValidation)

	// ErrInvalidBirthdate indicates the birthdate is not in YYYY-MM-DD form.
	ErrInvalidBirthdate = fmt.Errorf("%w: birthdate must be in YYYY-MM-DD format", ErrValidation)

	// ErrUnderage indicates the user is younger than 18.
	ErrUnderage = fmt.Errorf("%w: user must be at least 18 years old", ErrEligibility)

	// ErrInvalidCardFormat indicates a malformed credit card number supplied
	// during user registration.
	ErrInvalidCardFormat = fmt.Errorf("%w: invalid credit card number format", ErrValidation)

	// ErrInvalidCardFilter indicates an unsupported creditcard filter value
	// on the user listing endpoint.
	ErrInvalidCardFilter = fmt.Errorf("%w: invalid creditcard filter", ErrValidation)
)

// Payment-specific errors.
var (
	// ErrInvalidCardNumber indicates the card number is not exactly 16 digits.
	ErrInvalidCardNumber = fmt.Errorf("%w: card number must be numeric and 16 digits long", ErrValidation)

	// ErrInvalidAmount indicates the amount is outside the inclusive
	// 100-999 range.
	ErrInvalidAmount = fmt.Errorf("%w: amount must be exactly 3 digits (100-999)", ErrValidation)
)
