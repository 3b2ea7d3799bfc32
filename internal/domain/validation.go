package domain

import (
	"regexp"
	"time"
	"unicode"
)

var (
	emailPattern      = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	isoDatePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
)

// birthdateLayout is the expected reference layout for user birthdates.
const birthdateLayout = "2006-01-02"

// IsAlphanumericUsername reports whether s is non-empty and consists solely
// of letters and digits.
func IsAlphanumericUsername(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsPasswordLongEnough reports whether the password is at least 8 characters.
func IsPasswordLongEnough(s string) bool {
	return len(s) >= 8
}

// HasUpperAndDigit reports whether s contains at least one uppercase letter
// and at least one decimal digit.
func HasUpperAndDigit(s string) bool {
	var hasUpper, hasDigit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasDigit
}

// IsValidEmail reports whether s looks like local@domain.tld.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsISODate reports whether s matches the YYYY-MM-DD shape. It checks digits
// and hyphens only; calendar validity is intentionally not verified, so a
// string like "9999-99-99" passes.
func IsISODate(s string) bool {
	return isoDatePattern.MatchString(s)
}

// IsAtLeast18 reports whether the birthdate makes the user at least 18 years
// old. Age is computed as floor(days_since_birth / 365), a fixed 365-day-year
// approximation rather than a calendar-aware calculation. Returns false when
// the birthdate is malformed or not a real calendar date.
func IsAtLeast18(birthdate string) bool {
	return isAtLeast18At(birthdate, time.Now())
}

// isAtLeast18At is the testable core of IsAtLeast18 with an explicit
// reference time.
func isAtLeast18At(birthdate string, now time.Time) bool {
	if !IsISODate(birthdate) {
		return false
	}
	born, err := time.Parse(birthdateLayout, birthdate)
	if err != nil {
		return false
	}
	days := int(now.Sub(born).Hours() / 24)
	return days/365 >= 18
}

// IsValidCardNumber reports whether s is exactly 16 decimal digits.
func IsValidCardNumber(s string) bool {
	return cardNumberPattern.MatchString(s)
}

// IsValidAmount reports whether n is within the inclusive 100-999 range.
func IsValidAmount(n int) bool {
	return n >= 100 && n <= 999
}
