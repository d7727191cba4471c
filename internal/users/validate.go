package users

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// Digits with common separators; an optional leading + and an optional
	// leading parenthesized area code.
	mobilePattern = regexp.MustCompile(`^\+?[0-9(][0-9\s()-]{5,19}$`)
)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func validMobile(mobile string) bool {
	return mobilePattern.MatchString(mobile)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateSignUp checks required fields and field syntax before any store
// access. Returns nil when the input is acceptable.
func validateSignUp(in SignUpInput) *Error {
	if strings.TrimSpace(in.Name) == "" {
		return Invalid("name is required")
	}
	if strings.TrimSpace(in.Mobile) == "" {
		return Invalid("mobile is required")
	}
	if !validMobile(strings.TrimSpace(in.Mobile)) {
		return Invalid("invalid mobile number")
	}
	if in.Email != "" && !validEmail(normalizeEmail(in.Email)) {
		return Invalid("invalid email format")
	}
	if strings.TrimSpace(in.Country) == "" {
		return Invalid("country is required")
	}
	if strings.TrimSpace(in.City) == "" {
		return Invalid("city is required")
	}
	if in.Password == "" {
		return Invalid("password is required")
	}
	return nil
}
