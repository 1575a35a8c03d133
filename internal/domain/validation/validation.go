// Package validation holds the pure field-level rules shared by signup and
// the admin management endpoints. Each predicate is stateless; callers map a
// false result to the user-facing message for that field.
package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	nameMinLength    = 20
	nameMaxLength    = 60
	addressMaxLength = 400
	passwordMin      = 8
	passwordMax      = 16

	// passwordSpecials is the accepted punctuation set for passwords.
	passwordSpecials = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?"
)

// emailRegex accepts a local part of common mailbox characters and a domain
// of one or more dot-separated labels. Matching is done on the lower-cased
// input; emails are stored lower-cased as well.
var emailRegex = regexp.MustCompile(`^[a-z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-z0-9-]+(?:\.[a-z0-9-]+)*$`)

// ValidateName reports whether the trimmed name is 20-60 characters long.
func ValidateName(name string) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(name))

	return length >= nameMinLength && length <= nameMaxLength
}

// ValidateAddress reports whether the address is absent or at most 400
// characters. An empty address is valid; the field is optional.
func ValidateAddress(address string) bool {
	return utf8.RuneCountInString(address) <= addressMaxLength
}

// ValidateEmail reports whether the email has a local@domain shape.
// Comparison is case-insensitive.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(strings.ToLower(email))
}

// ValidatePassword reports whether the password is 8-16 characters long and
// contains at least one uppercase letter and one special character.
func ValidatePassword(password string) bool {
	length := utf8.RuneCountInString(password)
	if length < passwordMin || length > passwordMax {
		return false
	}

	var hasUpper, hasSpecial bool
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if strings.ContainsRune(passwordSpecials, r) {
			hasSpecial = true
		}
	}

	return hasUpper && hasSpecial
}

// NormalizeEmail lower-cases an email for storage and comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
