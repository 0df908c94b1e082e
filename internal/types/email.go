package types

import (
	"regexp"
	"strings"
)

// IsValidEmail reports whether email looks like a mailbox address.
// Surrounding whitespace is ignored since spreadsheet cells often carry it.
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" || !emailRegex.MatchString(email) {
		return false
	}
	return true
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
