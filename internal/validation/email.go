package validation

import (
	"strings"
	"unicode"
)

// IsValidEmail reports whether the address passes a conservative syntax
// check: exactly one '@', a non-empty local part, and a domain containing
// at least one dot with characters on both sides. Whitespace anywhere makes
// the address invalid. This check is deliberately independent of the
// struct-tag validator so callers can apply it as an extra semantic rule.
func IsValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	if strings.IndexFunc(email, unicode.IsSpace) >= 0 {
		return false
	}

	local, domain, found := strings.Cut(email, "@")
	if !found || strings.Contains(domain, "@") {
		return false
	}
	if local == "" {
		return false
	}

	dot := strings.LastIndex(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}
	return true
}
