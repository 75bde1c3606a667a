package validator

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Email validates an address with net/mail plus the usual web-form restrictions:
// a bare address (no display name) and a dotted domain.
func Email() Validator[string] {
	return FromKey(isEmail, "must be a valid email address", "validation.email", nil)
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// Regex validates against a pattern. The pattern is compiled once, when the
// validator is built, and panics if it is invalid.
func Regex(pattern, description string) Validator[string] {
	re := regexp.MustCompile(pattern)
	return FromKey(re.MatchString, fmt.Sprintf("must match %s pattern", description), "validation.regex_pattern", map[string]any{
		"pattern":     pattern,
		"description": description,
	})
}

// UUID validates the canonical 36 character UUID form.
func UUID() Validator[string] {
	return FromKey(func(value string) bool {
		if len(value) != 36 {
			return false
		}
		if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
			return false
		}
		_, err := uuid.Parse(value)
		return err == nil
	}, "must be a valid UUID", "validation.uuid", nil)
}

func NonNilUUID() Validator[uuid.UUID] {
	return FromKey(func(value uuid.UUID) bool {
		return value != uuid.Nil
	}, "UUID cannot be nil", "validation.uuid_not_nil", nil)
}
