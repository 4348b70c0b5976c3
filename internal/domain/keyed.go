// Package domain holds the immutable value objects describing one project
// to generate and the Blueprint aggregate composing them. Values are only
// built through the field policies, so anything of these types that is not
// the zero value has already been validated.
package domain

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/modu-ai/moai-starter/internal/apperr"
)

// UnknownKeyViolation is reported when a raw key matches no variant.
const UnknownKeyViolation = "unknown-key"

// Keyed is implemented by closed enumerations with a stable user-facing key.
type Keyed interface {
	comparable
	Key() string
}

// ParseKey scans variants for a case-insensitive match of raw. On failure
// it returns "<field>.unknown-key" carrying the offending raw value.
func ParseKey[T Keyed](field, raw string, variants []T) (T, error) {
	want := cases.Fold().String(strings.TrimSpace(raw))
	for _, v := range variants {
		if cases.Fold().String(v.Key()) == want {
			return v, nil
		}
	}
	var zero T
	return zero, apperr.Violation(field, UnknownKeyViolation, raw)
}

// Keys lists the keys of variants, in order.
func Keys[T Keyed](variants []T) []string {
	keys := make([]string, len(variants))
	for i, v := range variants {
		keys[i] = v.Key()
	}
	return keys
}
