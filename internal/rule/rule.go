// Package rule provides composable validation primitives. A Rule asserts a
// single property of a value and returns a *Failure naming the violated
// property, or nil. Rules are composed with All, whose order fixes which
// violation is reported when several apply.
package rule

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Violation names a broken invariant, e.g. "not-blank" or "length".
type Violation string

// Violations reported by the primitives in this package.
const (
	NotBlankViolation       Violation = "not-blank"
	LengthViolation         Violation = "length"
	InvalidCharsViolation   Violation = "invalid-chars"
	InvalidFormatViolation  Violation = "invalid-format"
	SegmentFormatViolation  Violation = "segment-format"
	ReservedPrefixViolation Violation = "reserved-prefix"
	ControlCharsViolation   Violation = "control-chars"
	RequiredViolation       Violation = "required"
)

// Failure is the error returned by a failing Rule.
type Failure struct {
	Violation Violation
	Args      []any
}

// Error implements the error interface.
func (f *Failure) Error() string {
	if len(f.Args) == 0 {
		return string(f.Violation)
	}
	return fmt.Sprintf("%s %v", f.Violation, f.Args)
}

// Fail builds a Failure.
func Fail(v Violation, args ...any) *Failure {
	return &Failure{Violation: v, Args: args}
}

// Rule checks one value. A nil return means the value satisfies the rule.
type Rule[T any] func(value T) error

// All evaluates rules in order and returns the first failure unchanged.
func All[T any](rules ...Rule[T]) Rule[T] {
	return func(value T) error {
		for _, r := range rules {
			if err := r(value); err != nil {
				return err
			}
		}
		return nil
	}
}

// NotBlank rejects empty and whitespace-only strings.
func NotBlank() Rule[string] {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return Fail(NotBlankViolation)
		}
		return nil
	}
}

// Length bounds the rune count of a string to [min, max].
func Length(minLen, maxLen int) Rule[string] {
	return func(s string) error {
		n := utf8.RuneCountInString(s)
		if n < minLen || n > maxLen {
			return Fail(LengthViolation, minLen, maxLen, n)
		}
		return nil
	}
}

// Matches requires s to match re, reporting v otherwise.
func Matches(re *regexp.Regexp, v Violation) Rule[string] {
	return func(s string) error {
		if !re.MatchString(s) {
			return Fail(v, re.String())
		}
		return nil
	}
}

// Segments splits s on sep and requires every segment to match re.
// The first offending segment is reported.
func Segments(sep string, re *regexp.Regexp) Rule[string] {
	return func(s string) error {
		for _, seg := range strings.Split(s, sep) {
			if !re.MatchString(seg) {
				return Fail(SegmentFormatViolation, seg)
			}
		}
		return nil
	}
}

// NoReservedPrefix rejects values equal to a reserved namespace or nested
// below one: "java" matches "java" and "java.util" but not "javascript".
// Comparison uses Unicode case folding.
func NoReservedPrefix(sep string, reserved ...string) Rule[string] {
	folded := make([]string, len(reserved))
	for i, r := range reserved {
		folded[i] = cases.Fold().String(r)
	}
	return func(s string) error {
		// Casers are stateful; one per call keeps rules safe to share.
		v := cases.Fold().String(s)
		for i, r := range folded {
			if v == r || strings.HasPrefix(v, r+sep) {
				return Fail(ReservedPrefixViolation, reserved[i])
			}
		}
		return nil
	}
}

// NoControlChars rejects any Unicode control character.
func NoControlChars() Rule[string] {
	return func(s string) error {
		for i, r := range s {
			if unicode.IsControl(r) {
				return Fail(ControlCharsViolation, i)
			}
		}
		return nil
	}
}
