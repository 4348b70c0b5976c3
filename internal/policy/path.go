package policy

import (
	"regexp"
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/modu-ai/moai-starter/internal/rule"
)

// Violations specific to generated file paths and charsets.
const (
	AbsoluteNotAllowedViolation rule.Violation = "absolute-not-allowed"
	EmptySegmentsViolation      rule.Violation = "empty-segments"
	TraversalViolation          rule.Violation = "traversal"
	UnsupportedViolation        rule.Violation = "unsupported"
)

var windowsVolume = regexp.MustCompile(`^[A-Za-z]:`)

func pathSegments(p string) []string {
	var segs []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

func required() rule.Rule[string] {
	return func(p string) error {
		if p == "" {
			return rule.Fail(rule.RequiredViolation)
		}
		return nil
	}
}

func notAbsolute() rule.Rule[string] {
	return func(p string) error {
		if strings.HasPrefix(p, "/") || windowsVolume.MatchString(p) {
			return rule.Fail(AbsoluteNotAllowedViolation, p)
		}
		return nil
	}
}

func hasSegments() rule.Rule[string] {
	return func(p string) error {
		if len(pathSegments(p)) == 0 {
			return rule.Fail(EmptySegmentsViolation, p)
		}
		return nil
	}
}

func noTraversal() rule.Rule[string] {
	return func(p string) error {
		for _, s := range pathSegments(p) {
			if s == "." || s == ".." {
				return rule.Fail(TraversalViolation, p)
			}
		}
		return nil
	}
}

var filePath = New(FieldFilePath,
	func(s string) string { return strings.ReplaceAll(s, `\`, "/") },
	required(),
	notAbsolute(),
	hasSegments(),
	noTraversal(),
)

// FilePath validates a generated resource path and returns its canonical
// slash-separated form without empty segments ("a//b/" -> "a/b").
func FilePath(raw string) (string, error) {
	p, err := filePath.Enforce(raw)
	if err != nil {
		return "", err
	}
	return strings.Join(pathSegments(p), "/"), nil
}

func knownCharset() rule.Rule[string] {
	return func(name string) error {
		if _, err := htmlindex.Get(name); err != nil {
			return rule.Fail(UnsupportedViolation, name)
		}
		return nil
	}
}

// FileCharset guards the character encoding name of a text resource.
var FileCharset = New(FieldFileCharset,
	func(s string) string { return lower(trim(s)) },
	required(),
	knownCharset(),
)
