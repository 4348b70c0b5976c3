package policy

import (
	"regexp"
	"strings"

	"github.com/modu-ai/moai-starter/internal/rule"
)

// ReservedNamespaces may not be used as, or as a prefix of, a package name.
var ReservedNamespaces = []string{"java", "javax", "sun", "com.sun"}

var (
	packageSeparators = strings.NewReplacer(" ", ".", "_", ".", "-", ".")
	repeatedDots      = regexp.MustCompile(`\.{2,}`)
	packageSegment    = regexp.MustCompile(`^[a-z][a-z0-9]*$`)
)

// normalizePackageName trims, turns separators into dots, collapses dot
// runs, strips edge dots and lower-cases.
func normalizePackageName(raw string) string {
	s := packageSeparators.Replace(trim(raw))
	s = repeatedDots.ReplaceAllString(s, ".")
	s = strings.Trim(s, ".")
	return lower(s)
}

// PackageName guards the base package, e.g. " Com.Acme..Demo " -> "com.acme.demo".
var PackageName = New(FieldPackageName,
	normalizePackageName,
	rule.NotBlank(),
	rule.Length(3, 255),
	rule.Segments(".", packageSegment),
	rule.NoReservedPrefix(".", ReservedNamespaces...),
)
