// Package policy turns raw, untrusted strings into canonical field values.
// Every policy normalizes first (never failing) and then validates with an
// ordered rule.All, reporting the first broken invariant as a domain error
// coded "<field>.<violation>".
package policy

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/modu-ai/moai-starter/internal/apperr"
	"github.com/modu-ai/moai-starter/internal/rule"
)

// Field identifies the input field a policy guards. It is the first half
// of every domain error code.
type Field string

// Fields guarded by the policies of this package.
const (
	FieldGroupID              Field = "group-id"
	FieldArtifactID           Field = "artifact-id"
	FieldProjectName          Field = "project-name"
	FieldProjectDescription   Field = "project-description"
	FieldPackageName          Field = "package-name"
	FieldDependencyGroupID    Field = "dependency-group-id"
	FieldDependencyArtifactID Field = "dependency-artifact-id"
	FieldDependencyVersion    Field = "dependency-version"
	FieldFilePath             Field = "file-path"
	FieldFileCharset          Field = "file-charset"
	FieldFileContent          Field = "file-content"
)

// Policy is a normalize+validate pair for one field.
type Policy struct {
	field     Field
	normalize func(string) string
	validate  rule.Rule[string]
}

// New builds a policy. A nil normalize leaves input untouched.
func New(field Field, normalize func(string) string, rules ...rule.Rule[string]) Policy {
	if normalize == nil {
		normalize = func(s string) string { return s }
	}
	return Policy{field: field, normalize: normalize, validate: rule.All(rules...)}
}

// Field returns the guarded field.
func (p Policy) Field() Field {
	return p.field
}

// Normalize reshapes raw input. It never fails.
func (p Policy) Normalize(raw string) string {
	return p.normalize(raw)
}

// Validate checks an already normalized value.
func (p Policy) Validate(value string) error {
	if err := p.validate(value); err != nil {
		return Wrap(p.field, err)
	}
	return nil
}

// Enforce normalizes raw and validates the result, returning the canonical value.
func (p Policy) Enforce(raw string) (string, error) {
	v := p.normalize(raw)
	if err := p.Validate(v); err != nil {
		return "", err
	}
	return v, nil
}

// Wrap converts a rule failure into a coded domain violation for field.
// Errors that are not rule failures are reported as unexpected.
func Wrap(field Field, err error) error {
	var f *rule.Failure
	if errors.As(err, &f) {
		return apperr.Violation(string(field), string(f.Violation), f.Args...)
	}
	return apperr.Unexpected(err)
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

var (
	groupIDPattern    = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)*$`)
	artifactIDPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)
	coordinatePattern = regexp.MustCompile(`^[A-Za-z0-9_.\-]+$`)
	versionPattern    = regexp.MustCompile(`^[A-Za-z0-9._\-+\[\](),:{}$\s]+$`)
)

// GroupID guards the project group id, e.g. "com.acme".
var GroupID = New(FieldGroupID,
	func(s string) string { return lower(trim(s)) },
	rule.NotBlank(),
	rule.Length(1, 100),
	rule.Matches(groupIDPattern, rule.InvalidFormatViolation),
)

// ArtifactID guards the project artifact id, e.g. "demo-app".
var ArtifactID = New(FieldArtifactID,
	func(s string) string { return lower(trim(s)) },
	rule.NotBlank(),
	rule.Length(1, 64),
	rule.Matches(artifactIDPattern, rule.InvalidFormatViolation),
)

// ProjectName guards the human-readable project name.
var ProjectName = New(FieldProjectName,
	collapseSpace,
	rule.NotBlank(),
	rule.Length(1, 64),
	rule.NoControlChars(),
)

// ProjectDescription guards the free-text description. Empty is allowed.
var ProjectDescription = New(FieldProjectDescription,
	func(s string) string { return lower(collapseSpace(s)) },
	rule.Length(0, 280),
	rule.NoControlChars(),
)

// DependencyGroupID guards the group coordinate of a dependency.
var DependencyGroupID = New(FieldDependencyGroupID,
	trim,
	rule.NotBlank(),
	rule.Length(1, 100),
	rule.Matches(coordinatePattern, rule.InvalidCharsViolation),
)

// DependencyArtifactID guards the artifact coordinate of a dependency.
var DependencyArtifactID = New(FieldDependencyArtifactID,
	trim,
	rule.NotBlank(),
	rule.Length(1, 100),
	rule.Matches(coordinatePattern, rule.InvalidCharsViolation),
)

// DependencyVersion guards an explicit dependency version. Blank input is
// an error here; deciding that a blank version means "no version" belongs
// to the caller mapping raw input.
var DependencyVersion = New(FieldDependencyVersion,
	trim,
	rule.NotBlank(),
	rule.Length(1, 100),
	rule.Matches(versionPattern, rule.InvalidCharsViolation),
)
