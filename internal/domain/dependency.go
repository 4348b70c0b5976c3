package domain

import (
	"slices"
	"strings"

	"github.com/modu-ai/moai-starter/internal/policy"
)

// Scope is the build scope of a dependency. The zero value means no scope
// was given and the build tool default applies.
type Scope string

const (
	ScopeDefault  Scope = ""
	ScopeCompile  Scope = "compile"
	ScopeRuntime  Scope = "runtime"
	ScopeTest     Scope = "test"
	ScopeProvided Scope = "provided"
)

// Scopes lists the explicit scopes.
var Scopes = []Scope{ScopeCompile, ScopeRuntime, ScopeTest, ScopeProvided}

func (s Scope) Key() string { return string(s) }

// String returns the upper-case scope name, "DEFAULT" for the zero value.
func (s Scope) String() string {
	if s == ScopeDefault {
		return "DEFAULT"
	}
	return strings.ToUpper(string(s))
}

// GradleConfiguration maps the scope onto a Gradle configuration name.
func (s Scope) GradleConfiguration() string {
	switch s {
	case ScopeRuntime:
		return "runtimeOnly"
	case ScopeTest:
		return "testImplementation"
	case ScopeProvided:
		return "compileOnly"
	default:
		return "implementation"
	}
}

// ParseScope resolves a scope key case-insensitively.
func ParseScope(raw string) (Scope, error) {
	return ParseKey("dependency-scope", raw, Scopes)
}

// Dependency is one library coordinate with an optional version and scope.
type Dependency struct {
	groupID    string
	artifactID string
	version    string
	scope      Scope
}

// NewDependency builds a dependency without version or scope.
func NewDependency(groupID, artifactID string) (Dependency, error) {
	g, err := policy.DependencyGroupID.Enforce(groupID)
	if err != nil {
		return Dependency{}, err
	}
	a, err := policy.DependencyArtifactID.Enforce(artifactID)
	if err != nil {
		return Dependency{}, err
	}
	return Dependency{groupID: g, artifactID: a}, nil
}

// WithVersion returns a copy of d carrying the enforced version.
// A blank version is an error; callers decide beforehand whether blank
// input means "no version".
func (d Dependency) WithVersion(raw string) (Dependency, error) {
	v, err := policy.DependencyVersion.Enforce(raw)
	if err != nil {
		return Dependency{}, err
	}
	d.version = v
	return d, nil
}

// WithScope returns a copy of d carrying the parsed scope.
func (d Dependency) WithScope(raw string) (Dependency, error) {
	s, err := ParseScope(raw)
	if err != nil {
		return Dependency{}, err
	}
	d.scope = s
	return d, nil
}

func (d Dependency) GroupID() string    { return d.groupID }
func (d Dependency) ArtifactID() string { return d.artifactID }
func (d Dependency) Scope() Scope       { return d.scope }

// Version returns the version and whether one was set.
func (d Dependency) Version() (string, bool) {
	return d.version, d.version != ""
}

// Coordinates renders "group:artifact[:version]".
func (d Dependency) Coordinates() string {
	c := d.groupID + ":" + d.artifactID
	if d.version != "" {
		c += ":" + d.version
	}
	return c
}

// Dependencies is an ordered collection of Dependency. Order is preserved
// exactly and duplicates are kept.
type Dependencies struct {
	items []Dependency
}

// NewDependencies copies items into a new collection.
func NewDependencies(items ...Dependency) Dependencies {
	return Dependencies{items: slices.Clone(items)}
}

// Items returns a copy of the dependencies in insertion order.
func (d Dependencies) Items() []Dependency {
	return slices.Clone(d.items)
}

func (d Dependencies) Len() int { return len(d.items) }
