package project

import (
	"strings"

	"github.com/modu-ai/moai-starter/internal/apperr"
)

// DependencyInput is one raw dependency as supplied by the caller. Blank
// version or scope means absent.
type DependencyInput struct {
	GroupID    string
	ArtifactID string
	Version    string
	Scope      string
}

// Request holds the raw, unvalidated values of one generation request.
type Request struct {
	GroupID          string
	ArtifactID       string
	Name             string // Defaults to ArtifactID.
	Description      string
	PackageName      string // Defaults to <groupId>.<artifactId without dashes>.
	Profile          string // Profile id or framework:buildTool:language.
	Layout           string
	Enforcement      string
	SampleCode       string
	JavaVersion      string
	FrameworkVersion string // Defaults to the newest release supporting JavaVersion.
	Dependencies     []DependencyInput
	TargetDir        string // Defaults to ArtifactID.
	Force            bool
	Archive          bool
}

// ParseDependency reads a dependency given as an alias or as
// group:artifact[:version[:scope]]. Aliases map to the same notation.
func ParseDependency(raw string, aliases map[string]string) (DependencyInput, error) {
	spec := strings.TrimSpace(raw)
	if target, ok := aliases[spec]; ok {
		spec = target
	}
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 4 {
		return DependencyInput{}, apperr.Violation("dependency", "invalid-format", raw)
	}
	in := DependencyInput{GroupID: parts[0], ArtifactID: parts[1]}
	if len(parts) > 2 {
		in.Version = parts[2]
	}
	if len(parts) > 3 {
		in.Scope = parts[3]
	}
	return in, nil
}

// ParseDependencies parses every entry of raw, stopping at the first error.
func ParseDependencies(raw []string, aliases map[string]string) ([]DependencyInput, error) {
	out := make([]DependencyInput, 0, len(raw))
	for _, r := range raw {
		in, err := ParseDependency(r, aliases)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}
