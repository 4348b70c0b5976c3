package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/modu-ai/moai-starter/internal/policy"
)

// ProjectIdentity is the (groupId, artifactId) pair of the generated project.
type ProjectIdentity struct {
	groupID    string
	artifactID string
}

// NewProjectIdentity enforces both coordinates.
func NewProjectIdentity(groupID, artifactID string) (ProjectIdentity, error) {
	g, err := policy.GroupID.Enforce(groupID)
	if err != nil {
		return ProjectIdentity{}, err
	}
	a, err := policy.ArtifactID.Enforce(artifactID)
	if err != nil {
		return ProjectIdentity{}, err
	}
	return ProjectIdentity{groupID: g, artifactID: a}, nil
}

func (p ProjectIdentity) GroupID() string    { return p.groupID }
func (p ProjectIdentity) ArtifactID() string { return p.artifactID }

// IsZero reports whether p was not built through NewProjectIdentity.
func (p ProjectIdentity) IsZero() bool {
	return p.artifactID == ""
}

// MainClass derives the application class name: "demo-app" -> "DemoAppApplication".
func (p ProjectIdentity) MainClass() string {
	var b strings.Builder
	for _, part := range strings.Split(p.artifactID, "-") {
		b.WriteString(cases.Title(language.Und).String(part))
	}
	b.WriteString("Application")
	return b.String()
}

// ProjectName is the human-readable project name.
type ProjectName struct{ value string }

// NewProjectName enforces the project-name policy.
func NewProjectName(raw string) (ProjectName, error) {
	v, err := policy.ProjectName.Enforce(raw)
	if err != nil {
		return ProjectName{}, err
	}
	return ProjectName{value: v}, nil
}

func (n ProjectName) String() string { return n.value }

// ProjectDescription is the normalized free-text description; it may be empty.
type ProjectDescription struct{ value string }

// NewProjectDescription enforces the project-description policy.
func NewProjectDescription(raw string) (ProjectDescription, error) {
	v, err := policy.ProjectDescription.Enforce(raw)
	if err != nil {
		return ProjectDescription{}, err
	}
	return ProjectDescription{value: v}, nil
}

func (d ProjectDescription) String() string { return d.value }

// PackageName is the validated base package of the generated sources.
type PackageName struct{ value string }

// NewPackageName enforces the package-name policy.
func NewPackageName(raw string) (PackageName, error) {
	v, err := policy.PackageName.Enforce(raw)
	if err != nil {
		return PackageName{}, err
	}
	return PackageName{value: v}, nil
}

func (p PackageName) String() string { return p.value }

// Path returns the package as a slash-separated directory path.
func (p PackageName) Path() string {
	return strings.ReplaceAll(p.value, ".", "/")
}
