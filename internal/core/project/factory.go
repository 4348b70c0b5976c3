// Package project assembles validated blueprints from raw generation
// requests and drives a request through profile resolution, the artifact
// pipeline, the writer and the archiver.
package project

import (
	"slices"
	"strings"

	"github.com/modu-ai/moai-starter/internal/apperr"
	"github.com/modu-ai/moai-starter/internal/domain"
	"github.com/modu-ai/moai-starter/internal/profile"
)

// Defaults fill request fields left blank by the caller.
type Defaults struct {
	Profile     string
	Layout      string
	Enforcement string
	SampleCode  string
	JavaVersion string
}

// Factory turns a Request into a Blueprint. Every field is validated by
// its value constructor; the first failure aborts, so no partial
// blueprint ever exists.
type Factory struct {
	defaults Defaults
}

// NewFactory creates a Factory applying defaults.
func NewFactory(defaults Defaults) *Factory {
	return &Factory{defaults: defaults}
}

// Build validates req and composes the blueprint.
func (f *Factory) Build(req Request) (*domain.Blueprint, error) {
	id, err := domain.NewProjectIdentity(req.GroupID, req.ArtifactID)
	if err != nil {
		return nil, err
	}
	name, err := domain.NewProjectName(orDefault(req.Name, id.ArtifactID()))
	if err != nil {
		return nil, err
	}
	desc, err := domain.NewProjectDescription(req.Description)
	if err != nil {
		return nil, err
	}
	pkg, err := domain.NewPackageName(orDefault(req.PackageName, DefaultPackageName(id)))
	if err != nil {
		return nil, err
	}
	stack, err := ParseStack(orDefault(req.Profile, f.defaults.Profile))
	if err != nil {
		return nil, err
	}

	parts := domain.BlueprintParts{
		Identity:    id,
		Name:        name,
		Description: desc,
		Package:     pkg,
		Stack:       stack,
	}
	if err := f.options(req, &parts); err != nil {
		return nil, err
	}
	if parts.Platform, err = platform(stack.Framework, orDefault(req.JavaVersion, f.defaults.JavaVersion), req.FrameworkVersion); err != nil {
		return nil, err
	}
	if parts.Dependencies, err = Dependencies(req.Dependencies); err != nil {
		return nil, err
	}
	return domain.NewBlueprint(parts)
}

func (f *Factory) options(req Request, parts *domain.BlueprintParts) error {
	var err error
	if raw := orDefault(req.Layout, f.defaults.Layout); raw != "" {
		if parts.Layout, err = domain.ParseLayout(raw); err != nil {
			return err
		}
	}
	if raw := orDefault(req.Enforcement, f.defaults.Enforcement); raw != "" {
		if parts.Enforcement, err = domain.ParseEnforcementMode(raw); err != nil {
			return err
		}
	}
	if raw := orDefault(req.SampleCode, f.defaults.SampleCode); raw != "" {
		if parts.SampleCode, err = domain.ParseSampleCodeLevel(raw); err != nil {
			return err
		}
	}
	return nil
}

// Dependencies maps raw inputs onto validated dependencies, preserving
// order. A blank or whitespace-only version or scope is treated as absent.
func Dependencies(inputs []DependencyInput) (domain.Dependencies, error) {
	deps := make([]domain.Dependency, 0, len(inputs))
	for _, in := range inputs {
		d, err := domain.NewDependency(in.GroupID, in.ArtifactID)
		if err != nil {
			return domain.Dependencies{}, err
		}
		if strings.TrimSpace(in.Version) != "" {
			if d, err = d.WithVersion(in.Version); err != nil {
				return domain.Dependencies{}, err
			}
		}
		if strings.TrimSpace(in.Scope) != "" {
			if d, err = d.WithScope(in.Scope); err != nil {
				return domain.Dependencies{}, err
			}
		}
		deps = append(deps, d)
	}
	return domain.NewDependencies(deps...), nil
}

// DefaultPackageName derives "<groupId>.<artifactId without dashes>".
func DefaultPackageName(id domain.ProjectIdentity) string {
	return id.GroupID() + "." + strings.ReplaceAll(id.ArtifactID(), "-", "")
}

// ParseStack accepts a profile id ("spring-boot-maven-java") or an
// explicit "framework:buildTool:language" triple. Triples are not checked
// against the supported profiles here; resolution does that.
func ParseStack(raw string) (domain.TechStack, error) {
	if strings.Contains(raw, ":") {
		parts := strings.Split(raw, ":")
		if len(parts) != 3 {
			return domain.TechStack{}, apperr.Violation("tech-stack", "invalid-format", raw)
		}
		return domain.NewTechStack(parts[0], parts[1], parts[2])
	}
	t, err := profile.ParseType(raw)
	if err != nil {
		return domain.TechStack{}, err
	}
	return t.Stack(), nil
}

// platform pairs the Java release with the requested framework release, or
// with the newest release of framework that supports it.
func platform(framework domain.Framework, rawJava, rawRelease string) (domain.PlatformTarget, error) {
	java, err := domain.ParseJavaVersion(rawJava)
	if err != nil {
		return domain.PlatformTarget{}, err
	}
	if strings.TrimSpace(rawRelease) != "" {
		release, err := domain.ParseFrameworkVersion(rawRelease)
		if err != nil {
			return domain.PlatformTarget{}, err
		}
		return domain.NewPlatformTarget(java, release)
	}
	for _, v := range slices.Backward(domain.FrameworkVersions) {
		if v.Framework() == framework && v.Supports(java) {
			return domain.NewPlatformTarget(java, v)
		}
	}
	return domain.PlatformTarget{}, apperr.Violation("platform-target", "no-release", java.Key(), framework.Key())
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
