package template

import (
	"maps"

	"github.com/modu-ai/moai-starter/internal/domain"
)

// Model is the flat data handed to a template. Values are strings, bools,
// string slices or slices of nested maps.
type Model map[string]any

// ModelOption configures a Model.
type ModelOption func(Model)

// NewModel flattens bp into the keys every built-in template may use,
// then applies opts. The model never carries clocks or host data, so the
// same blueprint always renders the same bytes.
func NewModel(bp *domain.Blueprint, opts ...ModelOption) Model {
	id := bp.Identity()
	stack := bp.Stack()
	platform := bp.Platform()

	m := Model{
		"groupId":          id.GroupID(),
		"artifactId":       id.ArtifactID(),
		"mainClass":        id.MainClass(),
		"projectName":      bp.Name().String(),
		"description":      bp.Description().String(),
		"packageName":      bp.Package().String(),
		"packagePath":      bp.Package().Path(),
		"framework":        stack.Framework.Key(),
		"buildTool":        stack.BuildTool.Key(),
		"language":         stack.Language.Key(),
		"javaVersion":      platform.Java().Key(),
		"frameworkVersion": platform.FrameworkVersion().String(),
		"layout":           bp.Layout().Key(),
		"hexagonal":        bp.Layout() == domain.LayoutHexagonal,
		"subPackages":      bp.Layout().SubPackages(),
		"enforcement":      bp.Enforcement().Key(),
		"strict":           bp.Enforcement() == domain.EnforcementStrict,
		"sampleCode":       bp.SampleCode().Key(),
		"dependencies":     dependencyModels(bp.Dependencies()),
		"generatorVersion": "dev",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithGeneratorVersion records the generator build in generated files.
func WithGeneratorVersion(v string) ModelOption {
	return func(m Model) {
		if v != "" {
			m["generatorVersion"] = v
		}
	}
}

// WithValue sets an extra key. Built-in keys may be overridden.
func WithValue(key string, value any) ModelOption {
	return func(m Model) {
		m[key] = value
	}
}

// Clone returns a shallow copy of m.
func (m Model) Clone() Model {
	return maps.Clone(m)
}

func dependencyModels(deps domain.Dependencies) []map[string]any {
	items := deps.Items()
	out := make([]map[string]any, 0, len(items))
	for _, d := range items {
		version, hasVersion := d.Version()
		out = append(out, map[string]any{
			"groupId":             d.GroupID(),
			"artifactId":          d.ArtifactID(),
			"version":             version,
			"hasVersion":          hasVersion,
			"scope":               d.Scope().Key(),
			"gradleConfiguration": d.Scope().GradleConfiguration(),
			"coordinates":         d.Coordinates(),
		})
	}
	return out
}
