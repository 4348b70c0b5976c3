package domain

import "github.com/modu-ai/moai-starter/internal/apperr"

// BlueprintParts collects the already validated values a Blueprint is
// composed from.
type BlueprintParts struct {
	Identity     ProjectIdentity
	Name         ProjectName
	Description  ProjectDescription
	Package      PackageName
	Stack        TechStack
	Layout       ProjectLayout
	Enforcement  EnforcementMode
	SampleCode   SampleCodeLevel
	Platform     PlatformTarget
	Dependencies Dependencies
}

// Blueprint is the immutable, fully validated description of one project to generate.
// It is the only input the artifact pipeline accepts.
type Blueprint struct {
	parts BlueprintParts
}

// CodeIncompleteBlueprint is returned when a required part was never built.
const CodeIncompleteBlueprint apperr.Code = "blueprint.incomplete"

// NewBlueprint composes parts. The only check performed here is the
// cross-field one: the platform's framework release must belong to the
// tech stack's framework.
func NewBlueprint(parts BlueprintParts) (*Blueprint, error) {
	if parts.Identity.IsZero() {
		return nil, apperr.Application(CodeIncompleteBlueprint, "identity")
	}
	if parts.Package.String() == "" {
		return nil, apperr.Application(CodeIncompleteBlueprint, "package")
	}
	if parts.Platform.Java() == "" {
		return nil, apperr.Application(CodeIncompleteBlueprint, "platform")
	}
	if fw := parts.Platform.FrameworkVersion().Framework(); fw != parts.Stack.Framework {
		return nil, apperr.Violation("platform-target", "framework-mismatch", parts.Stack.Framework.Key(), fw.Key())
	}
	if parts.Layout == "" {
		parts.Layout = LayoutStandard
	}
	if parts.Enforcement == "" {
		parts.Enforcement = EnforcementNone
	}
	if parts.SampleCode == "" {
		parts.SampleCode = SampleCodeMinimal
	}
	// Re-wrap so the blueprint never shares a backing array with the caller.
	parts.Dependencies = NewDependencies(parts.Dependencies.items...)
	return &Blueprint{parts: parts}, nil
}

func (b *Blueprint) Identity() ProjectIdentity       { return b.parts.Identity }
func (b *Blueprint) Name() ProjectName               { return b.parts.Name }
func (b *Blueprint) Description() ProjectDescription { return b.parts.Description }
func (b *Blueprint) Package() PackageName            { return b.parts.Package }
func (b *Blueprint) Stack() TechStack                { return b.parts.Stack }
func (b *Blueprint) Layout() ProjectLayout           { return b.parts.Layout }
func (b *Blueprint) Enforcement() EnforcementMode    { return b.parts.Enforcement }
func (b *Blueprint) SampleCode() SampleCodeLevel     { return b.parts.SampleCode }
func (b *Blueprint) Platform() PlatformTarget        { return b.parts.Platform }
func (b *Blueprint) Dependencies() Dependencies      { return b.parts.Dependencies }
