// Package profile maps a tech stack onto a supported architectural profile
// and the generator set registered for it.
package profile

import (
	"github.com/modu-ai/moai-starter/internal/apperr"
	"github.com/modu-ai/moai-starter/internal/domain"
)

// Adapter error codes for profile resolution.
const (
	CodeUnsupportedType apperr.Code = "profile.unsupported-type"
	CodePortNotFound    apperr.Code = "profile.artifacts-port-not-found"
)

// Type is a supported (framework, build tool, language) combination.
type Type string

const (
	SpringBootMavenJava  Type = "spring-boot-maven-java"
	SpringBootGradleJava Type = "spring-boot-gradle-java"
)

// Types lists every supported profile.
var Types = []Type{SpringBootMavenJava, SpringBootGradleJava}

var stacks = map[Type]domain.TechStack{
	SpringBootMavenJava:  {Framework: domain.FrameworkSpringBoot, BuildTool: domain.BuildToolMaven, Language: domain.LanguageJava},
	SpringBootGradleJava: {Framework: domain.FrameworkSpringBoot, BuildTool: domain.BuildToolGradle, Language: domain.LanguageJava},
}

func (t Type) Key() string { return string(t) }

// Stack returns the tech stack t was defined for.
func (t Type) Stack() domain.TechStack { return stacks[t] }

// Resolve returns the profile whose stack equals stack exactly.
func Resolve(stack domain.TechStack) (Type, error) {
	for _, t := range Types {
		if stacks[t] == stack {
			return t, nil
		}
	}
	return "", apperr.Adapter(CodeUnsupportedType, nil, stack.String())
}

// ParseType resolves a profile key case-insensitively.
func ParseType(raw string) (Type, error) {
	return domain.ParseKey("profile", raw, Types)
}
