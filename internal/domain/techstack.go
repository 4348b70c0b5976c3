package domain

// Framework is the application framework of the generated project.
type Framework string

const (
	FrameworkSpringBoot Framework = "spring-boot"
	FrameworkQuarkus    Framework = "quarkus"
)

// Frameworks lists every known framework.
var Frameworks = []Framework{FrameworkSpringBoot, FrameworkQuarkus}

func (f Framework) Key() string { return string(f) }

// BuildTool is the build system of the generated project.
type BuildTool string

const (
	BuildToolMaven  BuildTool = "maven"
	BuildToolGradle BuildTool = "gradle"
)

// BuildTools lists every known build tool.
var BuildTools = []BuildTool{BuildToolMaven, BuildToolGradle}

func (b BuildTool) Key() string { return string(b) }

// Language is the source language of the generated project.
type Language string

const (
	LanguageJava   Language = "java"
	LanguageKotlin Language = "kotlin"
)

// Languages lists every known language.
var Languages = []Language{LanguageJava, LanguageKotlin}

func (l Language) Key() string { return string(l) }

// TechStack is the (framework, build tool, language) triple selecting a profile.
type TechStack struct {
	Framework Framework
	BuildTool BuildTool
	Language  Language
}

// NewTechStack resolves the three keys case-insensitively.
func NewTechStack(framework, buildTool, language string) (TechStack, error) {
	f, err := ParseKey("framework", framework, Frameworks)
	if err != nil {
		return TechStack{}, err
	}
	b, err := ParseKey("build-tool", buildTool, BuildTools)
	if err != nil {
		return TechStack{}, err
	}
	l, err := ParseKey("language", language, Languages)
	if err != nil {
		return TechStack{}, err
	}
	return TechStack{Framework: f, BuildTool: b, Language: l}, nil
}

// String renders "framework:buildTool:language".
func (t TechStack) String() string {
	return string(t.Framework) + ":" + string(t.BuildTool) + ":" + string(t.Language)
}
