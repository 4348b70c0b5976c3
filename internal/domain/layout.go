package domain

import "slices"

// ProjectLayout selects the source package structure.
type ProjectLayout string

const (
	LayoutStandard  ProjectLayout = "standard"
	LayoutHexagonal ProjectLayout = "hexagonal"
)

// Layouts lists every layout.
var Layouts = []ProjectLayout{LayoutStandard, LayoutHexagonal}

var hexagonalPackages = []string{"adapter", "application", "bootstrap", "domain"}

func (l ProjectLayout) Key() string { return string(l) }

// SubPackages returns the extra packages created under the base package.
func (l ProjectLayout) SubPackages() []string {
	if l == LayoutHexagonal {
		return slices.Clone(hexagonalPackages)
	}
	return nil
}

// ParseLayout resolves a layout key.
func ParseLayout(raw string) (ProjectLayout, error) {
	return ParseKey("project-layout", raw, Layouts)
}

// EnforcementMode is the strictness of architecture governance checks
// shipped with the generated project.
type EnforcementMode string

const (
	EnforcementNone   EnforcementMode = "none"
	EnforcementBasic  EnforcementMode = "basic"
	EnforcementStrict EnforcementMode = "strict"
)

// EnforcementModes lists every enforcement mode.
var EnforcementModes = []EnforcementMode{EnforcementNone, EnforcementBasic, EnforcementStrict}

func (m EnforcementMode) Key() string { return string(m) }

// Enabled reports whether governance artifacts are produced.
func (m EnforcementMode) Enabled() bool {
	return m == EnforcementBasic || m == EnforcementStrict
}

// ParseEnforcementMode resolves an enforcement key.
func ParseEnforcementMode(raw string) (EnforcementMode, error) {
	return ParseKey("enforcement-mode", raw, EnforcementModes)
}

// SampleCodeLevel controls how much example code is generated.
type SampleCodeLevel string

const (
	SampleCodeNone    SampleCodeLevel = "none"
	SampleCodeMinimal SampleCodeLevel = "minimal"
	SampleCodeFull    SampleCodeLevel = "full"
)

// SampleCodeLevels lists every sample-code level.
var SampleCodeLevels = []SampleCodeLevel{SampleCodeNone, SampleCodeMinimal, SampleCodeFull}

func (s SampleCodeLevel) Key() string { return string(s) }

// ParseSampleCodeLevel resolves a sample-code level key.
func ParseSampleCodeLevel(raw string) (SampleCodeLevel, error) {
	return ParseKey("sample-code-level", raw, SampleCodeLevels)
}
