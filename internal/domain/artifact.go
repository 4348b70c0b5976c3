package domain

import (
	"strings"

	"github.com/modu-ai/moai-starter/internal/apperr"
)

// ArtifactKey identifies one category of generated output.
type ArtifactKey string

const (
	ArtifactBuildConfig            ArtifactKey = "build-config"
	ArtifactBuildToolMetadata      ArtifactKey = "build-tool-metadata"
	ArtifactIgnoreRules            ArtifactKey = "ignore-rules"
	ArtifactSourceLayout           ArtifactKey = "source-layout"
	ArtifactAppConfig              ArtifactKey = "app-config"
	ArtifactMainEntry              ArtifactKey = "main-entry"
	ArtifactTestEntry              ArtifactKey = "test-entry"
	ArtifactSampleCode             ArtifactKey = "sample-code"
	ArtifactArchitectureGovernance ArtifactKey = "architecture-governance"
	ArtifactDocumentation          ArtifactKey = "documentation"
)

// ArtifactKeys lists every artifact key in default pipeline order.
var ArtifactKeys = []ArtifactKey{
	ArtifactBuildConfig,
	ArtifactBuildToolMetadata,
	ArtifactIgnoreRules,
	ArtifactSourceLayout,
	ArtifactAppConfig,
	ArtifactMainEntry,
	ArtifactTestEntry,
	ArtifactSampleCode,
	ArtifactArchitectureGovernance,
	ArtifactDocumentation,
}

func (k ArtifactKey) Key() string { return string(k) }

// Order is the default pipeline priority of the artifact; lower runs first.
func (k ArtifactKey) Order() int {
	for i, v := range ArtifactKeys {
		if v == k {
			return (i + 1) * 10
		}
	}
	return 1000
}

// CodeUnknownArtifactKey is returned for keys outside the closed set.
const CodeUnknownArtifactKey apperr.Code = "artifact-key.unknown"

// ParseArtifactKey resolves an artifact key. Unlike user-facing keys this
// lookup happens at use-case level, so failure is an application error.
func ParseArtifactKey(raw string) (ArtifactKey, error) {
	k, err := ParseKey("artifact-key", raw, ArtifactKeys)
	if err != nil {
		return "", apperr.Application(CodeUnknownArtifactKey, strings.TrimSpace(raw))
	}
	return k, nil
}
