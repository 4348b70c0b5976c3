// Package generator implements the artifact generators of the built-in
// profiles. Every generator is driven by one catalog entry.
package generator

import (
	"strings"

	"github.com/modu-ai/moai-starter/internal/domain"
	"github.com/modu-ai/moai-starter/internal/profile"
	"github.com/modu-ai/moai-starter/internal/resource"
	"github.com/modu-ai/moai-starter/internal/template"
)

// Output path tokens expanded per blueprint.
const (
	TokenPackagePath = "{packagePath}"
	TokenMainClass   = "{mainClass}"
	TokenArtifactID  = "{artifactId}"
)

// ExpandOutput replaces the output path tokens with values from bp.
func ExpandOutput(output string, bp *domain.Blueprint) string {
	return strings.NewReplacer(
		TokenPackagePath, bp.Package().Path(),
		TokenMainClass, bp.Identity().MainClass(),
		TokenArtifactID, bp.Identity().ArtifactID(),
	).Replace(output)
}

// templated renders the catalog templates of one artifact and copies its
// static files.
type templated struct {
	spec     profile.ArtifactSpec
	order    int
	port     template.Port
	static   []staticFile
	modelOpt []template.ModelOption
	when     func(*domain.Blueprint) bool
}

func (g *templated) Key() domain.ArtifactKey { return g.spec.Key }
func (g *templated) Order() int              { return g.order }

func (g *templated) Supports(bp *domain.Blueprint) bool {
	if !g.spec.Enabled {
		return false
	}
	return g.when == nil || g.when(bp)
}

func (g *templated) Generate(bp *domain.Blueprint) ([]resource.Resource, error) {
	model := template.NewModel(bp, g.modelOpt...)

	out := make([]resource.Resource, 0, len(g.spec.Templates)+len(g.static))
	for _, t := range g.spec.Templates {
		if !t.Matches(bp) {
			continue
		}
		txt, err := g.port.Render(ExpandOutput(t.Output, bp), g.spec.TemplateID(t), model)
		if err != nil {
			return nil, err
		}
		out = append(out, txt)
	}
	for _, f := range g.static {
		r, err := f.resource()
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func sampleCodeEnabled(bp *domain.Blueprint) bool {
	return bp.SampleCode() != domain.SampleCodeNone
}

func governanceEnabled(bp *domain.Blueprint) bool {
	return bp.Enforcement().Enabled()
}
