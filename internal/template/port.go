package template

import (
	"github.com/modu-ai/moai-starter/internal/apperr"
	"github.com/modu-ai/moai-starter/internal/resource"
)

// Port renders one template into a text resource. Generators depend on
// this interface only, never on the template engine.
type Port interface {
	Render(outputPath, templateID string, model Model) (resource.Text, error)
}

// RendererPort adapts a Renderer to Port.
type RendererPort struct {
	renderer Renderer
	charset  string
}

// NewPort creates a Port emitting text in charset. An empty charset means
// resource.DefaultCharset.
func NewPort(r Renderer, charset string) *RendererPort {
	if charset == "" {
		charset = resource.DefaultCharset
	}
	return &RendererPort{renderer: r, charset: charset}
}

// Render executes templateID against model. Every engine failure is
// reported as template.render-failed with the template id as its argument.
func (p *RendererPort) Render(outputPath, templateID string, model Model) (resource.Text, error) {
	out, err := p.renderer.Render(templateID, map[string]any(model))
	if err != nil {
		return resource.Text{}, apperr.Adapter(CodeRenderFailed, err, templateID)
	}
	return resource.NewText(outputPath, string(out), p.charset)
}
