package generator

import (
	"io/fs"
	"slices"

	"github.com/modu-ai/moai-starter/internal/domain"
	"github.com/modu-ai/moai-starter/internal/pipeline"
	"github.com/modu-ai/moai-starter/internal/profile"
	"github.com/modu-ai/moai-starter/internal/template"
)

// Port is the profile.ArtifactsPort of one profile. Its generator list is
// fixed at construction.
type Port struct {
	profile    profile.Type
	generators []pipeline.Generator
}

// Option configures NewPort.
type Option func(*options)

type options struct {
	modelOpts []template.ModelOption
}

// WithModelOptions applies opts to every template model.
func WithModelOptions(opts ...template.ModelOption) Option {
	return func(o *options) {
		o.modelOpts = append(o.modelOpts, opts...)
	}
}

// NewPort builds one generator per catalog artifact of typ. Catalog
// problems (missing profile, missing template base, unreadable static
// files) fail here rather than during a generation request.
func NewPort(typ profile.Type, catalog *profile.Catalog, renderer template.Port, assets fs.FS, opts ...Option) (*Port, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	artifacts, err := catalog.Artifacts(typ)
	if err != nil {
		return nil, err
	}

	gens := make([]pipeline.Generator, 0, len(artifacts))
	for i, a := range artifacts {
		spec, err := catalog.ArtifactSpec(typ, a.Key)
		if err != nil {
			return nil, err
		}
		static, err := loadStatic(assets, spec.StaticDir())
		if err != nil {
			return nil, err
		}
		g := &templated{
			spec:     spec,
			order:    (i + 1) * 10,
			port:     renderer,
			static:   static,
			modelOpt: o.modelOpts,
		}
		gens = append(gens, wrap(g))
	}
	return &Port{profile: typ, generators: gens}, nil
}

func wrap(g *templated) pipeline.Generator {
	switch g.spec.Key {
	case domain.ArtifactSourceLayout:
		return &sourceLayout{templated: g}
	case domain.ArtifactSampleCode:
		g.when = sampleCodeEnabled
	case domain.ArtifactArchitectureGovernance:
		g.when = governanceEnabled
	}
	return g
}

// Profile returns the profile the port was built for.
func (p *Port) Profile() profile.Type { return p.profile }

// Generators returns the generators in catalog order.
func (p *Port) Generators() []pipeline.Generator {
	return slices.Clone(p.generators)
}

// NewRegistry builds a port for every supported profile from one catalog
// and returns them as a read-only registry.
func NewRegistry(catalog *profile.Catalog, renderer template.Port, assets fs.FS, opts ...Option) (*profile.Registry, error) {
	ports := make(map[profile.Type]profile.ArtifactsPort, len(profile.Types))
	for _, typ := range profile.Types {
		p, err := NewPort(typ, catalog, renderer, assets, opts...)
		if err != nil {
			return nil, err
		}
		ports[typ] = p
	}
	return profile.NewRegistry(ports), nil
}
