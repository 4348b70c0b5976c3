package profile

import (
	"maps"
	"slices"

	"github.com/modu-ai/moai-starter/internal/apperr"
	"github.com/modu-ai/moai-starter/internal/domain"
	"github.com/modu-ai/moai-starter/internal/pipeline"
)

// ArtifactsPort provides the generators of one profile.
type ArtifactsPort interface {
	Generators() []pipeline.Generator
}

// Registry maps profiles to their ArtifactsPort. It is built once at
// startup and never mutated, so it is safe for concurrent readers.
type Registry struct {
	ports map[Type]ArtifactsPort
}

// NewRegistry copies ports; later changes to the map are not observed.
func NewRegistry(ports map[Type]ArtifactsPort) *Registry {
	return &Registry{ports: maps.Clone(ports)}
}

// Port returns the port registered for t.
func (r *Registry) Port(t Type) (ArtifactsPort, error) {
	p, ok := r.ports[t]
	if !ok || p == nil {
		return nil, apperr.Adapter(CodePortNotFound, nil, t.Key())
	}
	return p, nil
}

// Types lists the registered profiles in key order.
func (r *Registry) Types() []Type {
	return slices.Sorted(maps.Keys(r.ports))
}

// Resolver combines stack resolution with the registry lookup.
type Resolver struct {
	registry *Registry
}

// NewResolver creates a Resolver over registry.
func NewResolver(registry *Registry) *Resolver {
	return &Resolver{registry: registry}
}

// Resolve selects the profile for stack and returns it with its port.
// An unknown stack fails with profile.unsupported-type; a known profile
// without a registered port fails with profile.artifacts-port-not-found.
func (r *Resolver) Resolve(stack domain.TechStack) (Type, ArtifactsPort, error) {
	t, err := Resolve(stack)
	if err != nil {
		return "", nil, err
	}
	p, err := r.registry.Port(t)
	if err != nil {
		return "", nil, err
	}
	return t, p, nil
}
