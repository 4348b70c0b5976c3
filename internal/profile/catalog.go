package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/modu-ai/moai-starter/internal/apperr"
	"github.com/modu-ai/moai-starter/internal/domain"
	"github.com/modu-ai/moai-starter/internal/template"
)

// Catalog error codes. All are adapter errors: a broken catalog is a
// wiring problem, not bad user input.
const (
	CodeCatalogInvalid      apperr.Code = "config.catalog-invalid"
	CodeProfileMissing      apperr.Code = "config.profile-missing"
	CodeArtifactMissing     apperr.Code = "config.artifact-missing"
	CodeTemplateBaseMissing apperr.Code = "config.template-base-missing"
)

// ErrDuplicateArtifact is the cause reported when a profile lists the same
// artifact key twice.
var ErrDuplicateArtifact = errors.New("duplicate artifact key")

// CatalogVersion is the only catalog schema version understood.
const CatalogVersion = 1

// ErrUnsupportedVersion is the cause reported for a catalog whose version
// is missing or is not CatalogVersion.
var ErrUnsupportedVersion = errors.New("unsupported catalog version")

// TemplateSpec is one (template, output) pair. Layouts and Levels, when
// set, restrict the pair to blueprints with a matching layout or
// sample-code level.
type TemplateSpec struct {
	Name    string   `yaml:"name"`
	Output  string   `yaml:"output"`
	Layouts []string `yaml:"layouts,omitempty"`
	Levels  []string `yaml:"levels,omitempty"`
}

// Matches reports whether the pair applies to bp.
func (t TemplateSpec) Matches(bp *domain.Blueprint) bool {
	if len(t.Layouts) > 0 && !slices.Contains(t.Layouts, bp.Layout().Key()) {
		return false
	}
	if len(t.Levels) > 0 && !slices.Contains(t.Levels, bp.SampleCode().Key()) {
		return false
	}
	return true
}

// ArtifactSpec is the catalog definition of one artifact of one profile.
type ArtifactSpec struct {
	Key          domain.ArtifactKey
	TemplateBase string
	Enabled      bool
	Templates    []TemplateSpec
}

// TemplateID returns the catalog path of t.
func (a ArtifactSpec) TemplateID(t TemplateSpec) string {
	return path.Join(a.TemplateBase, t.Name)
}

// StaticDir is the directory whose files are copied verbatim.
func (a ArtifactSpec) StaticDir() string {
	return path.Join(a.TemplateBase, "static")
}

type catalogFile struct {
	Version  int                    `yaml:"version"`
	Profiles map[string]profileFile `yaml:"profiles"`
}

type profileFile struct {
	Artifacts []artifactFile `yaml:"artifacts"`
}

type artifactFile struct {
	Key          string         `yaml:"key"`
	TemplateBase string         `yaml:"template_base"`
	Enabled      *bool          `yaml:"enabled"`
	Templates    []TemplateSpec `yaml:"templates"`
}

// Catalog is the parsed artifact configuration of every profile. It is
// read-only after loading.
type Catalog struct {
	profiles map[string][]ArtifactSpec
}

// LoadCatalog reads and parses the catalog file name from fsys.
func LoadCatalog(fsys fs.FS, name string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, apperr.Adapter(CodeCatalogInvalid, err, name)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes catalog YAML. Unknown fields are rejected and every
// artifact key must belong to the closed artifact set.
func ParseCatalog(data []byte) (*Catalog, error) {
	var raw catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, apperr.Adapter(CodeCatalogInvalid, err)
	}
	if raw.Version != CatalogVersion {
		return nil, apperr.Adapter(CodeCatalogInvalid, fmt.Errorf("%w: %d", ErrUnsupportedVersion, raw.Version))
	}

	c := &Catalog{profiles: make(map[string][]ArtifactSpec, len(raw.Profiles))}
	for name, p := range raw.Profiles {
		seen := make(map[domain.ArtifactKey]bool, len(p.Artifacts))
		specs := make([]ArtifactSpec, 0, len(p.Artifacts))
		for _, a := range p.Artifacts {
			key, err := domain.ParseArtifactKey(a.Key)
			if err != nil {
				return nil, err
			}
			if seen[key] {
				return nil, apperr.Adapter(CodeCatalogInvalid, fmt.Errorf("%w: %s", ErrDuplicateArtifact, key), name)
			}
			seen[key] = true
			specs = append(specs, ArtifactSpec{
				Key:          key,
				TemplateBase: strings.TrimSpace(a.TemplateBase),
				Enabled:      a.Enabled == nil || *a.Enabled,
				Templates:    slices.Clone(a.Templates),
			})
		}
		c.profiles[name] = specs
	}
	return c, nil
}

// Profiles lists the catalog's profile keys in order.
func (c *Catalog) Profiles() []string {
	return slices.Sorted(maps.Keys(c.profiles))
}

// Artifacts returns the artifact definitions of profile in catalog order.
func (c *Catalog) Artifacts(profile Type) ([]ArtifactSpec, error) {
	specs, ok := c.profiles[profile.Key()]
	if !ok {
		return nil, apperr.Adapter(CodeProfileMissing, nil, profile.Key())
	}
	return slices.Clone(specs), nil
}

// ArtifactSpec returns the definition of key within profile. A missing
// profile, a missing artifact and an empty template base each fail with
// their own code.
func (c *Catalog) ArtifactSpec(profile Type, key domain.ArtifactKey) (ArtifactSpec, error) {
	specs, ok := c.profiles[profile.Key()]
	if !ok {
		return ArtifactSpec{}, apperr.Adapter(CodeProfileMissing, nil, profile.Key())
	}
	for _, s := range specs {
		if s.Key != key {
			continue
		}
		if s.TemplateBase == "" {
			return ArtifactSpec{}, apperr.Adapter(CodeTemplateBaseMissing, nil, profile.Key(), key.Key())
		}
		s.Templates = slices.Clone(s.Templates)
		return s, nil
	}
	return ArtifactSpec{}, apperr.Adapter(CodeArtifactMissing, nil, profile.Key(), key.Key())
}

// Verify checks that every template referenced by the catalog exists in
// fsys. It stops at the first missing template.
func (c *Catalog) Verify(fsys fs.FS) error {
	for _, name := range c.Profiles() {
		for _, a := range c.profiles[name] {
			for _, t := range a.Templates {
				id := a.TemplateID(t)
				if !template.Exists(fsys, id) {
					return apperr.Adapter(template.CodeMissing, fs.ErrNotExist, name, a.Key.Key(), id)
				}
			}
		}
	}
	return nil
}
