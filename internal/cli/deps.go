// Package cli provides the Cobra command tree and the composition root of
// moai-starter. This file defines the Dependencies struct that wires
// configuration, catalog, generators and the generation service together.
package cli

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/modu-ai/moai-starter/internal/apperr"
	"github.com/modu-ai/moai-starter/internal/config"
	"github.com/modu-ai/moai-starter/internal/core/project"
	"github.com/modu-ai/moai-starter/internal/generator"
	"github.com/modu-ai/moai-starter/internal/profile"
	"github.com/modu-ai/moai-starter/internal/template"
	"github.com/modu-ai/moai-starter/internal/ui"
	"github.com/modu-ai/moai-starter/pkg/version"
)

// CodeConfigInvalid reports an unreadable or invalid configuration file.
const CodeConfigInvalid apperr.Code = "config.invalid"

// Options are the global flags that shape the dependencies.
type Options struct {
	ConfigPath string
	Verbose    bool
	NoColor    bool
	Stderr     io.Writer
}

// Dependencies holds everything the commands use. It is built once per
// process and read-only afterwards.
type Dependencies struct {
	Config   *config.Config
	Logger   *slog.Logger
	Theme    *ui.Theme
	Headless *ui.HeadlessManager
	Assets   fs.FS
	Catalog  *profile.Catalog
	Registry *profile.Registry
	Resolver *profile.Resolver
	Factory  *project.Factory
	Stderr   io.Writer
}

// @MX:ANCHOR: [AUTO] InitDependencies는 설정, 카탈로그, 제너레이터 레지스트리를 연결하는 컴포지션 루트입니다.
// @MX:REASON: [AUTO] 모든 하위 명령이 PersistentPreRunE를 통해 이 함수로 의존성을 얻습니다
// InitDependencies loads the configuration, verifies the catalog and
// builds one generator port per profile. Any failure here is fatal.
func InitDependencies(opts Options) (*Dependencies, error) {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	path := opts.ConfigPath
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}
	cfg, _, err := config.Load(path)
	if err != nil {
		return nil, apperr.Adapter(CodeConfigInvalid, err, path)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, apperr.Adapter(CodeConfigInvalid, err, path)
	}
	if opts.NoColor {
		cfg.UI.NoColor = true
	}

	logger := newLogger(cfg.Log, opts.Verbose, stderr)
	logger.Debug("configuration loaded", "path", path, "catalog", cfg.Catalog.Dir)

	assets := template.Assets()
	if cfg.Catalog.Dir != "" {
		assets = os.DirFS(cfg.Catalog.Dir)
	}
	catalog, err := profile.LoadCatalog(assets, template.CatalogFile)
	if err != nil {
		return nil, err
	}
	if err := catalog.Verify(assets); err != nil {
		return nil, err
	}

	renderer := template.NewPort(template.NewRenderer(assets), "")
	registry, err := generator.NewRegistry(catalog, renderer, assets,
		generator.WithModelOptions(template.WithGeneratorVersion(version.GetVersion())),
	)
	if err != nil {
		return nil, err
	}

	factory := project.NewFactory(project.Defaults{
		Profile:     cfg.Defaults.Profile,
		Layout:      cfg.Defaults.Layout,
		Enforcement: cfg.Defaults.Enforcement,
		SampleCode:  cfg.Defaults.SampleCode,
		JavaVersion: cfg.Defaults.JavaVersion,
	})

	return &Dependencies{
		Config:   cfg,
		Logger:   logger,
		Theme:    ui.NewTheme(ui.ThemeConfig{NoColor: cfg.UI.NoColor}),
		Headless: ui.NewHeadlessManager(),
		Assets:   assets,
		Catalog:  catalog,
		Registry: registry,
		Resolver: profile.NewResolver(registry),
		Factory:  factory,
		Stderr:   stderr,
	}, nil
}

// newLogger builds the slog logger described by cfg. verbose forces debug.
func newLogger(cfg config.LogConfig, verbose bool, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Target locates the output directory on disk. Base is the directory the
// service filesystem is rooted at, Dir the root below it ("" lets the
// service default to the artifact id).
type Target struct {
	Base string
	Dir  string
}

// Abs returns the absolute path of p, relative to the target base.
func (t Target) Abs(p string) string {
	if p == "" {
		return ""
	}
	return filepath.Join(t.Base, filepath.FromSlash(p))
}

// ResolveTarget splits dir into a filesystem base and a root name. An
// empty dir roots the filesystem at the working directory.
func ResolveTarget(dir string) (Target, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Target{}, apperr.Unexpected(fmt.Errorf("get working directory: %w", err))
		}
		return Target{Base: wd}, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Target{}, apperr.Unexpected(fmt.Errorf("resolve %s: %w", dir, err))
	}
	return Target{Base: filepath.Dir(abs), Dir: filepath.Base(abs)}, nil
}

// NewService creates a generation service writing below t.
func (d *Dependencies) NewService(t Target, opts ...project.ServiceOption) *project.Service {
	return project.NewService(d.Factory, d.Resolver, osfs.New(t.Base), d.Logger, opts...)
}
