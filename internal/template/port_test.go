package template

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modu-ai/moai-starter/internal/apperr"
	"github.com/modu-ai/moai-starter/internal/domain"
)

func TestPortRender(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"main/App.java.tmpl": &fstest.MapFile{Data: []byte("package {{.packageName}};\n")},
		"broken.tmpl":        &fstest.MapFile{Data: []byte("{{.missing}}")},
	}
	p := NewPort(NewRenderer(fsys), "")

	txt, err := p.Render("src/main/java/com/acme/App.java", "main/App.java.tmpl", Model{"packageName": "com.acme"})
	require.NoError(t, err)
	assert.Equal(t, "src/main/java/com/acme/App.java", txt.Path())
	assert.Equal(t, "package com.acme;\n", txt.Content())
	assert.Equal(t, "utf-8", txt.Charset())

	t.Run("missing key", func(t *testing.T) {
		_, err := p.Render("out.txt", "broken.tmpl", Model{})
		require.Error(t, err)
		assert.Equal(t, CodeRenderFailed, apperr.CodeOf(err))
		assert.Equal(t, apperr.KindAdapter, apperr.KindOf(err))
		assert.True(t, errors.Is(err, ErrMissingTemplateKey))

		e, ok := apperr.As(err)
		require.True(t, ok)
		assert.Equal(t, []any{"broken.tmpl"}, e.Args)
	})

	t.Run("missing template", func(t *testing.T) {
		_, err := p.Render("out.txt", "nope.tmpl", Model{})
		assert.Equal(t, CodeRenderFailed, apperr.CodeOf(err))
		assert.True(t, errors.Is(err, ErrTemplateNotFound))
	})

	t.Run("unsafe output path", func(t *testing.T) {
		_, err := p.Render("../escape.java", "main/App.java.tmpl", Model{"packageName": "x"})
		assert.Equal(t, apperr.Code("file-path.traversal"), apperr.CodeOf(err))
	})
}

func TestPortCharset(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"a.tmpl": &fstest.MapFile{Data: []byte("x")}}
	txt, err := NewPort(NewRenderer(fsys), "ISO-8859-1").Render("a.txt", "a.tmpl", Model{})
	require.NoError(t, err)
	assert.Equal(t, "iso-8859-1", txt.Charset())
}

func TestScan(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"base/b.tmpl":              &fstest.MapFile{},
		"base/a.tmpl":              &fstest.MapFile{},
		"base/nested/c.tmpl":       &fstest.MapFile{},
		"base/static/.mvn/jvm.cfg": &fstest.MapFile{},
		"other/d.tmpl":             &fstest.MapFile{},
	}

	got, err := Scan(fsys, "base")
	require.NoError(t, err)
	assert.Equal(t, []string{"base/a.tmpl", "base/b.tmpl", "base/nested/c.tmpl"}, got)

	static, err := ScanStatic(fsys, "base/static")
	require.NoError(t, err)
	assert.Equal(t, []string{"base/static/.mvn/jvm.cfg"}, static)

	none, err := Scan(fsys, "absent")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = Scan(fsys, "base/[")
	assert.Equal(t, CodeScanFailed, apperr.CodeOf(err))

	assert.True(t, Exists(fsys, "base/a.tmpl"))
	assert.False(t, Exists(fsys, "base"))
	assert.False(t, Exists(fsys, "base/z.tmpl"))
}

func TestAssetsCarryCatalog(t *testing.T) {
	t.Parallel()

	assets := Assets()
	assert.True(t, Exists(assets, CatalogFile))

	shared, err := Scan(assets, "shared/java/sample")
	require.NoError(t, err)
	assert.Contains(t, shared, "shared/java/sample/hexagonal/Greeting.java.tmpl")
}

func testBlueprint(t *testing.T) *domain.Blueprint {
	t.Helper()

	id, err := domain.NewProjectIdentity("com.acme", "demo-app")
	require.NoError(t, err)
	name, err := domain.NewProjectName("Demo App")
	require.NoError(t, err)
	pkg, err := domain.NewPackageName("com.acme.demo")
	require.NoError(t, err)
	stack, err := domain.NewTechStack("spring-boot", "maven", "java")
	require.NoError(t, err)
	platform, err := domain.NewPlatformTarget(domain.Java21, domain.SpringBoot35)
	require.NoError(t, err)

	dep, err := domain.NewDependency("org.postgresql", "postgresql")
	require.NoError(t, err)
	dep, err = dep.WithScope("runtime")
	require.NoError(t, err)

	bp, err := domain.NewBlueprint(domain.BlueprintParts{
		Identity:     id,
		Name:         name,
		Package:      pkg,
		Stack:        stack,
		Layout:       domain.LayoutHexagonal,
		Platform:     platform,
		Dependencies: domain.NewDependencies(dep),
	})
	require.NoError(t, err)
	return bp
}

func TestNewModel(t *testing.T) {
	t.Parallel()

	m := NewModel(testBlueprint(t), WithGeneratorVersion("1.2.0"), WithValue("extra", true))

	assert.Equal(t, "demo-app", m["artifactId"])
	assert.Equal(t, "DemoAppApplication", m["mainClass"])
	assert.Equal(t, "com/acme/demo", m["packagePath"])
	assert.Equal(t, "21", m["javaVersion"])
	assert.Equal(t, "3.5.0", m["frameworkVersion"])
	assert.Equal(t, true, m["hexagonal"])
	assert.Equal(t, false, m["strict"])
	assert.Equal(t, "minimal", m["sampleCode"])
	assert.Equal(t, "1.2.0", m["generatorVersion"])
	assert.Equal(t, true, m["extra"])

	deps := m["dependencies"].([]map[string]any)
	require.Len(t, deps, 1)
	assert.Equal(t, "runtime", deps[0]["scope"])
	assert.Equal(t, "runtimeOnly", deps[0]["gradleConfiguration"])
	assert.Equal(t, false, deps[0]["hasVersion"])

	clone := m.Clone()
	clone["artifactId"] = "changed"
	assert.Equal(t, "demo-app", m["artifactId"])
}

func TestNewModelIsDeterministic(t *testing.T) {
	t.Parallel()

	bp := testBlueprint(t)
	assert.Equal(t, NewModel(bp), NewModel(bp))
	assert.Equal(t, "dev", NewModel(bp, WithGeneratorVersion(""))["generatorVersion"])
}
