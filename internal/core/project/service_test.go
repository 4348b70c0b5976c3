package project

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modu-ai/moai-starter/internal/apperr"
	"github.com/modu-ai/moai-starter/internal/domain"
	"github.com/modu-ai/moai-starter/internal/generator"
	"github.com/modu-ai/moai-starter/internal/profile"
	"github.com/modu-ai/moai-starter/internal/resource"
	"github.com/modu-ai/moai-starter/internal/template"
	"github.com/modu-ai/moai-starter/internal/writer"
)

func builtinResolver(t *testing.T) *profile.Resolver {
	t.Helper()

	assets := template.Assets()
	catalog, err := profile.LoadCatalog(assets, template.CatalogFile)
	require.NoError(t, err)
	reg, err := generator.NewRegistry(catalog, template.NewPort(template.NewRenderer(assets), ""), assets)
	require.NoError(t, err)
	return profile.NewResolver(reg)
}

func TestGenerateWritesAndArchives(t *testing.T) {
	t.Parallel()

	fs := memfs.New()
	var progress int
	svc := NewService(NewFactory(testDefaults), builtinResolver(t), fs, nil,
		WithProgress(func(done, total int, _ resource.Resource) { progress = done }))

	req := baseRequest()
	req.Layout = "hexagonal"
	req.Archive = true
	res, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	_, err = uuid.Parse(res.RequestID)
	assert.NoError(t, err)
	assert.Equal(t, profile.SpringBootMavenJava, res.Profile)
	assert.Equal(t, "demo-app", res.Root)
	assert.True(t, res.Created)
	assert.Equal(t, "demo-app.zip", res.Archive)
	assert.Equal(t, len(res.Files), progress)

	pom, err := util.ReadFile(fs, "demo-app/pom.xml")
	require.NoError(t, err)
	assert.Contains(t, string(pom), "<artifactId>demo-app</artifactId>")

	for _, dir := range []string{
		"demo-app/src/main/resources",
		"demo-app/src/test/resources",
		"demo-app/src/main/resources/com/acme/demoapp",
		"demo-app/src/test/java/com/acme/demoapp",
		"demo-app/src/main/java/com/acme/demoapp/bootstrap",
	} {
		info, err := fs.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}

	_, err = fs.Stat("demo-app.zip")
	assert.NoError(t, err)
}

func TestGenerateRefusesNonEmptyTarget(t *testing.T) {
	t.Parallel()

	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "out/existing.txt", []byte("keep"), 0o644))
	svc := NewService(NewFactory(testDefaults), builtinResolver(t), fs, nil)

	req := baseRequest()
	req.TargetDir = "out"
	_, err := svc.Generate(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, writer.CodeTargetNotEmpty, apperr.CodeOf(err))
	assert.Equal(t, 3, apperr.ExitCode(err))

	req.Force = true
	res, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Empty(t, res.Archive)

	data, err := util.ReadFile(fs, "out/existing.txt")
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestGenerateFailuresWriteNothing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Request)
		code   apperr.Code
		exit   int
	}{
		{"domain violation", func(r *Request) { r.PackageName = "java.lang" }, "package-name.reserved-prefix", 1},
		{"unsupported profile", func(r *Request) { r.Profile = "quarkus:maven:java"; r.JavaVersion = "17" }, profile.CodeUnsupportedType, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := memfs.New()
			svc := NewService(NewFactory(testDefaults), builtinResolver(t), fs, nil)

			req := baseRequest()
			tt.mutate(&req)
			_, err := svc.Generate(context.Background(), req)
			require.Error(t, err)
			assert.Equal(t, tt.code, apperr.CodeOf(err))
			assert.Equal(t, tt.exit, apperr.ExitCode(err))

			_, statErr := fs.Stat("demo-app")
			assert.True(t, errors.Is(statErr, os.ErrNotExist))
		})
	}
}

func TestPortNotFound(t *testing.T) {
	t.Parallel()

	svc := NewService(NewFactory(testDefaults), profile.NewResolver(profile.NewRegistry(nil)), memfs.New(), nil)
	_, err := svc.Plan(context.Background(), baseRequest())
	assert.Equal(t, profile.CodePortNotFound, apperr.CodeOf(err))
}

func TestPlanIsDeterministic(t *testing.T) {
	t.Parallel()

	svc := NewService(NewFactory(testDefaults), builtinResolver(t), memfs.New(), nil)

	req := baseRequest()
	req.Profile = "spring-boot-gradle-java"
	req.Enforcement = "basic"
	first, err := svc.Plan(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Plan(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.RequestID, second.RequestID)
	assert.True(t, resource.EqualAll(first.Resources, second.Resources))
	assert.Contains(t, first.Artifacts, domain.ArtifactArchitectureGovernance)
	assert.Equal(t, domain.ArtifactBuildConfig, first.Artifacts[0])
}

func TestPlanHonorsCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewService(NewFactory(testDefaults), builtinResolver(t), memfs.New(), nil)
	_, err := svc.Plan(ctx, baseRequest())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlanKeepsPlaceholderLikeValues(t *testing.T) {
	t.Parallel()

	svc := NewService(NewFactory(testDefaults), builtinResolver(t), memfs.New(), nil)

	req := baseRequest()
	req.Name = "Cost $USD */ Tracker"
	req.Description = "Tracks {{x}} and ${HOME}"
	req.Dependencies = []DependencyInput{{GroupID: "org.acme", ArtifactID: "alpha", Version: "${revision}"}}

	for _, profileID := range []string{"spring-boot-maven-java", "spring-boot-gradle-java"} {
		req.Profile = profileID
		plan, err := svc.Plan(context.Background(), req)
		require.NoError(t, err, profileID)

		var build, pkgInfo string
		for _, r := range plan.Resources {
			txt, ok := r.(resource.Text)
			if !ok {
				continue
			}
			switch txt.Path() {
			case "pom.xml", "build.gradle":
				build = txt.Content()
			case "src/main/java/com/acme/demoapp/package-info.java":
				pkgInfo = txt.Content()
			}
		}
		require.NotEmpty(t, build, profileID)
		assert.Contains(t, pkgInfo, "Root package of Cost $USD *&#47; Tracker.", profileID)
		assert.Contains(t, build, "${revision}", profileID)
		assert.Contains(t, build, "tracks {{x}} and ${home}", profileID)
	}
}
