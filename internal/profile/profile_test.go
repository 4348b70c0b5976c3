package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modu-ai/moai-starter/internal/apperr"
	"github.com/modu-ai/moai-starter/internal/domain"
	"github.com/modu-ai/moai-starter/internal/pipeline"
)

type stubPort struct{ name string }

func (stubPort) Generators() []pipeline.Generator { return nil }

func stack(t *testing.T, f, b, l string) domain.TechStack {
	t.Helper()
	s, err := domain.NewTechStack(f, b, l)
	require.NoError(t, err)
	return s
}

func TestResolveExactMatch(t *testing.T) {
	t.Parallel()

	got, err := Resolve(stack(t, "Spring-Boot", "MAVEN", "java"))
	require.NoError(t, err)
	assert.Equal(t, SpringBootMavenJava, got)

	got, err = Resolve(stack(t, "spring-boot", "gradle", "java"))
	require.NoError(t, err)
	assert.Equal(t, SpringBootGradleJava, got)

	assert.Equal(t, domain.BuildToolGradle, SpringBootGradleJava.Stack().BuildTool)
}

func TestResolveUnsupportedStacks(t *testing.T) {
	t.Parallel()

	for _, s := range []domain.TechStack{
		stack(t, "quarkus", "maven", "java"),
		stack(t, "spring-boot", "gradle", "kotlin"),
		{},
	} {
		_, err := Resolve(s)
		require.Error(t, err)
		assert.Equal(t, CodeUnsupportedType, apperr.CodeOf(err), s.String())
		assert.Equal(t, apperr.KindAdapter, apperr.KindOf(err))
	}
}

func TestParseType(t *testing.T) {
	t.Parallel()

	got, err := ParseType(" Spring-Boot-Gradle-Java ")
	require.NoError(t, err)
	assert.Equal(t, SpringBootGradleJava, got)

	_, err = ParseType("quarkus-maven-java")
	assert.Equal(t, apperr.Code("profile.unknown-key"), apperr.CodeOf(err))
}

func TestResolver(t *testing.T) {
	t.Parallel()

	maven := stubPort{name: "maven"}
	ports := map[Type]ArtifactsPort{SpringBootMavenJava: maven}
	r := NewResolver(NewRegistry(ports))

	// The registry copied the map; this must not register gradle.
	ports[SpringBootGradleJava] = stubPort{name: "late"}

	t.Run("registered", func(t *testing.T) {
		typ, port, err := r.Resolve(stack(t, "spring-boot", "maven", "java"))
		require.NoError(t, err)
		assert.Equal(t, SpringBootMavenJava, typ)
		assert.Equal(t, maven, port)
	})

	t.Run("supported but not registered", func(t *testing.T) {
		_, _, err := r.Resolve(stack(t, "spring-boot", "gradle", "java"))
		assert.Equal(t, CodePortNotFound, apperr.CodeOf(err))
	})

	t.Run("unsupported", func(t *testing.T) {
		_, _, err := r.Resolve(stack(t, "quarkus", "gradle", "java"))
		assert.Equal(t, CodeUnsupportedType, apperr.CodeOf(err))
	})
}

func TestEmptyRegistry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	assert.Empty(t, reg.Types())

	_, _, err := NewResolver(reg).Resolve(SpringBootMavenJava.Stack())
	assert.Equal(t, CodePortNotFound, apperr.CodeOf(err))
}

func TestRegistryTypesSorted(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(map[Type]ArtifactsPort{
		SpringBootMavenJava:  stubPort{},
		SpringBootGradleJava: stubPort{},
	})
	assert.Equal(t, []Type{SpringBootGradleJava, SpringBootMavenJava}, reg.Types())
}
