package policy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modu-ai/moai-starter/internal/apperr"
)

func requireCode(t *testing.T, err error, want string) {
	t.Helper()
	require.Error(t, err)
	e, ok := apperr.As(err)
	require.True(t, ok, "expected *apperr.Error, got %T", err)
	assert.Equal(t, apperr.KindDomain, e.Kind)
	assert.Equal(t, apperr.Code(want), e.Code)
}

func TestPackageNameEnforce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
		code string
	}{
		{raw: " Com.Acme..Demo ", want: "com.acme.demo"},
		{raw: "com acme_demo-app", want: "com.acme.demo.app"},
		{raw: "..com.acme..", want: "com.acme"},
		{raw: "com.acme.v2", want: "com.acme.v2"},
		{raw: "javascript.parser", want: "javascript.parser"},
		{raw: "", code: "package-name.not-blank"},
		{raw: "   ", code: "package-name.not-blank"},
		{raw: "ab", code: "package-name.length"},
		{raw: "a.1bad", code: "package-name.segment-format"},
		{raw: "com.acme$", code: "package-name.segment-format"},
		{raw: "java.util", code: "package-name.reserved-prefix"},
		{raw: "JAVA", code: "package-name.reserved-prefix"},
		{raw: "javax.inject", code: "package-name.reserved-prefix"},
		{raw: "com.sun.tools", code: "package-name.reserved-prefix"},
		{raw: "a." + strings.Repeat("b", 260), code: "package-name.length"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := PackageName.Enforce(tt.raw)
			if tt.code != "" {
				requireCode(t, err, tt.code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDependencyVersionEnforce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
		code string
	}{
		{raw: " 1.2.3 ", want: "1.2.3"},
		{raw: "2.0.0-RC1", want: "2.0.0-RC1"},
		{raw: "[1.0,2.0)", want: "[1.0,2.0)"},
		{raw: "${spring.version}", want: "${spring.version}"},
		{raw: "", code: "dependency-version.not-blank"},
		{raw: "   ", code: "dependency-version.not-blank"},
		{raw: strings.Repeat("x", 101), code: "dependency-version.length"},
		{raw: "1.0.0@beta", code: "dependency-version.invalid-chars"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := DependencyVersion.Enforce(tt.raw)
			if tt.code != "" {
				requireCode(t, err, tt.code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdentityPolicies(t *testing.T) {
	t.Parallel()

	g, err := GroupID.Enforce(" Com.Acme ")
	require.NoError(t, err)
	assert.Equal(t, "com.acme", g)

	a, err := ArtifactID.Enforce("Demo-App")
	require.NoError(t, err)
	assert.Equal(t, "demo-app", a)

	_, err = GroupID.Enforce("com..acme")
	requireCode(t, err, "group-id.invalid-format")

	_, err = ArtifactID.Enforce("demo_app")
	requireCode(t, err, "artifact-id.invalid-format")

	_, err = ArtifactID.Enforce("")
	requireCode(t, err, "artifact-id.not-blank")

	_, err = ArtifactID.Enforce(strings.Repeat("a", 65))
	requireCode(t, err, "artifact-id.length")
}

func TestDescriptionPolicy(t *testing.T) {
	t.Parallel()

	d, err := ProjectDescription.Enforce("  A   Demo\tProject \n for  Acme ")
	require.NoError(t, err)
	assert.Equal(t, "a demo project for acme", d)

	d, err = ProjectDescription.Enforce("")
	require.NoError(t, err)
	assert.Empty(t, d)

	_, err = ProjectDescription.Enforce(strings.Repeat("x", 281))
	requireCode(t, err, "project-description.length")

	_, err = ProjectDescription.Enforce("bad\x00byte")
	requireCode(t, err, "project-description.control-chars")
}

func TestProjectNamePolicy(t *testing.T) {
	t.Parallel()

	n, err := ProjectName.Enforce("  Demo   App ")
	require.NoError(t, err)
	assert.Equal(t, "Demo App", n)

	_, err = ProjectName.Enforce("\t")
	requireCode(t, err, "project-name.not-blank")
}

func TestFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
		code string
	}{
		{raw: "a/b/c.txt", want: "a/b/c.txt"},
		{raw: `src\main\java`, want: "src/main/java"},
		{raw: "a//b/", want: "a/b"},
		{raw: ".gitignore", want: ".gitignore"},
		{raw: "", code: "file-path.required"},
		{raw: "/abs/path", code: "file-path.absolute-not-allowed"},
		{raw: `C:\temp\x`, code: "file-path.absolute-not-allowed"},
		{raw: "../etc/passwd", code: "file-path.traversal"},
		{raw: "a/./b", code: "file-path.traversal"},
		{raw: "a/b/..", code: "file-path.traversal"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := FilePath(tt.raw)
			if tt.code != "" {
				requireCode(t, err, tt.code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileCharset(t *testing.T) {
	t.Parallel()

	c, err := FileCharset.Enforce(" UTF-8 ")
	require.NoError(t, err)
	assert.Equal(t, "utf-8", c)

	_, err = FileCharset.Enforce("iso-8859-1")
	require.NoError(t, err)

	_, err = FileCharset.Enforce("")
	requireCode(t, err, "file-charset.required")

	_, err = FileCharset.Enforce("klingon-8")
	requireCode(t, err, "file-charset.unsupported")
}

// Enforcing an already canonical value must return it unchanged.
func TestPoliciesAreIdempotent(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		p   Policy
		raw []string
	}{
		"package":     {PackageName, []string{" Com.Acme..Demo ", "org_example-app", "a.b.c"}},
		"version":     {DependencyVersion, []string{" 1.2.3 ", "2.0.0-RC1", "[1,2)"}},
		"group":       {GroupID, []string{" COM.ACME ", "org.example"}},
		"artifact":    {ArtifactID, []string{" Demo-App "}},
		"name":        {ProjectName, []string{"  Demo   App  "}},
		"description": {ProjectDescription, []string{"  Hello   World ", ""}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for _, raw := range tc.raw {
				once, err := tc.p.Enforce(raw)
				require.NoError(t, err)
				twice, err := tc.p.Enforce(once)
				require.NoError(t, err)
				assert.Equal(t, once, twice, "raw=%q", raw)
			}
		})
	}
}

func TestWrapNonRuleErrorIsUnexpected(t *testing.T) {
	t.Parallel()

	err := Wrap(FieldGroupID, assert.AnError)
	assert.Equal(t, apperr.KindUnexpected, apperr.KindOf(err))
}
