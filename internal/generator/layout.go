package generator

import (
	"path"

	"github.com/modu-ai/moai-starter/internal/domain"
	"github.com/modu-ai/moai-starter/internal/resource"
)

// Source roots created for every project.
var sourceRoots = []string{
	"src/main/java",
	"src/test/java",
	"src/main/resources",
	"src/test/resources",
}

// sourceLayout emits the directory skeleton before its templates, so
// package directories exist even when no sample code is generated.
type sourceLayout struct {
	*templated
}

func (g *sourceLayout) Generate(bp *domain.Blueprint) ([]resource.Resource, error) {
	dirs := LayoutDirectories(bp)
	out := make([]resource.Resource, 0, len(dirs))
	for _, d := range dirs {
		r, err := resource.NewDirectory(d)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	files, err := g.templated.Generate(bp)
	if err != nil {
		return nil, err
	}
	return append(out, files...), nil
}

// LayoutDirectories lists the directories of the source skeleton in
// creation order: the four source roots, the base package under each root,
// then the layout's sub-packages under the main base package.
func LayoutDirectories(bp *domain.Blueprint) []string {
	pkg := bp.Package().Path()
	mainPkg := path.Join("src/main/java", pkg)

	dirs := append([]string(nil), sourceRoots...)
	for _, root := range sourceRoots {
		dirs = append(dirs, path.Join(root, pkg))
	}
	for _, sub := range bp.Layout().SubPackages() {
		dirs = append(dirs, path.Join(mainPkg, sub))
	}
	return dirs
}
