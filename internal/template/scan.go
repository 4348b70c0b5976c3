package template

import (
	"io/fs"
	"path"
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/modu-ai/moai-starter/internal/apperr"
)

// TemplateExt is the file extension of template sources.
const TemplateExt = ".tmpl"

// Scan lists every template below base in lexical order.
func Scan(fsys fs.FS, base string) ([]string, error) {
	return glob(fsys, path.Join(base, "**", "*"+TemplateExt))
}

// ScanStatic lists the non-template files below dir in lexical order.
func ScanStatic(fsys fs.FS, dir string) ([]string, error) {
	all, err := glob(fsys, path.Join(dir, "**", "*"))
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, p := range all {
		if path.Ext(p) != TemplateExt {
			out = append(out, p)
		}
	}
	return out, nil
}

func glob(fsys fs.FS, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, apperr.Adapter(CodeScanFailed, err, pattern)
	}
	slices.Sort(matches)
	return matches, nil
}

// Exists reports whether the template id can be opened.
func Exists(fsys fs.FS, templateID string) bool {
	info, err := fs.Stat(fsys, templateID)
	return err == nil && !info.IsDir()
}
