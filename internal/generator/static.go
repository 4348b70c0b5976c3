package generator

import (
	"io/fs"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/modu-ai/moai-starter/internal/apperr"
	"github.com/modu-ai/moai-starter/internal/resource"
	"github.com/modu-ai/moai-starter/internal/template"
)

// staticFile is a file copied verbatim from an artifact's static directory.
type staticFile struct {
	output string
	data   []byte
	text   bool
}

func (f staticFile) resource() (resource.Resource, error) {
	if f.text {
		return resource.NewText(f.output, string(f.data), resource.DefaultCharset)
	}
	return resource.NewBinary(f.output, f.data)
}

// loadStatic reads every file below dir. Output paths are relative to dir.
func loadStatic(assets fs.FS, dir string) ([]staticFile, error) {
	paths, err := template.ScanStatic(assets, dir)
	if err != nil {
		return nil, err
	}
	files := make([]staticFile, 0, len(paths))
	for _, p := range paths {
		data, err := fs.ReadFile(assets, p)
		if err != nil {
			return nil, apperr.Adapter(template.CodeScanFailed, err, p)
		}
		files = append(files, staticFile{
			output: strings.TrimPrefix(p, dir+"/"),
			data:   data,
			text:   isText(data),
		})
	}
	return files, nil
}

// isText reports whether data is detected as text/plain or one of its
// descendants (xml, json, properties and similar).
func isText(data []byte) bool {
	for mt := mimetype.Detect(data); mt != nil; mt = mt.Parent() {
		if mt.Is("text/plain") {
			return true
		}
	}
	return false
}
