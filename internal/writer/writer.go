// Package writer materializes a generated resource sequence on a billy
// filesystem and packages the result as a zip archive.
package writer

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/modu-ai/moai-starter/internal/apperr"
	"github.com/modu-ai/moai-starter/internal/resource"
)

// IO error codes.
const (
	CodeTargetNotEmpty apperr.Code = "io.target-not-empty"
	CodeWriteFailed    apperr.Code = "io.write-failed"
	CodeArchiveFailed  apperr.Code = "io.archive-failed"
)

// ErrNotDirectory is reported when the target exists as a regular file.
var ErrNotDirectory = errors.New("target is not a directory")

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// PrepareRoot makes root ready for writing. An existing non-empty root is
// refused unless force is set. created reports whether root did not exist
// before the call.
func PrepareRoot(fs billy.Filesystem, root string, force bool) (created bool, err error) {
	info, err := fs.Stat(root)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := fs.MkdirAll(root, dirPerm); err != nil {
			return false, apperr.IO(CodeWriteFailed, err, root)
		}
		return true, nil
	case err != nil:
		return false, apperr.IO(CodeWriteFailed, err, root)
	case !info.IsDir():
		return false, apperr.IO(CodeTargetNotEmpty, ErrNotDirectory, root)
	}

	entries, err := fs.ReadDir(root)
	if err != nil {
		return false, apperr.IO(CodeWriteFailed, err, root)
	}
	if len(entries) > 0 && !force {
		return false, apperr.IO(CodeTargetNotEmpty, nil, root)
	}
	return false, nil
}

// ProgressFunc is called after each resource is written.
type ProgressFunc func(done, total int, r resource.Resource)

// Writer writes resources below a root directory.
type Writer struct {
	fs       billy.Filesystem
	logger   *slog.Logger
	progress ProgressFunc
}

// NewWriter creates a Writer on fs. A nil logger discards output.
func NewWriter(fs billy.Filesystem, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Writer{fs: fs, logger: logger}
}

// OnProgress registers fn to observe write progress.
func (w *Writer) OnProgress(fn ProgressFunc) {
	w.progress = fn
}

// Write writes resources in order. Text content is encoded in the
// resource's charset. When removeOnFailure is set, root is deleted if any
// write fails, so a failed run leaves nothing behind.
func (w *Writer) Write(root string, resources []resource.Resource, removeOnFailure bool) error {
	v := &visitor{fs: w.fs, root: root}
	for i, r := range resources {
		if err := r.Accept(v); err != nil {
			w.logger.Warn("write failed", "path", r.Path(), "error", err)
			if removeOnFailure {
				if rmErr := util.RemoveAll(w.fs, root); rmErr != nil {
					w.logger.Error("cleanup failed", "root", root, "error", rmErr)
				}
			}
			return apperr.IO(CodeWriteFailed, err, r.Path())
		}
		if w.progress != nil {
			w.progress(i+1, len(resources), r)
		}
	}
	w.logger.Debug("resources written", "root", root, "count", len(resources))
	return nil
}

type visitor struct {
	fs   billy.Filesystem
	root string
}

func (v *visitor) VisitText(t resource.Text) error {
	data, err := encode(t.Content(), t.Charset())
	if err != nil {
		return err
	}
	return v.writeFile(t.Path(), data)
}

func (v *visitor) VisitBinary(b resource.Binary) error {
	return v.writeFile(b.Path(), b.Bytes())
}

func (v *visitor) VisitDirectory(d resource.Directory) error {
	return v.fs.MkdirAll(path.Join(v.root, d.Path()), dirPerm)
}

func (v *visitor) writeFile(rel string, data []byte) error {
	full := path.Join(v.root, rel)
	if err := v.fs.MkdirAll(path.Dir(full), dirPerm); err != nil {
		return err
	}
	return util.WriteFile(v.fs, full, data, filePerm)
}

// encode converts UTF-8 content into charset. UTF-8 content is returned
// unchanged.
func encode(content, charset string) ([]byte, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, err
	}
	if name, _ := htmlindex.Name(enc); name == "utf-8" {
		return []byte(content), nil
	}
	out, err := enc.NewEncoder().String(content)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
