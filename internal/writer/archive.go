package writer

import (
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/klauspost/compress/zip"

	"github.com/modu-ai/moai-starter/internal/apperr"
)

// ArchiveExt is appended to the artifact id to name the archive.
const ArchiveExt = ".zip"

// archiveEpoch is stamped on every entry so identical trees produce
// identical archives.
var archiveEpoch = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

// Archiver packages a written project tree.
type Archiver struct {
	fs     billy.Filesystem
	logger *slog.Logger
}

// NewArchiver creates an Archiver on fs. A nil logger discards output.
func NewArchiver(fs billy.Filesystem, logger *slog.Logger) *Archiver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Archiver{fs: fs, logger: logger}
}

// ArchiveName returns the file name of the archive for artifactID.
func ArchiveName(artifactID string) string {
	return artifactID + ArchiveExt
}

type entry struct {
	name  string
	full  string
	isDir bool
}

// Archive zips the tree below root into destDir/<artifactID>.zip. Entries
// are stored under an <artifactID>/ prefix in lexical order with a fixed
// timestamp. The archive path is returned.
func (a *Archiver) Archive(root, destDir, artifactID string) (string, error) {
	dest := path.Join(destDir, ArchiveName(artifactID))

	entries, err := a.collect(root, artifactID)
	if err != nil {
		return "", apperr.IO(CodeArchiveFailed, err, dest)
	}

	if dir := path.Clean(destDir); dir != "." && dir != "/" {
		if err := a.fs.MkdirAll(dir, dirPerm); err != nil {
			return "", apperr.IO(CodeArchiveFailed, err, dest)
		}
	}
	f, err := a.fs.Create(dest)
	if err != nil {
		return "", apperr.IO(CodeArchiveFailed, err, dest)
	}
	if err := a.write(f, entries); err != nil {
		_ = f.Close()
		_ = a.fs.Remove(dest)
		return "", apperr.IO(CodeArchiveFailed, err, dest)
	}
	if err := f.Close(); err != nil {
		return "", apperr.IO(CodeArchiveFailed, err, dest)
	}

	a.logger.Debug("archive written", "path", dest, "entries", len(entries))
	return dest, nil
}

func (a *Archiver) collect(root, prefix string) ([]entry, error) {
	var entries []entry
	err := util.Walk(a.fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}
		e := entry{name: path.Join(prefix, rel), full: p, isDir: info.IsDir()}
		if e.isDir {
			e.name += "/"
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(entries, func(x, y entry) int {
		return strings.Compare(x.name, y.name)
	})
	return entries, nil
}

func (a *Archiver) write(w io.Writer, entries []entry) error {
	zw := zip.NewWriter(w)
	for _, e := range entries {
		hdr := &zip.FileHeader{Name: e.name, Modified: archiveEpoch}
		if e.isDir {
			hdr.SetMode(os.ModeDir | dirPerm)
			if _, err := zw.CreateHeader(hdr); err != nil {
				return err
			}
			continue
		}
		hdr.Method = zip.Deflate
		hdr.SetMode(filePerm)
		dst, err := zw.CreateHeader(hdr)
		if err != nil {
			return err
		}
		src, err := a.fs.Open(e.full)
		if err != nil {
			return err
		}
		_, err = io.Copy(dst, src)
		_ = src.Close()
		if err != nil {
			return err
		}
	}
	return zw.Close()
}
