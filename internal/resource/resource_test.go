package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modu-ai/moai-starter/internal/apperr"
)

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, apperr.Code(code), apperr.CodeOf(err))
}

func TestPathSafety(t *testing.T) {
	t.Parallel()

	_, err := NewText("../etc/passwd", "x", DefaultCharset)
	requireCode(t, err, "file-path.traversal")

	_, err = NewDirectory("/abs/path")
	requireCode(t, err, "file-path.absolute-not-allowed")

	_, err = NewBinary("", []byte{1})
	requireCode(t, err, "file-path.required")

	txt, err := NewText("a/b/c.txt", "hello", DefaultCharset)
	require.NoError(t, err)
	assert.Equal(t, "a/b/c.txt", txt.Path())
	assert.Equal(t, "hello", txt.Content())
	assert.Equal(t, "utf-8", txt.Charset())
}

func TestTextRejectsUnknownCharset(t *testing.T) {
	t.Parallel()

	_, err := NewText("README.md", "x", "")
	requireCode(t, err, "file-charset.required")

	_, err = NewText("README.md", "x", "nope")
	requireCode(t, err, "file-charset.unsupported")
}

func TestBinaryCopiesInAndOut(t *testing.T) {
	t.Parallel()

	src := []byte{0x89, 'P', 'N', 'G'}
	b, err := NewBinary("logo.png", src)
	require.NoError(t, err)

	src[0] = 0
	assert.Equal(t, byte(0x89), b.Bytes()[0], "mutating the input must not leak into the resource")

	out := b.Bytes()
	out[1] = 'X'
	assert.Equal(t, byte('P'), b.Bytes()[1], "mutating an output copy must not leak into the resource")
	assert.Equal(t, 4, b.Size())
}

func TestBinaryRejectsNilBuffer(t *testing.T) {
	t.Parallel()

	_, err := NewBinary("empty.bin", nil)
	requireCode(t, err, "file-content.required")

	b, err := NewBinary("empty.bin", []byte{})
	require.NoError(t, err)
	assert.Equal(t, 0, b.Size())
}

type recordingVisitor struct {
	seen []string
}

func (r *recordingVisitor) VisitText(t Text) error {
	r.seen = append(r.seen, "text:"+t.Path())
	return nil
}

func (r *recordingVisitor) VisitBinary(b Binary) error {
	r.seen = append(r.seen, "binary:"+b.Path())
	return nil
}

func (r *recordingVisitor) VisitDirectory(d Directory) error {
	r.seen = append(r.seen, "dir:"+d.Path())
	return nil
}

func TestAcceptDispatchesByVariant(t *testing.T) {
	t.Parallel()

	txt, _ := NewText("a.txt", "", DefaultCharset)
	bin, _ := NewBinary("b.bin", []byte{1})
	dir, _ := NewDirectory("c")

	v := &recordingVisitor{}
	for _, r := range []Resource{txt, bin, dir} {
		require.NoError(t, r.Accept(v))
	}
	assert.Equal(t, []string{"text:a.txt", "binary:b.bin", "dir:c"}, v.seen)
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a1, _ := NewText("a.txt", "x", DefaultCharset)
	a2, _ := NewText("a.txt", "x", "UTF-8")
	a3, _ := NewText("a.txt", "y", DefaultCharset)
	b1, _ := NewBinary("a.txt", []byte("x"))
	b2, _ := NewBinary("a.txt", []byte("x"))
	d1, _ := NewDirectory("a.txt")

	assert.True(t, Equal(a1, a2))
	assert.False(t, Equal(a1, a3))
	assert.False(t, Equal(a1, b1))
	assert.True(t, Equal(b1, b2))
	assert.False(t, Equal(b1, d1))

	assert.True(t, EqualAll([]Resource{a1, b1, d1}, []Resource{a2, b2, d1}))
	assert.False(t, EqualAll([]Resource{a1, b1}, []Resource{b1, a1}))
	assert.Equal(t, []string{"a.txt", "a.txt"}, Paths([]Resource{a1, d1}))
}
