// Package resource models one unit of generated output: a text file, a
// binary file or a directory. Resource is a closed set; consumers handle it
// through Visitor, so adding a variant breaks every consumer at compile time.
package resource

import (
	"bytes"
	"slices"

	"github.com/modu-ai/moai-starter/internal/apperr"
	"github.com/modu-ai/moai-starter/internal/policy"
	"github.com/modu-ai/moai-starter/internal/rule"
)

// DefaultCharset is used by generators that do not choose an encoding.
const DefaultCharset = "utf-8"

// Resource is implemented only by Text, Binary and Directory.
type Resource interface {
	// Path is the canonical, relative, slash-separated path.
	Path() string
	// Accept dispatches to the visitor method of the concrete variant.
	Accept(v Visitor) error

	sealed()
}

// Visitor handles each resource variant.
type Visitor interface {
	VisitText(t Text) error
	VisitBinary(b Binary) error
	VisitDirectory(d Directory) error
}

// Text is a file with character content and an explicit encoding.
type Text struct {
	path    string
	content string
	charset string
}

// NewText validates path and charset.
func NewText(path, content, charset string) (Text, error) {
	p, err := policy.FilePath(path)
	if err != nil {
		return Text{}, err
	}
	c, err := policy.FileCharset.Enforce(charset)
	if err != nil {
		return Text{}, err
	}
	return Text{path: p, content: content, charset: c}, nil
}

func (t Text) Path() string           { return t.path }
func (t Text) Content() string        { return t.content }
func (t Text) Charset() string        { return t.charset }
func (t Text) Accept(v Visitor) error { return v.VisitText(t) }
func (Text) sealed()                  {}

// Binary is a file with raw bytes. It owns a private copy of its buffer.
type Binary struct {
	path string
	data []byte
}

// NewBinary validates path and copies data. A nil buffer is rejected;
// an empty non-nil buffer is a valid empty file.
func NewBinary(path string, data []byte) (Binary, error) {
	p, err := policy.FilePath(path)
	if err != nil {
		return Binary{}, err
	}
	if data == nil {
		return Binary{}, apperr.Violation(string(policy.FieldFileContent), string(rule.RequiredViolation), p)
	}
	return Binary{path: p, data: bytes.Clone(data)}, nil
}

func (b Binary) Path() string { return b.path }

// Bytes returns a fresh copy of the content on every call.
func (b Binary) Bytes() []byte {
	return slices.Clone(b.data)
}

// Size is the content length in bytes.
func (b Binary) Size() int { return len(b.data) }

func (b Binary) Accept(v Visitor) error { return v.VisitBinary(b) }
func (Binary) sealed()                  {}

// Directory is a directory to create even when nothing is written into it.
type Directory struct {
	path string
}

// NewDirectory validates path.
func NewDirectory(path string) (Directory, error) {
	p, err := policy.FilePath(path)
	if err != nil {
		return Directory{}, err
	}
	return Directory{path: p}, nil
}

func (d Directory) Path() string           { return d.path }
func (d Directory) Accept(v Visitor) error { return v.VisitDirectory(d) }
func (Directory) sealed()                  {}
