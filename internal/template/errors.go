package template

import (
	"errors"

	"github.com/modu-ai/moai-starter/internal/apperr"
)

// Sentinel errors returned by Renderer. Port wraps all of them into an
// adapter error carrying the template id.
var (
	ErrTemplateNotFound   = errors.New("template not found")
	ErrMissingTemplateKey = errors.New("missing template key")
	ErrUnexpandedToken    = errors.New("unexpanded token in template text")
)

// Adapter error codes raised by this package.
const (
	CodeRenderFailed apperr.Code = "template.render-failed"
	CodeScanFailed   apperr.Code = "template.scan-failed"
	CodeMissing      apperr.Code = "template.missing"
)
