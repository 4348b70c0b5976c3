package template

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"text/template"
	"text/template/parse"
)

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	// xmlEscape escapes a string for embedding in XML text or attributes.
	"xmlEscape": func(s string) string {
		var buf bytes.Buffer
		if err := xml.EscapeText(&buf, []byte(s)); err != nil {
			return s
		}
		return buf.String()
	},
	// squote escapes a string for a single-quoted Groovy literal.
	"squote": func(s string) string {
		return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
	},
	// javadoc keeps a value from closing the surrounding comment block.
	"javadoc": func(s string) string {
		return strings.ReplaceAll(s, "*/", "*&#47;")
	},
	"upper": strings.ToUpper,
	"join":  strings.Join,
}

// unexpandedTokenPattern detects placeholders left in a template's literal
// text. Matches ${VAR}, {{VAR}}, and $VAR patterns.
var unexpandedTokenPattern = regexp.MustCompile(`\$\{[A-Za-z_][A-Za-z0-9_]*\}|\{\{\.?[A-Za-z_][A-Za-z0-9_.]*\}\}|\$[A-Z_][A-Z0-9_]*`)

// buildToolPassthroughTokens are shell variables that generated wrapper
// scripts and docs reference literally. They are not template leftovers.
var buildToolPassthroughTokens = []string{
	"$JAVA_HOME",
	"$MAVEN_OPTS",
	"$GRADLE_OPTS",
}

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template and executes it with data.
	// Returns ErrMissingTemplateKey if a key is missing and
	// ErrUnexpandedToken if the template text carries a placeholder no
	// action expands.
	Render(templateName string, data any) ([]byte, error)
}

type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with strict mode (missingkey=error).
// Only the template's own text is checked for leftover tokens; values
// from data are emitted as given.
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	for _, t := range tmpl.Templates() {
		if t.Tree == nil {
			continue
		}
		if tok := leftoverToken(t.Tree.Root); tok != "" {
			return nil, fmt.Errorf("%w: found %q", ErrUnexpandedToken, tok)
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}
	return buf.Bytes(), nil
}

// leftoverToken returns the first placeholder found in the literal text
// nodes under n, or "".
func leftoverToken(n parse.Node) string {
	switch n := n.(type) {
	case *parse.TextNode:
		return findToken(string(n.Text))
	case *parse.ListNode:
		if n == nil {
			return ""
		}
		for _, c := range n.Nodes {
			if tok := leftoverToken(c); tok != "" {
				return tok
			}
		}
	case *parse.IfNode:
		return branchToken(&n.BranchNode)
	case *parse.RangeNode:
		return branchToken(&n.BranchNode)
	case *parse.WithNode:
		return branchToken(&n.BranchNode)
	}
	return ""
}

func branchToken(b *parse.BranchNode) string {
	if tok := leftoverToken(b.List); tok != "" {
		return tok
	}
	if b.ElseList != nil {
		return leftoverToken(b.ElseList)
	}
	return ""
}

func findToken(text string) string {
	for _, tok := range buildToolPassthroughTokens {
		text = strings.ReplaceAll(text, tok, "")
	}
	return unexpandedTokenPattern.FindString(text)
}
