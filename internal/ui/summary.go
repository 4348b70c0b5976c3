package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"
)

// Summary describes one finished generation for display.
type Summary struct {
	RequestID string
	Profile   string
	Root      string
	Archive   string
	Paths     []string // relative, slash-separated, in write order
}

type node struct {
	name     string
	children map[string]*node
}

func (n *node) child(name string) *node {
	if n.children == nil {
		n.children = make(map[string]*node)
	}
	c, ok := n.children[name]
	if !ok {
		c = &node{name: name}
		n.children[name] = c
	}
	return c
}

// RenderSummary draws the written tree below the root followed by the
// archive location. Entries are sorted by name at every level.
func RenderSummary(theme *Theme, s Summary) string {
	root := &node{name: s.Root}
	for _, p := range s.Paths {
		cur := root
		for seg := range strings.SplitSeq(p, "/") {
			cur = cur.child(seg)
		}
	}

	t := build(theme, root, theme.Title.Render(s.Root+"/")).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(theme.Muted)

	var b strings.Builder
	b.WriteString(t.String())
	b.WriteString("\n\n")
	b.WriteString(theme.Success.Render(fmt.Sprintf("Generated %d entries with profile %s", len(s.Paths), s.Profile)))
	b.WriteString("\n")
	if s.Archive != "" {
		b.WriteString(theme.Muted.Render("archive: ") + theme.Path.Render(s.Archive) + "\n")
	}
	if s.RequestID != "" {
		b.WriteString(theme.Muted.Render("request: "+s.RequestID) + "\n")
	}
	return b.String()
}

func build(theme *Theme, n *node, label string) *tree.Tree {
	t := tree.Root(label)
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		c := n.children[name]
		if len(c.children) == 0 {
			t.Child(name)
			continue
		}
		t.Child(build(theme, c, theme.Path.Render(name+"/")))
	}
	return t
}
