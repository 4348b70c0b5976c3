package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// DefaultPreviewWidth is the word-wrap width of RenderMarkdown when the
// caller passes zero.
const DefaultPreviewWidth = 80

// RenderMarkdown renders md for the terminal. NoColor themes use the
// plain notty style.
func RenderMarkdown(theme *Theme, md string, width int) (string, error) {
	if width <= 0 {
		width = DefaultPreviewWidth
	}
	style := styles.DarkStyle
	switch {
	case theme.NoColor:
		style = styles.NoTTYStyle
	case theme.Mode == "light":
		style = styles.LightStyle
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
