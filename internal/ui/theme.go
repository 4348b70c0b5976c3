// Package ui renders moai-starter terminal output: generation progress,
// the written-tree summary and the README preview. Every component falls
// back to plain line output when no terminal is attached or color is off.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/modu-ai/moai-starter/internal/resource"
)

// Brand colors shared by the CLI and the wizard.
const (
	ColorPrimary   = "#DA7756"
	ColorSecondary = "#7C3AED"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorText      = "#E5E7EB"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#4B5563"
)

// ThemeConfig selects how a Theme is built.
type ThemeConfig struct {
	NoColor bool
	Mode    string // "dark", "light" or "" for dark
}

// Colors holds the palette used by the components.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Muted     string
}

// Theme carries the palette and the derived lipgloss styles.
type Theme struct {
	NoColor bool
	Mode    string
	Colors  Colors

	Title   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Path    lipgloss.Style
}

// NewTheme builds a Theme. With NoColor every style renders plain text.
func NewTheme(cfg ThemeConfig) *Theme {
	mode := cfg.Mode
	if mode == "" {
		mode = "dark"
	}
	t := &Theme{
		NoColor: cfg.NoColor,
		Mode:    mode,
		Colors: Colors{
			Primary:   ColorPrimary,
			Secondary: ColorSecondary,
			Success:   ColorSuccess,
			Error:     ColorError,
			Muted:     ColorMuted,
		},
	}
	if mode == "light" {
		t.Colors.Primary = "#C45A3C"
		t.Colors.Secondary = "#5B21B6"
		t.Colors.Success = "#059669"
		t.Colors.Error = "#DC2626"
		t.Colors.Muted = "#9CA3AF"
	}

	t.Title = lipgloss.NewStyle().Bold(true)
	t.Success = lipgloss.NewStyle()
	t.Error = lipgloss.NewStyle()
	t.Muted = lipgloss.NewStyle()
	t.Path = lipgloss.NewStyle()
	if !cfg.NoColor {
		t.Title = t.Title.Foreground(lipgloss.Color(t.Colors.Primary))
		t.Success = t.Success.Foreground(lipgloss.Color(t.Colors.Success))
		t.Error = t.Error.Foreground(lipgloss.Color(t.Colors.Error)).Bold(true)
		t.Muted = t.Muted.Foreground(lipgloss.Color(t.Colors.Muted))
		t.Path = t.Path.Foreground(lipgloss.Color(t.Colors.Secondary))
	}
	return t
}

// Progress creates progress indicators.
type Progress interface {
	Start(title string, total int) ProgressBar
	Spinner(title string) Spinner
}

// ProgressBar tracks the resources of one write.
type ProgressBar interface {
	Advance(r resource.Resource)
	Done()
}

// Spinner reports activity of unknown length.
type Spinner interface {
	SetTitle(title string)
	Stop()
}
