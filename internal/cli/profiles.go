package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/modu-ai/moai-starter/internal/profile"
	"github.com/modu-ai/moai-starter/internal/ui"
)

func newProfilesCmd() *cobra.Command {
	var templates bool
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List supported profiles and their artifacts",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := depsFrom(cmd)
			if err != nil {
				return err
			}
			out, err := renderProfiles(d.Theme, d.Catalog, d.Registry.Types(), templates)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&templates, "templates", false, "Show every template and its output path")
	return cmd
}

// renderProfiles draws one table per profile, in the given order.
func renderProfiles(theme *ui.Theme, catalog *profile.Catalog, types []profile.Type, templates bool) (string, error) {
	var b strings.Builder
	for _, t := range types {
		specs, err := catalog.Artifacts(t)
		if err != nil {
			return "", err
		}

		b.WriteString(theme.Title.Render(t.Key()))
		b.WriteString(" ")
		b.WriteString(theme.Muted.Render("(" + t.Stack().String() + ")"))
		b.WriteString("\n")

		tbl := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(theme.Muted)
		if templates {
			tbl.Headers("ARTIFACT", "TEMPLATE", "OUTPUT", "WHEN")
		} else {
			tbl.Headers("ARTIFACT", "TEMPLATE BASE", "TEMPLATES", "ENABLED")
		}

		for _, spec := range specs {
			if !templates {
				tbl.Row(spec.Key.Key(), spec.TemplateBase, fmt.Sprint(len(spec.Templates)), fmt.Sprint(spec.Enabled))
				continue
			}
			for _, ts := range spec.Templates {
				tbl.Row(spec.Key.Key(), spec.TemplateID(ts), ts.Output, conditions(ts))
			}
		}
		b.WriteString(tbl.String())
		b.WriteString("\n\n")
	}
	return b.String(), nil
}

// conditions describes the layout and level filters of a template.
func conditions(ts profile.TemplateSpec) string {
	var parts []string
	if len(ts.Layouts) > 0 {
		parts = append(parts, "layout="+strings.Join(ts.Layouts, "|"))
	}
	if len(ts.Levels) > 0 {
		parts = append(parts, "level="+strings.Join(ts.Levels, "|"))
	}
	if len(parts) == 0 {
		return "always"
	}
	return strings.Join(parts, " ")
}
