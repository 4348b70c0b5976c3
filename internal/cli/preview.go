package cli

import (
	"fmt"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/spf13/cobra"

	"github.com/modu-ai/moai-starter/internal/core/project"
	"github.com/modu-ai/moai-starter/internal/resource"
	"github.com/modu-ai/moai-starter/internal/ui"
)

// readmePath is the generated file shown by preview.
const readmePath = "README.md"

func newPreviewCmd() *cobra.Command {
	var (
		f      generateFlags
		readme bool
		width  int
	)
	cmd := &cobra.Command{
		Use:   "preview [artifact-id]",
		Short: "Show what generate would write, without writing",
		Long: `Run the full generation pipeline in memory and print the resulting tree
and the rendered README. Nothing is written to disk.`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := depsFrom(cmd)
			if err != nil {
				return err
			}
			req, err := f.request(d.Config, args)
			if err != nil {
				return err
			}
			if err := f.complete(d, &req); err != nil {
				return err
			}

			var spinner ui.Spinner
			if !d.Headless.IsHeadless() {
				spinner = ui.NewProgress(d.Theme, d.Headless, d.Stderr).Spinner("Rendering templates")
			}
			svc := project.NewService(d.Factory, d.Resolver, memfs.New(), d.Logger)
			plan, err := svc.Plan(cmd.Context(), req)
			if spinner != nil {
				spinner.Stop()
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprint(out, ui.RenderSummary(d.Theme, ui.Summary{
				RequestID: plan.RequestID,
				Profile:   plan.Profile.Key(),
				Root:      plan.Blueprint.Identity().ArtifactID(),
				Paths:     resource.Paths(plan.Resources),
			})); err != nil {
				return err
			}
			if !readme {
				return nil
			}
			md, ok := findText(plan.Resources, readmePath)
			if !ok {
				return nil
			}
			rendered, err := ui.RenderMarkdown(d.Theme, md, width)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, "\n"+rendered)
			return err
		},
	}
	f.register(cmd, false)
	cmd.Flags().BoolVar(&readme, "readme", true, "Render the generated README below the tree")
	cmd.Flags().IntVar(&width, "width", ui.DefaultPreviewWidth, "Word-wrap width of the README preview")
	return cmd
}

// findText returns the content of the text resource at p.
func findText(resources []resource.Resource, p string) (string, bool) {
	for _, r := range resources {
		if t, ok := r.(resource.Text); ok && t.Path() == p {
			return t.Content(), true
		}
	}
	return "", false
}
