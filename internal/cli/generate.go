package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/moai-starter/internal/apperr"
	"github.com/modu-ai/moai-starter/internal/cli/wizard"
	"github.com/modu-ai/moai-starter/internal/config"
	"github.com/modu-ai/moai-starter/internal/core/project"
	"github.com/modu-ai/moai-starter/internal/ui"
)

// generateFlags mirrors the generation request on the command line.
type generateFlags struct {
	groupID          string
	artifactID       string
	name             string
	description      string
	packageName      string
	profile          string
	layout           string
	enforcement      string
	sampleCode       string
	java             string
	frameworkVersion string
	dependencies     []string
	dir              string
	force            bool
	noArchive        bool
	nonInteractive   bool
}

func (f *generateFlags) register(cmd *cobra.Command, withOutput bool) {
	fl := cmd.Flags()
	fl.StringVar(&f.groupID, "group-id", "", "Group id, e.g. com.acme (default: config defaults.group_id)")
	fl.StringVar(&f.artifactID, "artifact-id", "", "Artifact id, e.g. order-service")
	fl.StringVar(&f.name, "name", "", "Project display name (default: artifact id)")
	fl.StringVar(&f.description, "description", "", "One-line project description")
	fl.StringVar(&f.packageName, "package", "", "Base package (default: <group-id>.<artifact-id without dashes>)")
	fl.StringVar(&f.profile, "profile", "", "Profile id or framework:buildTool:language")
	fl.StringVar(&f.layout, "layout", "", "Source layout: standard or hexagonal")
	fl.StringVar(&f.enforcement, "enforcement", "", "Architecture enforcement: none, basic or strict")
	fl.StringVar(&f.sampleCode, "sample-code", "", "Sample code level: none, minimal or full")
	fl.StringVar(&f.java, "java", "", "Java version: 11, 17, 21 or 25")
	fl.StringVar(&f.frameworkVersion, "framework-version", "", "Framework release (default: newest supporting --java)")
	fl.StringArrayVarP(&f.dependencies, "dependency", "d", nil, "Dependency alias or group:artifact[:version[:scope]] (repeatable)")
	fl.BoolVar(&f.nonInteractive, "non-interactive", false, "Never prompt; use flags and config defaults")
	if withOutput {
		fl.StringVar(&f.dir, "dir", "", "Output directory (default: ./<artifact-id>)")
		fl.BoolVar(&f.force, "force", false, "Write into a non-empty output directory")
		fl.BoolVar(&f.noArchive, "no-archive", false, "Do not create <artifact-id>.zip")
	}
}

// request maps the flags to a Request. Blank group id falls back to the
// configured default; every other blank field is defaulted by the factory.
func (f *generateFlags) request(cfg *config.Config, args []string) (project.Request, error) {
	artifactID := f.artifactID
	if artifactID == "" && len(args) > 0 {
		artifactID = args[0]
	}
	deps, err := project.ParseDependencies(f.dependencies, cfg.DependencyAliases)
	if err != nil {
		return project.Request{}, err
	}
	return project.Request{
		GroupID:          f.groupID,
		ArtifactID:       artifactID,
		Name:             f.name,
		Description:      f.description,
		PackageName:      f.packageName,
		Profile:          f.profile,
		Layout:           f.layout,
		Enforcement:      f.enforcement,
		SampleCode:       f.sampleCode,
		JavaVersion:      f.java,
		FrameworkVersion: f.frameworkVersion,
		Dependencies:     deps,
		TargetDir:        f.dir,
		Force:            f.force,
		Archive:          cfg.Output.Archive && !f.noArchive,
	}, nil
}

// complete fills blank fields, asking the user when a terminal is attached
// and --non-interactive is not set.
func (f *generateFlags) complete(d *Dependencies, req *project.Request) error {
	if f.nonInteractive || d.Headless.IsHeadless() {
		if req.GroupID == "" {
			req.GroupID = d.Config.Defaults.GroupID
		}
		return nil
	}

	res := &wizard.Result{
		GroupID:     req.GroupID,
		ArtifactID:  req.ArtifactID,
		Name:        req.Name,
		Description: req.Description,
		Profile:     req.Profile,
		Layout:      req.Layout,
		Enforcement: req.Enforcement,
		SampleCode:  req.SampleCode,
		JavaVersion: req.JavaVersion,
	}
	defaults := d.Config.Defaults
	questions := wizard.DefaultQuestions(wizard.Defaults{
		GroupID:     defaults.GroupID,
		Profile:     defaults.Profile,
		Layout:      defaults.Layout,
		Enforcement: defaults.Enforcement,
		SampleCode:  defaults.SampleCode,
		JavaVersion: defaults.JavaVersion,
	})
	if len(wizard.FilteredQuestions(questions, res)) == 0 {
		return nil
	}
	if err := wizard.Run(questions, res, d.Theme.NoColor); err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			return apperr.Application(CodeCancelled)
		}
		return apperr.Unexpected(err)
	}

	req.GroupID = res.GroupID
	req.ArtifactID = res.ArtifactID
	req.Name = res.Name
	req.Description = res.Description
	req.Profile = res.Profile
	req.Layout = res.Layout
	req.Enforcement = res.Enforcement
	req.SampleCode = res.SampleCode
	req.JavaVersion = res.JavaVersion
	return nil
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate [artifact-id]",
		Short: "Generate a new project",
		Long: `Generate a new project from flags, config defaults and, when a terminal is
attached, an interactive wizard for the values still missing.

Examples:
  moai-starter generate orders --group-id com.acme
  moai-starter generate --artifact-id orders --profile spring-boot:gradle:java \
      --layout hexagonal --enforcement strict -d actuator -d postgres
  moai-starter generate orders --dir ./out/orders --no-archive --non-interactive`,
		Aliases: []string{"new"},
		Args:    usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, &f, args)
		},
	}
	f.register(cmd, true)
	return cmd
}

func runGenerate(cmd *cobra.Command, f *generateFlags, args []string) error {
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

	target, err := ResolveTarget(req.TargetDir)
	if err != nil {
		return err
	}
	req.TargetDir = target.Dir

	var opts []project.ServiceOption
	var tracker *ui.Tracker
	if !d.Headless.IsHeadless() {
		tracker = ui.NewTracker(ui.NewProgress(d.Theme, d.Headless, d.Stderr), "Writing")
		opts = append(opts, project.WithProgress(tracker.Observe))
	}

	result, err := d.NewService(target, opts...).Generate(cmd.Context(), req)
	if tracker != nil {
		tracker.Finish()
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), ui.RenderSummary(d.Theme, ui.Summary{
		RequestID: result.RequestID,
		Profile:   result.Profile.Key(),
		Root:      target.Abs(result.Root),
		Archive:   target.Abs(result.Archive),
		Paths:     result.Files,
	}))
	return err
}
