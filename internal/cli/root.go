package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modu-ai/moai-starter/internal/apperr"
	"github.com/modu-ai/moai-starter/pkg/version"
)

// Error codes raised by the command layer itself.
const (
	CodeInvalidFlag apperr.Code = "cli.invalid-flag"
	CodeCancelled   apperr.Code = "cli.cancelled"
)

type depsKey struct{}

// NewRootCmd builds the moai-starter command tree. Each call returns a
// fresh tree with its own flag state.
func NewRootCmd() *cobra.Command {
	var opts Options

	root := &cobra.Command{
		Use:   "moai-starter",
		Short: "Generate JVM project skeletons from a validated blueprint",
		Long: `moai-starter turns a project description (identity, package, stack,
layout, dependencies) into a validated blueprint and generates a ready-to-build
project tree from it, optionally packaged as <artifactId>.zip.

The same input always produces the same files in the same order.`,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations["skipDeps"] == "true" {
				return nil
			}
			if opts.Stderr == nil {
				opts.Stderr = cmd.ErrOrStderr()
			}
			d, err := InitDependencies(opts)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), depsKey{}, d))
			return nil
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("moai-starter %s\n", version.GetVersion()))
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperr.Application(CodeInvalidFlag, err.Error())
	})

	pf := root.PersistentFlags()
	pf.StringVar(&opts.ConfigPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/moai-starter/config.yaml)")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output and animations")

	root.AddCommand(
		newGenerateCmd(),
		newProfilesCmd(),
		newPreviewCmd(),
		newVersionCmd(),
	)
	return root
}

// depsFrom returns the dependencies stored by the root PersistentPreRunE.
func depsFrom(cmd *cobra.Command) (*Dependencies, error) {
	d, ok := cmd.Context().Value(depsKey{}).(*Dependencies)
	if !ok || d == nil {
		return nil, apperr.Unexpected(fmt.Errorf("dependencies not initialized"))
	}
	return d, nil
}

// @MX:ANCHOR: [AUTO] Execute는 moai-starter CLI의 진입점입니다.
// @MX:REASON: [AUTO] cmd/moai-starter/main.go가 반환된 오류로 종료 코드를 결정합니다
// Execute runs the command tree with args from os.Args. ctx is cancelled
// on interrupt by the caller.
func Execute(ctx context.Context) error {
	return execute(ctx, NewRootCmd())
}

// execute runs cmd and gives every error an exit-code category.
func execute(ctx context.Context, cmd *cobra.Command) error {
	return classify(cmd.ExecuteContext(ctx))
}

// classify maps the untyped errors cobra and the context produce onto
// coded errors. Coded errors pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperr.As(err); ok {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return &apperr.Error{Kind: apperr.KindApplication, Code: CodeCancelled, Cause: err}
	case strings.HasPrefix(err.Error(), "unknown command "):
		return &apperr.Error{Kind: apperr.KindApplication, Code: CodeInvalidFlag, Args: []any{err.Error()}, Cause: err}
	}
	return apperr.Unexpected(err)
}

// usageArgs reports positional argument errors as invalid usage.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return apperr.Application(CodeInvalidFlag, err.Error())
		}
		return nil
	}
}
