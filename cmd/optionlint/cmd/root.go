// Package cmd implements the optionlint CLI.
//
// optionlint checks select option catalogs for problems that would make a
// field behave unexpectedly: duplicate values, blank labels, missing values.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	drifterrors "github.com/go-drift/drift/pkg/errors"

	"github.com/go-drift/selectfield/cmd/optionlint/internal/config"
	"github.com/go-drift/selectfield/pkg/errlog"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// ErrProblems is returned when at least one catalog has problems.
var ErrProblems = errors.New("catalog problems found")

type options struct {
	strict  bool
	verbose bool
	watch   bool
	json    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "optionlint [files...]",
		Short: "Check select option catalogs",
		Long: `optionlint parses option catalog files and reports problems that make
select fields behave unexpectedly: duplicate values, blank labels, missing or
non-scalar values and empty lists.

Without arguments it lints the catalogs of the current Go module, as listed in
optionlint.yaml (default: catalogs/*.yaml).

Use --strict to also fail on duplicate labels.`,
		Version:       fmt.Sprintf("%s (built %s)", Version, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, args)
		},
	}
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "also fail on duplicate labels")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-lint files when they change")
	cmd.Flags().BoolVar(&opts.json, "json", false, "log as JSON instead of console lines")
	return cmd
}

// Execute runs the CLI. It returns ErrProblems when the lint found problems.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newLogger(w io.Writer, opts *options) *errlog.Handler {
	if opts.json {
		return errlog.New(w, opts.verbose)
	}
	return errlog.NewConsole(w, opts.verbose)
}

func run(ctx context.Context, stdout, stderr io.Writer, opts *options, args []string) error {
	handler := newLogger(stderr, opts)
	drifterrors.SetHandler(handler)
	defer drifterrors.SetHandler(nil)
	logger := handler.Logger()

	strict := opts.strict
	files := args
	if len(files) == 0 {
		root, err := config.FindProjectRoot()
		if err != nil {
			return err
		}
		cfg, err := config.Resolve(root)
		if err != nil {
			return err
		}
		logger.Debug().
			Str("module", cfg.ModulePath).
			Strs("catalogs", cfg.Catalogs).
			Msg("resolved project")
		if len(cfg.Catalogs) == 0 {
			logger.Warn().Str("project", cfg.Name).Msg("no catalogs found")
			return nil
		}
		files = cfg.Catalogs
		strict = strict || cfg.Strict
	}

	l := &linter{out: stdout, logger: logger, strict: strict}
	failed := l.lintAll(files)
	if opts.watch {
		return l.watch(ctx, files)
	}
	if failed {
		return ErrProblems
	}
	return nil
}
