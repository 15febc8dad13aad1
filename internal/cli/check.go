package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gopep257/internal/configloader"
	"github.com/yaklabco/gopep257/internal/logging"
	"github.com/yaklabco/gopep257/pkg/config"
	"github.com/yaklabco/gopep257/pkg/lint"
	"github.com/yaklabco/gopep257/pkg/lint/rules"
	"github.com/yaklabco/gopep257/pkg/reporter"
	"github.com/yaklabco/gopep257/pkg/runner"
)

type checkFlags struct {
	format       string
	ignore       []string
	strictPeriod bool
}

func newCheckCommand() *cobra.Command {
	var cfg config.Config
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:     "check [paths...]",
		Aliases: []string{"lint"},
		Short:   "Check Rust files for docstring problems",
		Long:    checkLongDescription,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, &cfg, flags)
		},
	}

	addCheckFlags(cmd, &cfg, flags)

	return cmd
}

const checkLongDescription = `Check the doc comments of Rust source files.

Paths may name files or directories. Directories are searched recursively
for .rs files, honoring .gitignore and .ignore files and skipping hidden
directories and cargo build output. With no paths, the current directory
is checked.

Warning-severity rules (D301, D401, D405, D406) are hidden unless
--warnings is given. The exit status is 1 when any shown violation remains.

Examples:
  pep257 check                     # Check the current directory
  pep257 check src/lib.rs          # Check a single file
  pep257 check -w crates/          # Include warnings
  pep257 check --format json       # Machine-readable output
  pep257 check --no-fail           # Report but always exit 0`

func runCheck(cmd *cobra.Command, args []string, cliCfg *config.Config, flags *checkFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	// Only explicitly provided flags may override config files.
	if cmd.Flags().Changed("format") {
		format, err := reporter.ParseFormat(flags.format)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
		}
		cliCfg.Format = format
	}
	if cmd.Flags().Changed("color") {
		color, err := cmd.Flags().GetString("color")
		if err != nil {
			return fmt.Errorf("get color flag: %w", err)
		}
		cliCfg.Color = config.ColorMode(color)
	}
	if flags.strictPeriod {
		cliCfg.SummaryPunctuation = config.PunctuationStrict
	}
	cliCfg.Ignore = flags.ignore

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	cfg := loadResult.Config

	logger.Debug("configuration loaded",
		logging.FieldConfig, loadResult.LoadedFrom,
		logging.FieldFormat, cfg.Format,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldWarnings, cfg.Warnings,
		logging.FieldPunctuation, cfg.SummaryPunctuation,
		logging.FieldRecursive, !cfg.NoRecursive,
	)

	engine := lint.NewEngine(rules.NewChecker(rules.OptionsFromConfig(cfg)))

	runOpts := runner.OptionsFromConfig(cfg, args)
	runOpts.WorkingDir = workDir

	logger.Debug("starting check",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
	)

	start := time.Now()
	result, err := runner.New(engine).Run(ctx, runOpts)
	if err != nil {
		if errors.Is(err, runner.ErrInvalidGlob) {
			return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
		}
		return fmt.Errorf("check failed: %w", err)
	}

	logger.Info("check finished",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldDocstrings, result.Stats.Docstrings,
		logging.FieldViolations, result.Stats.ViolationsTotal,
		logging.FieldDuration, time.Since(start),
	)

	// Text output prints file errors inline; JSON keeps them in the stream.
	if cfg.Format == config.FormatJSON {
		for _, file := range result.Files {
			if file.Error != nil {
				logger.Error("could not check file", logging.FieldPath, file.Path, logging.FieldError, file.Error)
			}
		}
	}

	rep, err := reporter.New(reporter.OptionsFromConfig(cfg, cmd.OutOrStdout(), workDir))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}

	shown, err := rep.Report(ctx, result)
	if err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	switch {
	case cfg.NoFail:
		return nil
	case shown > 0:
		return ErrLintIssuesFound
	case result.HasErrors():
		return ErrFilesFailed
	default:
		return nil
	}
}

func addCheckFlags(cmd *cobra.Command, cfg *config.Config, flags *checkFlags) {
	cmd.Flags().BoolVarP(&cfg.Warnings, "warnings", "w", false, "show warning-severity violations")
	cmd.Flags().StringVar(&flags.format, "format", string(config.FormatText), "output format: text, json")
	cmd.Flags().BoolVar(&cfg.NoFail, "no-fail", false, "exit 0 even when violations are found")
	cmd.Flags().BoolVar(&flags.strictPeriod, "strict-period", false, "accept only '.' as summary punctuation (D400)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&cfg.Summary, "summary", false, "print a one-line summary after text output")
	cmd.Flags().BoolVar(&cfg.Compact, "compact", false, "disable JSON indentation")
	cmd.Flags().BoolVar(&cfg.NoRecursive, "no-recursive", false, "check only the files directly inside directory arguments")
	cmd.Flags().BoolVar(&cfg.FollowSymlinks, "follow-symlinks", false, "traverse symlinked directories")
	cmd.Flags().BoolVar(&cfg.SkipGenerated, "skip-generated", false, "skip files that look machine generated")
}
