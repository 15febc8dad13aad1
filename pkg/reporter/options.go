package reporter

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gopep257/pkg/config"
	"github.com/yaklabco/gopep257/pkg/lint"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized text output.
	Color config.ColorMode

	// ShowWarnings includes warning-severity violations. Errors are always shown.
	ShowWarnings bool

	// ShowSummary displays a one-line summary after text results.
	ShowSummary bool

	// Compact disables JSON indentation.
	Compact bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer: os.Stdout,
		Format: FormatText,
		Color:  config.ColorAuto,
	}
}

// OptionsFromConfig derives reporter options from configuration.
func OptionsFromConfig(cfg *config.Config, w io.Writer, workDir string) Options {
	return Options{
		Writer:       w,
		Format:       cfg.Format,
		Color:        cfg.Color,
		ShowWarnings: cfg.Warnings,
		ShowSummary:  cfg.Summary,
		Compact:      cfg.Compact,
		WorkingDir:   workDir,
	}
}

// visible drops warnings unless they were asked for.
func (o Options) visible(violations []lint.Violation) []lint.Violation {
	if o.ShowWarnings {
		return violations
	}
	shown := make([]lint.Violation, 0, len(violations))
	for _, v := range violations {
		if !v.IsWarning() {
			shown = append(shown, v)
		}
	}
	return shown
}

// displayPath makes path relative to WorkingDir when it lies beneath it.
func (o Options) displayPath(path string) string {
	if o.WorkingDir == "" {
		return path
	}
	rel, err := filepath.Rel(o.WorkingDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
