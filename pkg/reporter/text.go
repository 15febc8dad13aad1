package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gopep257/internal/ui/pretty"
	"github.com/yaklabco/gopep257/pkg/runner"
)

// TextReporter writes one line per violation.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	var tally pretty.Tally
	if result != nil {
		tally.FilesChecked = result.Stats.FilesProcessed

		for _, file := range result.Files {
			path := r.opts.displayPath(file.Path)

			if file.Error != nil {
				fmt.Fprint(r.bw, r.styles.FormatFileError(path, file.Error))
				tally.FilesFailed++
				continue
			}
			if file.Result == nil {
				continue
			}

			shown := r.opts.visible(file.Result.Violations)
			tally.HiddenWarnings += len(file.Result.Violations) - len(shown)
			if len(shown) > 0 {
				tally.FilesWithIssues++
			}

			for _, v := range shown {
				fmt.Fprint(r.bw, r.styles.FormatViolation(path, v))
				if v.IsWarning() {
					tally.Warnings++
				} else {
					tally.Errors++
				}
			}
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(tally))
	}

	return tally.Errors + tally.Warnings, nil
}
