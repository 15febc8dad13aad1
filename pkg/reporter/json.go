package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gopep257/pkg/runner"
)

// JSONFileResult is written once per checked file.
type JSONFileResult struct {
	File       string          `json:"file"`
	Violations []JSONViolation `json:"violations"`
	Error      string          `json:"error,omitempty"`
}

// JSONViolation represents a single violation.
type JSONViolation struct {
	Rule     string `json:"rule"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
}

// JSONReporter writes a stream of JSON objects, one per file.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter. Skipped files are omitted.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	var total int
	for _, file := range result.Files {
		if file.Skipped {
			continue
		}

		out := JSONFileResult{
			File:       r.opts.displayPath(file.Path),
			Violations: make([]JSONViolation, 0),
		}

		if file.Error != nil {
			out.Error = file.Error.Error()
		}

		if file.Result != nil {
			for _, v := range r.opts.visible(file.Result.Violations) {
				out.Violations = append(out.Violations, JSONViolation{
					Rule:     v.Rule,
					Message:  v.Message,
					Line:     v.Line,
					Column:   v.Column,
					Severity: string(v.Severity),
				})
			}
		}
		total += len(out.Violations)

		if err := encoder.Encode(out); err != nil {
			return total, fmt.Errorf("encode JSON: %w", err)
		}
	}

	return total, nil
}
