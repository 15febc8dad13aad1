package lint

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/gopep257/internal/logging"
	"github.com/yaklabco/gopep257/pkg/docstring"
	"github.com/yaklabco/gopep257/pkg/fsutil"
	"github.com/yaklabco/gopep257/pkg/syntax"
)

// ErrRead indicates a source file could not be read.
var ErrRead = errors.New("read failure")

// FileResult contains the results of linting a single file.
type FileResult struct {
	// Path is the file that was linted.
	Path string

	// Docstrings is the number of docstrings checked, including missing ones.
	Docstrings int

	// Violations in declaration-encounter order.
	Violations []Violation
}

// HasIssues returns true if any violations were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Violations) > 0
}

// IssueCount returns the total number of violations.
func (fr *FileResult) IssueCount() int {
	return len(fr.Violations)
}

// Engine coordinates parsing, doc extraction, and rule execution.
type Engine struct {
	// Checker holds the rule battery.
	Checker *Checker
}

// NewEngine creates a new Engine around checker.
func NewEngine(checker *Checker) *Engine {
	return &Engine{Checker: checker}
}

// LintPath reads and lints a single file.
func (e *Engine) LintPath(ctx context.Context, path string) (*FileResult, error) {
	ctx = logging.WithFile(ctx, path)
	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return e.LintFile(ctx, path, content)
}

// LintFile lints already loaded source. A syntax failure is fatal for the
// file and no partial result is returned.
func (e *Engine) LintFile(ctx context.Context, path string, content []byte) (*FileResult, error) {
	docs, err := e.Docstrings(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	result := &FileResult{
		Path:       path,
		Docstrings: len(docs),
		Violations: e.Checker.CheckAll(docs),
	}

	logging.FromContext(ctx).Debug("linted file",
		logging.FieldDocstrings, result.Docstrings,
		logging.FieldViolations, len(result.Violations),
	)

	return result, nil
}

// Docstrings parses content and returns its docstrings in document order.
func (e *Engine) Docstrings(ctx context.Context, content []byte) ([]docstring.Docstring, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("linting cancelled: %w", err)
	}

	tree, err := syntax.NewParser().Parse(ctx, content)
	if err != nil {
		return nil, err
	}
	if tree.HasErrors() {
		logging.FromContext(ctx).Debug("source has syntax errors; continuing with recovered tree")
	}

	return docstring.Extract(tree.Root()), nil
}
