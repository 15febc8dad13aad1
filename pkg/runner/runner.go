package runner

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/gopep257/internal/logging"
	"github.com/yaklabco/gopep257/pkg/fsutil"
	"github.com/yaklabco/gopep257/pkg/langdetect"
	"github.com/yaklabco/gopep257/pkg/lint"
)

// Runner orchestrates multi-file linting with a lint.Engine.
type Runner struct {
	// Engine lints a single file. It is shared by all workers.
	Engine *lint.Engine
}

// New creates a new Runner with the given engine.
func New(engine *lint.Engine) *Runner {
	return &Runner{Engine: engine}
}

// Run discovers files under opts.Paths and lints them concurrently.
// Per-file failures are recorded in the outcomes and never stop the run.
// Outcomes are ordered by path regardless of completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx)
	logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each worker owns its slot, so no locking is needed.
	outcomes := make([]FileOutcome, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.lintFile(gctx, path, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}

	logger.Debug("run finished",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesSkipped, result.Stats.FilesSkipped,
		logging.FieldFilesFailed, result.Stats.FilesErrored,
		logging.FieldViolations, result.Stats.ViolationsTotal,
	)

	return result, nil
}

// lintFile reads and lints one file, turning failures into outcome data.
func (r *Runner) lintFile(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}
	ctx = logging.WithFile(ctx, path)

	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = fmt.Errorf("%w: %w", lint.ErrRead, err)
		return outcome
	}

	if opts.SkipGenerated && langdetect.IsGenerated(path, content) {
		logging.FromContext(ctx).Debug("skipping generated file")
		outcome.Skipped = true
		return outcome
	}

	fileResult, err := r.Engine.LintFile(ctx, path, content)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Result = fileResult
	return outcome
}
