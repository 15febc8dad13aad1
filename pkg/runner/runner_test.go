package runner_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gopep257/internal/logging"
	"github.com/yaklabco/gopep257/pkg/config"
	"github.com/yaklabco/gopep257/pkg/lint"
	"github.com/yaklabco/gopep257/pkg/lint/rules"
	"github.com/yaklabco/gopep257/pkg/runner"
)

const (
	cleanSource = "//! Crate.\n\n/// Add numbers.\npub fn add() {}\n"
	dirtySource = "pub fn f() {}\n"
)

func newRunner() *runner.Runner {
	return runner.New(lint.NewEngine(rules.NewChecker(rules.Options{})))
}

func TestRunner_Run_NoFiles(t *testing.T) {
	t.Parallel()

	result, err := newRunner().Run(context.Background(), runner.Options{WorkingDir: t.TempDir()})
	require.NoError(t, err)

	assert.Empty(t, result.Files)
	assert.Zero(t, result.Stats.FilesDiscovered)
	assert.False(t, result.HasIssues())
}

func TestRunner_Run_MultipleFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.rs", cleanSource)
	writeFile(t, dir, "b.rs", dirtySource)

	result, err := newRunner().Run(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	require.Len(t, result.Files, 2)
	assert.False(t, result.Files[0].Result.HasIssues())

	b := result.Files[1].Result
	require.NotNil(t, b)
	require.Len(t, b.Violations, 2)
	assert.Equal(t, "D104", b.Violations[0].Rule)
	assert.Equal(t, "D103", b.Violations[1].Rule)

	stats := result.Stats
	assert.Equal(t, 2, stats.FilesDiscovered)
	assert.Equal(t, 2, stats.FilesProcessed)
	assert.Equal(t, 1, stats.FilesWithIssues)
	assert.Equal(t, 4, stats.Docstrings)
	assert.Equal(t, 2, stats.ViolationsTotal)
	assert.Equal(t, 2, stats.ViolationsBySeverity[config.SeverityError])
	assert.True(t, result.HasFailures())
}

func TestRunner_Run_SerialVsParallelConsistency(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"a.rs", "b.rs", "c.rs", "d/e.rs", "d/f.rs", "g.rs"} {
		writeFile(t, dir, name, dirtySource)
	}
	writeFile(t, dir, "h.rs", cleanSource)

	serial, err := newRunner().Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 1})
	require.NoError(t, err)
	parallel, err := newRunner().Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 8})
	require.NoError(t, err)

	assert.Equal(t, serial.Stats, parallel.Stats)
	require.Len(t, parallel.Files, len(serial.Files))
	for i := range serial.Files {
		assert.Equal(t, serial.Files[i].Path, parallel.Files[i].Path)
		assert.Equal(t, serial.Files[i].Result.Violations, parallel.Files[i].Result.Violations)
	}
}

func TestRunner_Run_SkipGenerated(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "bindings.rs", "/* automatically generated by rust-bindgen */\n\npub const X: u32 = 1;\n")
	writeFile(t, dir, "lib.rs", cleanSource)

	result, err := newRunner().Run(context.Background(), runner.Options{WorkingDir: dir, SkipGenerated: true})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesSkipped)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
	assert.True(t, result.Files[0].Skipped)
	assert.Nil(t, result.Files[0].Result)

	result, err = newRunner().Run(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Zero(t, result.Stats.FilesSkipped)
	assert.True(t, result.HasIssues())
}

func TestRunner_Run_LogsCarryPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "lib.rs", cleanSource)

	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.NewWithWriter(&buf, "debug"))

	_, err := newRunner().Run(ctx, runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "linted file")
	assert.Contains(t, buf.String(), "lib.rs")
	assert.Contains(t, buf.String(), "docstrings=2")
}

func TestRunner_Run_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.rs", cleanSource)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRunner().Run(ctx, runner.Options{WorkingDir: dir})
	require.ErrorIs(t, err, context.Canceled)
}

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Ignore = []string{"target/**"}
	cfg.Jobs = 3
	cfg.NoRecursive = true
	cfg.SkipGenerated = true

	opts := runner.OptionsFromConfig(cfg, []string{"src"})
	assert.Equal(t, []string{"src"}, opts.Paths)
	assert.Equal(t, []string{"target/**"}, opts.ExcludeGlobs)
	assert.Equal(t, 3, opts.Jobs)
	assert.True(t, opts.NoRecursive)
	assert.True(t, opts.SkipGenerated)
}

func TestResult_NilSafe(t *testing.T) {
	t.Parallel()

	var result *runner.Result
	assert.False(t, result.HasFailures())
	assert.False(t, result.HasIssues())
	assert.False(t, result.HasErrors())
}
