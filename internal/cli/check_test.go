package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gopep257/internal/cli"
)

// warnOnlySource has a single warning: D401 on line 3.
const warnOnlySource = `//! Compute things.

/// Returns the sum.
pub fn add(a: i32, b: i32) -> i32 {
    a + b
}
`

// dirtySource adds an undocumented public struct (D101 at 8:1).
const dirtySource = warnOnlySource + `
pub struct Point;
`

const cleanSource = `//! Compute things.

/// Add two numbers!
pub fn add(a: i32, b: i32) -> i32 {
    a + b
}
`

// checkEnv isolates a check run from user and project configuration and
// returns a directory of Rust sources plus the explicit config path.
func checkEnv(t *testing.T, configYAML string, files map[string]string) (string, string) {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, name := range []string{"PEP257_WARNINGS", "PEP257_FORMAT", "PEP257_NO_FAIL", "PEP257_IGNORE"} {
		t.Setenv(name, "")
	}

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	cfgPath := filepath.Join(t.TempDir(), "pep257.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configYAML), 0o644))

	return dir, cfgPath
}

func runCheck(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"check", "--color", "never"}, args...))

	err := cmd.Execute()
	return stdout.String(), err
}

func TestCheck_ErrorsShownWarningsHidden(t *testing.T) {
	dir, cfg := checkEnv(t, "", map[string]string{"src/lib.rs": dirtySource})

	out, err := runCheck(t, "--config", cfg, dir)
	require.ErrorIs(t, err, cli.ErrLintIssuesFound)
	assert.Equal(t, cli.ExitLintIssues, cli.ExitCode(err))

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 1, out)
	assert.True(t, strings.HasSuffix(lines[0], "lib.rs:8:1 error [D101]: Missing docstring in public struct"), lines[0])
}

func TestCheck_WarningsFlag(t *testing.T) {
	dir, cfg := checkEnv(t, "", map[string]string{"lib.rs": warnOnlySource})

	out, err := runCheck(t, "--config", cfg, dir)
	require.NoError(t, err, "hidden warnings do not fail the run")
	assert.Empty(t, out)

	out, err = runCheck(t, "--config", cfg, "-w", dir)
	require.ErrorIs(t, err, cli.ErrLintIssuesFound)
	assert.Contains(t, out, "lib.rs:3:1 warning [D401]: First line should be in imperative mood")
}

func TestCheck_WarningsFromConfigFile(t *testing.T) {
	dir, cfg := checkEnv(t, "warnings: true\n", map[string]string{"lib.rs": warnOnlySource})

	out, err := runCheck(t, "--config", cfg, dir)
	require.ErrorIs(t, err, cli.ErrLintIssuesFound)
	assert.Contains(t, out, "[D401]")
}

func TestCheck_NoFail(t *testing.T) {
	dir, cfg := checkEnv(t, "", map[string]string{"lib.rs": dirtySource})

	out, err := runCheck(t, "--config", cfg, "--no-fail", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "[D101]")
}

func TestCheck_StrictPeriod(t *testing.T) {
	dir, cfg := checkEnv(t, "", map[string]string{"lib.rs": cleanSource})

	out, err := runCheck(t, "--config", cfg, dir)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = runCheck(t, "--config", cfg, "--strict-period", dir)
	require.ErrorIs(t, err, cli.ErrLintIssuesFound)
	assert.Contains(t, out, "[D400]")
}

func TestCheck_SingleFileArgument(t *testing.T) {
	dir, cfg := checkEnv(t, "", map[string]string{
		"a.rs": cleanSource,
		"b.rs": dirtySource,
	})

	_, err := runCheck(t, "--config", cfg, filepath.Join(dir, "a.rs"))
	require.NoError(t, err)
}

func TestCheck_IgnoreFlag(t *testing.T) {
	dir, cfg := checkEnv(t, "", map[string]string{
		"src/lib.rs":     cleanSource,
		"src/gen/out.rs": dirtySource,
	})

	_, err := runCheck(t, "--config", cfg, dir)
	require.ErrorIs(t, err, cli.ErrLintIssuesFound)

	_, err = runCheck(t, "--config", cfg, "--ignore", "**/gen/**", dir)
	require.NoError(t, err)
}

func TestCheck_NoRecursive(t *testing.T) {
	dir, cfg := checkEnv(t, "", map[string]string{
		"lib.rs":        cleanSource,
		"nested/bad.rs": dirtySource,
	})

	_, err := runCheck(t, "--config", cfg, "--no-recursive", dir)
	require.NoError(t, err)
}

func TestCheck_JSONOutput(t *testing.T) {
	dir, cfg := checkEnv(t, "", map[string]string{
		"a.rs": cleanSource,
		"b.rs": dirtySource,
	})

	out, err := runCheck(t, "--config", cfg, "--format", "json", "-w", dir)
	require.ErrorIs(t, err, cli.ErrLintIssuesFound)

	type violation struct {
		Rule     string `json:"rule"`
		Line     int    `json:"line"`
		Column   int    `json:"column"`
		Severity string `json:"severity"`
	}
	type fileResult struct {
		File       string      `json:"file"`
		Violations []violation `json:"violations"`
	}

	var files []fileResult
	dec := json.NewDecoder(strings.NewReader(out))
	for dec.More() {
		var f fileResult
		require.NoError(t, dec.Decode(&f))
		files = append(files, f)
	}

	require.Len(t, files, 2)
	assert.Equal(t, "a.rs", filepath.Base(files[0].File))
	assert.Empty(t, files[0].Violations)
	assert.Equal(t, []violation{
		{Rule: "D401", Line: 3, Column: 1, Severity: "warning"},
		{Rule: "D101", Line: 8, Column: 1, Severity: "error"},
	}, files[1].Violations)
}

func TestCheck_Summary(t *testing.T) {
	dir, cfg := checkEnv(t, "", map[string]string{"lib.rs": dirtySource})

	out, err := runCheck(t, "--config", cfg, "--summary", dir)
	require.ErrorIs(t, err, cli.ErrLintIssuesFound)
	assert.Contains(t, out, "1 violation (1 error) in 1 file, 1 warning hidden (use --warnings)")
}

func TestCheck_MissingPath(t *testing.T) {
	dir, cfg := checkEnv(t, "", nil)

	_, err := runCheck(t, "--config", cfg, filepath.Join(dir, "nope.rs"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCode(err))
}

func TestCheck_InvalidConfig(t *testing.T) {
	dir, cfg := checkEnv(t, "format: sarif\n", map[string]string{"lib.rs": cleanSource})

	_, err := runCheck(t, "--config", cfg, dir)
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestCheck_InvalidFormatFlag(t *testing.T) {
	dir, cfg := checkEnv(t, "", map[string]string{"lib.rs": cleanSource})

	_, err := runCheck(t, "--config", cfg, "--format", "sarif", dir)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
}
