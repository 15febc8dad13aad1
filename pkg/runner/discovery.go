package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/yaklabco/gopep257/pkg/langdetect"
)

// ErrInvalidGlob indicates an exclude pattern that does not compile.
var ErrInvalidGlob = errors.New("invalid glob pattern")

// ignoreFileNames are read in every visited directory.
//
//nolint:gochecknoglobals // fixed list
var ignoreFileNames = []string{".gitignore", ".ignore"}

// buildOutputDir is cargo's default output directory name.
const buildOutputDir = "target"

// Discover finds Rust files matching opts under the given working directory.
// It returns a deterministically sorted list of absolute file paths.
// Paths naming a file are always included; directories are filtered.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	excludes, err := compileGlobs(opts.ExcludeGlobs)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(paths ...string) {
		for _, path := range paths {
			if _, ok := seen[path]; !ok {
				seen[path] = struct{}{}
				files = append(files, path)
			}
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			add(absPath)
			continue
		}

		w := &walker{workDir: workDir, root: absPath, excludes: excludes, opts: opts}
		var discovered []string
		if opts.NoRecursive {
			discovered, err = w.listDirectory(absPath)
		} else {
			discovered, err = w.walk(ctx, absPath)
		}
		if err != nil {
			return nil, err
		}
		add(discovered...)
	}

	slices.Sort(files)

	return files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// compileGlobs compiles exclude patterns with '/' as the separator, so "*"
// stays within one path segment and "**" crosses them.
func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(filepath.ToSlash(pattern), '/')
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidGlob, pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// ignoreMatcher is one compiled ignore file and the directory it governs.
type ignoreMatcher struct {
	dir     string
	matcher *ignore.GitIgnore
}

// walker carries the per-directory-argument state of a discovery walk.
type walker struct {
	workDir  string
	root     string
	excludes []glob.Glob
	opts     Options
	ignores  []ignoreMatcher
}

// walk recursively walks root and returns matching Rust files.
func (w *walker) walk(ctx context.Context, root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			if path != root && w.skipDir(path, entry.Name()) {
				return filepath.SkipDir
			}
			w.loadIgnoreFiles(path)
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				return nil //nolint:nilerr // broken symlinks are skipped
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil //nolint:nilerr // inaccessible targets are skipped
			}
			if info.IsDir() {
				if !w.opts.FollowSymlinks || w.skipDir(path, entry.Name()) {
					return nil
				}
				// Walk the target; WalkDir uses Lstat on its root.
				subFiles, err := w.walk(ctx, realPath)
				if err != nil {
					return err
				}
				files = append(files, subFiles...)
				return nil
			}
		}

		if w.matchesFile(path, entry.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// listDirectory returns the Rust files directly inside dir.
func (w *walker) listDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}
	w.loadIgnoreFiles(dir)

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if w.matchesFile(path, entry.Name()) {
			files = append(files, path)
		}
	}
	return files, nil
}

// skipDir decides whether a directory below the walk root is pruned.
func (w *walker) skipDir(path, name string) bool {
	rel := w.rel(path)
	switch {
	case langdetect.IsHidden(name):
		return true
	case langdetect.IsVendored(relSlash(w.root, path) + "/"):
		return true
	case w.excluded(rel) || w.excluded(rel+"/"):
		return true
	case w.ignored(path, true):
		return true
	case name == buildOutputDir:
		return isBuildOutput(path)
	}
	return false
}

// matchesFile checks a regular file against the inclusion criteria.
func (w *walker) matchesFile(path, name string) bool {
	if langdetect.IsHidden(name) || !langdetect.IsRust(name) {
		return false
	}
	return !w.excluded(w.rel(path)) && !w.ignored(path, false)
}

// rel is path relative to the working directory, which exclude globs use.
func (w *walker) rel(path string) string {
	return relSlash(w.workDir, path)
}

func relSlash(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}

func (w *walker) excluded(rel string) bool {
	for _, g := range w.excludes {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// loadIgnoreFiles compiles the ignore files found in dir.
func (w *walker) loadIgnoreFiles(dir string) {
	for _, name := range ignoreFileNames {
		matcher, err := ignore.CompileIgnoreFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		w.ignores = append(w.ignores, ignoreMatcher{dir: dir, matcher: matcher})
	}
}

// ignored applies every loaded ignore file whose directory contains path.
func (w *walker) ignored(path string, isDir bool) bool {
	for _, ig := range w.ignores {
		rel, err := filepath.Rel(ig.dir, path)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}
		rel = filepath.ToSlash(rel)
		if isDir {
			rel += "/"
		}
		if ig.matcher.MatchesPath(rel) {
			return true
		}
	}
	return false
}

// isBuildOutput reports whether a directory named target is cargo output:
// either its parent holds Cargo.lock or it holds no Rust files directly.
func isBuildOutput(dir string) bool {
	if _, err := os.Stat(filepath.Join(filepath.Dir(dir), "Cargo.lock")); err == nil {
		return true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return true
	}
	for _, entry := range entries {
		if !entry.IsDir() && langdetect.IsRust(entry.Name()) {
			return false
		}
	}
	return true
}
