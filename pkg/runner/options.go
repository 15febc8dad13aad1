// Package runner provides multi-file linting orchestration.
package runner

import "github.com/yaklabco/gopep257/pkg/config"

// Options controls multi-file linting behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// NoRecursive limits a directory argument to the Rust files it holds
	// directly.
	NoRecursive bool

	// ExcludeGlobs are glob patterns, relative to WorkingDir, used to skip
	// files or directories. "**" crosses directory boundaries.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// SkipGenerated skips files that look machine generated.
	SkipGenerated bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.GOMAXPROCS).
	Jobs int
}

// OptionsFromConfig fills the config-driven fields of Options.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	return Options{
		Paths:          paths,
		NoRecursive:    cfg.NoRecursive,
		ExcludeGlobs:   cfg.Ignore,
		FollowSymlinks: cfg.FollowSymlinks,
		SkipGenerated:  cfg.SkipGenerated,
		Jobs:           cfg.Jobs,
	}
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
