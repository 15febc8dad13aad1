// Package fsutil reads Rust sources for linting and writes configuration
// files safely.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// MaxFileSize is the largest source file ReadFile accepts (16 MiB).
const MaxFileSize = 16 << 20

// Sentinel errors for error categorization via errors.Is. The underlying
// os error stays wrapped, so fs.ErrNotExist and friends also match.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrTooLarge indicates a file over MaxFileSize.
	ErrTooLarge = errors.New("file too large")
)

// ReadFile reads a source file, refusing directories and files over
// MaxFileSize.
func ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, categorize(path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, categorize(path, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	if stat.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrTooLarge, path, stat.Size(), MaxFileSize)
	}

	// Size can change between Stat and Read; the limit is enforced on the read too.
	content, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, categorize(path, err)
	}
	if len(content) > MaxFileSize {
		return nil, fmt.Errorf("%w: %s", ErrTooLarge, path)
	}

	return content, nil
}

func categorize(path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case os.IsPermission(err):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}
}
