// Package scaffold writes shared tooling configuration into a project
// without clobbering files that already exist.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// DefaultConflictSuffix is appended to the name of a file that already
// exists; the new content is written to that sibling instead.
const DefaultConflictSuffix = ".jskit"

// File is a file to scaffold, Path being relative to the writer's Dir.
type File struct {
	Path    string
	Content string
}

// Result describes where a File ended up.
type Result struct {
	// Path is the file actually written.
	Path string
	// Renamed is true when the target existed and Path is the sibling.
	Renamed bool
}

// Writer creates scaffold files under Dir.
type Writer struct {
	Dir            string
	ConflictSuffix string
}

// NewWriter returns a Writer for dir using DefaultConflictSuffix.
func NewWriter(dir string) *Writer {
	return &Writer{
		Dir:            dir,
		ConflictSuffix: DefaultConflictSuffix,
	}
}

// Write creates the file and its parent directories. When the target exists
// the content goes to the target name plus ConflictSuffix, overwriting a
// previous sibling.
func (w *Writer) Write(f File) (Result, error) {
	if f.Path == "" {
		return Result{}, errors.New("missing file path")
	}

	target := filepath.Join(w.Dir, f.Path)
	renamed := false

	if _, err := os.Stat(target); err == nil {
		target += w.ConflictSuffix
		renamed = true
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Result{}, fmt.Errorf("failed to stat %s: %w", target, err)
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(target, []byte(f.Content), 0o644); err != nil {
		return Result{}, fmt.Errorf("failed to write %s: %w", target, err)
	}

	return Result{Path: target, Renamed: renamed}, nil
}

// WriteAll writes the files concurrently and returns their results in the
// order of files. The first failure cancels writes that have not started.
func (w *Writer) WriteAll(ctx context.Context, files []File) ([]Result, error) {
	results := make([]Result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := w.Write(f)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
