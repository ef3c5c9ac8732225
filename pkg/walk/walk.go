// Package walk enumerates text files under a directory root for position
// analysis. It honors .gitignore, skips hidden, binary, and oversized
// files, and reads eligible files with a bounded pool of readers.
package walk

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"
)

// Config controls which files a Walker visits.
type Config struct {
	Root           string
	IncludeHidden  bool  // visit dotfiles and dot-directories
	FollowSymlinks bool  // follow symlinked files
	MaxFileSize    int64 // skip files larger than this (0 = no limit)
}

// Walker enumerates files from a filesystem directory.
type Walker struct {
	config Config
}

// New creates a walker for the given config.
func New(config Config) *Walker {
	return &Walker{config: config}
}

// fileEntry holds metadata collected during the walk phase.
type fileEntry struct {
	path string
}

// Walk visits every eligible file under the root and invokes the callback
// with its path and content. Phase 1 walks the tree and collects eligible
// paths; phase 2 reads files in parallel. A callback error aborts the walk.
func (w *Walker) Walk(ctx context.Context, callback func(path string, content []byte) error) error {
	// Load .gitignore patterns if present
	var ignore *gitignore.GitIgnore
	gitignorePath := filepath.Join(w.config.Root, ".gitignore")
	if _, err := os.Stat(gitignorePath); err == nil {
		ignore, _ = gitignore.CompileIgnoreFile(gitignorePath)
	}

	var files []fileEntry
	err := filepath.Walk(w.config.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if info.IsDir() {
			if !w.config.IncludeHidden && isHidden(info.Name()) && path != w.config.Root {
				return filepath.SkipDir
			}
			return nil
		}

		if info.Mode()&os.ModeSymlink != 0 && !w.config.FollowSymlinks {
			return nil
		}

		if !w.config.IncludeHidden && isHidden(info.Name()) {
			return nil
		}

		if w.config.MaxFileSize > 0 && info.Size() > w.config.MaxFileSize {
			return nil
		}

		if ignore != nil {
			relPath, err := filepath.Rel(w.config.Root, path)
			if err != nil {
				return err
			}
			if ignore.MatchesPath(relPath) {
				return nil
			}
		}

		files = append(files, fileEntry{path: path})
		return nil
	})
	if err != nil {
		return err
	}

	numReaders := runtime.NumCPU()
	if numReaders < 1 {
		numReaders = 1
	}

	origCtx := ctx
	g, ctx := errgroup.WithContext(ctx)
	pathsCh := make(chan fileEntry, numReaders*2)

	g.Go(func() error {
		defer close(pathsCh)
		for _, f := range files {
			select {
			case pathsCh <- f:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < numReaders; i++ {
		g.Go(func() error {
			for f := range pathsCh {
				if err := w.processFile(ctx, f.path, callback); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	// If the caller's context was cancelled but all goroutines finished
	// before noticing, propagate the cancellation.
	if origCtx.Err() != nil {
		return origCtx.Err()
	}
	return nil
}

// processFile reads a single file and invokes the callback. Binary files
// are skipped: position tracking assumes valid UTF-8 text.
func (w *Walker) processFile(ctx context.Context, path string, callback func(path string, content []byte) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file %s: %w", path, err)
	}

	if isBinary(content) {
		return nil
	}

	return callback(path, content)
}

// isHidden checks if a filename is hidden (starts with .).
func isHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}

// isBinary detects if content is binary by checking the first 8KB for null
// bytes.
func isBinary(content []byte) bool {
	checkSize := len(content)
	if checkSize > 8192 {
		checkSize = 8192
	}
	return bytes.IndexByte(content[:checkSize], 0) != -1
}
