package combine

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"

	"repoextract/pkg/ignore"
)

// oversizedList is the walk's shared accumulator of large files.
type oversizedList struct {
	mu    sync.Mutex
	items []OversizedFile
}

func (l *oversizedList) add(item OversizedFile) {
	l.mu.Lock()
	l.items = append(l.items, item)
	l.mu.Unlock()
}

// Walker discovers candidate files under a root directory.
type Walker struct {
	filter  PathFilter
	gi      *ignore.GitIgnore
	workers int
	exclude map[string]struct{}
	logger  *zap.Logger
}

// NewWalker returns a walker deciding with filter and, when gi is non-nil,
// additionally with .combineignore patterns. workers <= 0 means GOMAXPROCS.
func NewWalker(filter PathFilter, gi *ignore.GitIgnore, workers int, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Walker{
		filter:  filter,
		gi:      gi,
		workers: workers,
		exclude: make(map[string]struct{}),
		logger:  logger,
	}
}

// Exclude keeps the given files out of the result regardless of filtering.
// It is used for the tool's own output files.
func (w *Walker) Exclude(paths ...string) *Walker {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if abs, err := filepath.Abs(p); err == nil {
			w.exclude[abs] = struct{}{}
		}
	}
	return w
}

// Walk traverses root, pruning ignored directories before descending, and
// returns the candidate files together with those above
// LargeFileThreshold. Entries that cannot be read are logged and skipped;
// only an inaccessible root is an error. The order of Files is not stable.
func (w *Walker) Walk(root string) (Collected, error) {
	info, err := os.Stat(root)
	if err != nil {
		w.logger.Error("Cannot access root", zap.String("root", root), zap.Error(err))
		return Collected{}, fmt.Errorf("failed to access root %s: %w", root, err)
	}
	if !info.IsDir() {
		return Collected{}, fmt.Errorf("root %s is not a directory", root)
	}

	w.logger.Debug("Starting file traversal", zap.String("root", root), zap.Int("workers", w.workers))

	paths := make(chan string, w.workers*4)
	found := make([][]string, w.workers)
	oversized := &oversizedList{}
	var wg sync.WaitGroup

	for id := 0; id < w.workers; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			workerLogger := w.logger.With(zap.Int("workerID", id))
			for path := range paths {
				size, ok := w.inspect(root, path, workerLogger)
				if !ok {
					continue
				}
				found[id] = append(found[id], path)
				if size > LargeFileThreshold {
					oversized.add(OversizedFile{Path: path, Size: size})
				}
			}
		}(id)
	}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && w.skipDir(root, path, d.Name()) {
				w.logger.Debug("Skipping ignored directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		paths <- path
		return nil
	})
	close(paths)
	wg.Wait()

	if walkErr != nil {
		// The callback never returns an error, so this is unexpected.
		w.logger.Warn("Traversal ended early", zap.String("root", root), zap.Error(walkErr))
	}

	var collected Collected
	for _, files := range found {
		collected.Files = append(collected.Files, files...)
	}
	collected.Oversized = oversized.items

	w.logger.Info("Completed file traversal",
		zap.Int("candidates", len(collected.Files)),
		zap.Int("oversized", len(collected.Oversized)))
	return collected, nil
}

func (w *Walker) skipDir(root, path, name string) bool {
	if w.filter.ShouldIgnoreDirectory(name) {
		return true
	}
	return w.gi.MatchesPath(relativeTo(root, path), true)
}

// inspect applies the file rules to path and stats it. ok is false when the
// file is filtered out, is not a regular file, or cannot be stat'ed.
func (w *Walker) inspect(root, path string, logger *zap.Logger) (size int64, ok bool) {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ResourceForkPrefix) || w.filter.ShouldIgnoreFile(path) {
		return 0, false
	}
	if w.gi.MatchesPath(relativeTo(root, path), false) {
		logger.Debug("File matches ignore pattern", zap.String("file", path))
		return 0, false
	}
	if len(w.exclude) > 0 {
		if abs, err := filepath.Abs(path); err == nil {
			if _, excluded := w.exclude[abs]; excluded {
				return 0, false
			}
		}
	}

	// Stat follows symlinks; dangling links fail here and are dropped.
	info, err := os.Stat(path)
	if err != nil {
		logger.Warn("Failed to stat file during traversal", zap.String("filePath", path), zap.Error(err))
		return 0, false
	}
	if !info.Mode().IsRegular() {
		return 0, false
	}
	return info.Size(), true
}

func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return normalizePath(path)
	}
	return normalizePath(rel)
}
