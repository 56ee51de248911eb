package combine

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kr/fs"
	"go.uber.org/zap"
)

// DefaultInventoryDepth bounds the pre-scan used for ignore suggestions.
const DefaultInventoryDepth = 3

// Inventory summarizes the shallow structure of a tree: which extensions
// and directory names occur near the top. It is the input of the ignore
// suggestion collaborator.
type Inventory struct {
	Extensions []string
	Dirs       []string
}

// TakeInventory scans root down to maxDepth levels, skipping directories the
// filter already prunes, and records distinct lower-cased extensions and
// directory base names.
func TakeInventory(root string, maxDepth int, filter PathFilter, logger *zap.Logger) (Inventory, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxDepth <= 0 {
		maxDepth = DefaultInventoryDepth
	}

	exts := make(map[string]struct{})
	dirs := make(map[string]struct{})

	walker := fs.Walk(root)
	for walker.Step() {
		path := walker.Path()
		if err := walker.Err(); err != nil {
			if path == root {
				return Inventory{}, fmt.Errorf("failed to scan %s: %w", root, err)
			}
			logger.Debug("Skipping unreadable entry during inventory", zap.String("path", path), zap.Error(err))
			continue
		}
		if path == root {
			continue
		}

		info := walker.Stat()
		if info.IsDir() {
			if filter.ShouldIgnoreDirectory(info.Name()) {
				walker.SkipDir()
				continue
			}
			dirs[info.Name()] = struct{}{}
			if depth := strings.Count(relativeTo(root, path), "/") + 1; depth >= maxDepth {
				walker.SkipDir()
			}
			continue
		}

		if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(info.Name())), "."); ext != "" {
			exts[ext] = struct{}{}
		}
	}

	inv := Inventory{Extensions: sortedKeys(exts), Dirs: sortedKeys(dirs)}
	logger.Debug("Took inventory",
		zap.Int("extensions", len(inv.Extensions)),
		zap.Int("dirs", len(inv.Dirs)))
	return inv, nil
}
