package combine

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// treeNode is a directory in the tree built from a file list.
type treeNode struct {
	dirs  map[string]*treeNode
	files []string
}

func newTreeNode() *treeNode {
	return &treeNode{dirs: make(map[string]*treeNode)}
}

// GenerateTree renders files (paths under root) as an indented tree with
// box-drawing connectors. Directories come first, then files, each group
// sorted case-insensitively. Only the given files appear; nothing is read
// from disk.
func GenerateTree(root string, files []string) string {
	top := newTreeNode()
	for _, f := range files {
		parts := strings.Split(relativeTo(root, f), "/")
		node := top
		for _, dir := range parts[:len(parts)-1] {
			child, ok := node.dirs[dir]
			if !ok {
				child = newTreeNode()
				node.dirs[dir] = child
			}
			node = child
		}
		node.files = append(node.files, parts[len(parts)-1])
	}

	var treeBuilder strings.Builder
	treeBuilder.WriteString(normalizePath(filepath.Clean(root)) + "/\n")
	renderTree(&treeBuilder, top, "")
	return treeBuilder.String()
}

func renderTree(b *strings.Builder, node *treeNode, prefix string) {
	type entry struct {
		name  string
		child *treeNode
	}

	dirNames := make([]string, 0, len(node.dirs))
	for name := range node.dirs {
		dirNames = append(dirNames, name)
	}
	byLower := func(s []string) {
		sort.Slice(s, func(i, j int) bool { return strings.ToLower(s[i]) < strings.ToLower(s[j]) })
	}
	byLower(dirNames)
	fileNames := append([]string(nil), node.files...)
	byLower(fileNames)

	entries := make([]entry, 0, len(dirNames)+len(fileNames))
	for _, name := range dirNames {
		entries = append(entries, entry{name: name, child: node.dirs[name]})
	}
	for _, name := range fileNames {
		entries = append(entries, entry{name: name})
	}

	for i, e := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}
		if e.child != nil {
			fmt.Fprintf(b, "%s%s%s/\n", prefix, connector, e.name)
			renderTree(b, e.child, prefix+extension)
			continue
		}
		fmt.Fprintf(b, "%s%s%s\n", prefix, connector, e.name)
	}
}

// WriteTree writes GenerateTree's output for files to path.
func WriteTree(path, root string, files []string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := ensureDirectory(filepath.Dir(path), logger); err != nil {
		return fmt.Errorf("failed to create tree output directory: %w", err)
	}
	if err := writeToFile(path, []byte(GenerateTree(root, files)), 0o644, logger); err != nil {
		return fmt.Errorf("failed to write tree structure: %w", err)
	}
	return nil
}
