// Package ignore implements .combineignore files: gitignore-style patterns
// evaluated with doublestar globs.
package ignore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// FileName is the per-root ignore file consulted by the walker.
const FileName = ".combineignore"

// GlobalEnv names the environment variable pointing at a global ignore file.
const GlobalEnv = "COMBINEIGNORE_GLOBAL"

// IgnorePattern is one compiled line of an ignore file.
type IgnorePattern struct {
	Glob    string // doublestar glob the line compiled to
	Negate  bool   // line started with '!'
	DirOnly bool   // line ended with '/'
	Line    string // Original pattern line.
	LineNo  int    // Line number in the source (1-based).
}

// GitIgnore is an ordered collection of ignore patterns. The last matching
// pattern decides. A GitIgnore is read-only once loading is done and may be
// shared between goroutines.
type GitIgnore struct {
	Patterns []*IgnorePattern
	logger   *zap.Logger
}

// NewGitIgnore initializes an empty GitIgnore.
func NewGitIgnore(logger *zap.Logger) *GitIgnore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GitIgnore{
		Patterns: []*IgnorePattern{},
		logger:   logger,
	}
}

// LoadIgnoreFiles loads the global ignore file (if any) followed by the
// local one, so local patterns take precedence. Missing files are not errors.
func LoadIgnoreFiles(localPath, globalPath string, logger *zap.Logger) (*GitIgnore, error) {
	gi := NewGitIgnore(logger)

	if globalPath != "" {
		if err := gi.CompileIgnoreFile(globalPath); err != nil {
			return nil, err
		}
	}

	if localPath != "" {
		if err := gi.CompileIgnoreFile(localPath); err != nil {
			return nil, err
		}
	}

	return gi, nil
}

// CompileIgnoreLines compiles pattern lines and appends them.
func (gi *GitIgnore) CompileIgnoreLines(lines ...string) {
	for i, line := range lines {
		pattern := parsePatternLine(line, i+1, gi.logger)
		if pattern != nil {
			gi.Patterns = append(gi.Patterns, pattern)
		}
	}
}

// CompileIgnoreFile reads an ignore file and compiles its lines.
func (gi *GitIgnore) CompileIgnoreFile(fpath string) error {
	content, err := os.ReadFile(fpath)
	if err != nil {
		if os.IsNotExist(err) {
			gi.logger.Debug("Ignore file does not exist and will be skipped", zap.String("filePath", fpath))
			return nil
		}
		gi.logger.Error("Failed to read ignore file", zap.String("filePath", fpath), zap.Error(err))
		return err
	}

	lines := strings.Split(string(content), "\n")
	before := len(gi.Patterns)
	gi.CompileIgnoreLines(lines...)
	gi.logger.Info("Compiled ignore patterns",
		zap.String("filePath", fpath),
		zap.Int("lineCount", len(lines)),
		zap.Int("patternCount", len(gi.Patterns)-before))
	return nil
}

// Len reports the number of compiled patterns.
func (gi *GitIgnore) Len() int {
	if gi == nil {
		return 0
	}
	return len(gi.Patterns)
}

// MatchesPath reports whether the root-relative path is ignored.
func (gi *GitIgnore) MatchesPath(path string, isDir bool) bool {
	matches, _ := gi.MatchesPathWithPattern(path, isDir)
	return matches
}

// MatchesPathWithPattern reports whether path is ignored together with the
// pattern that decided it.
func (gi *GitIgnore) MatchesPathWithPattern(path string, isDir bool) (bool, *IgnorePattern) {
	if gi == nil {
		return false, nil
	}
	normalizedPath := strings.TrimPrefix(filepath.ToSlash(path), "./")

	var matchedPattern *IgnorePattern
	matches := false

	for _, pattern := range gi.Patterns {
		if pattern.match(normalizedPath, isDir) {
			matchedPattern = pattern
			matches = !pattern.Negate
		}
	}

	return matches, matchedPattern
}

func (p *IgnorePattern) match(path string, isDir bool) bool {
	if !p.DirOnly || isDir {
		if ok, _ := doublestar.Match(p.Glob, path); ok {
			return true
		}
	}
	// A matched ancestor directory covers everything beneath it.
	for i := strings.LastIndexByte(path, '/'); i > 0; i = strings.LastIndexByte(path[:i], '/') {
		if ok, _ := doublestar.Match(p.Glob, path[:i]); ok {
			return true
		}
	}
	return false
}

// parsePatternLine turns one ignore-file line into a pattern. Blank lines,
// comments and invalid globs yield nil.
func parsePatternLine(line string, lineNo int, logger *zap.Logger) *IgnorePattern {
	trimmedLine := strings.TrimSpace(line)

	if trimmedLine == "" || strings.HasPrefix(trimmedLine, "#") {
		return nil
	}

	negate := false
	if strings.HasPrefix(trimmedLine, "!") {
		negate = true
		trimmedLine = strings.TrimPrefix(trimmedLine, "!")
	}

	// Handle escaped characters for `#` and `!`.
	if strings.HasPrefix(trimmedLine, "\\#") || strings.HasPrefix(trimmedLine, "\\!") {
		trimmedLine = trimmedLine[1:]
	}

	glob := trimmedLine
	dirOnly := strings.HasSuffix(glob, "/")
	glob = strings.TrimRight(glob, "/")

	// A slash anywhere but the end anchors the pattern to the root.
	anchored := strings.Contains(glob, "/")
	glob = strings.TrimPrefix(glob, "/")
	if glob == "" {
		return nil
	}
	if !anchored && !strings.HasPrefix(glob, "**/") {
		glob = "**/" + glob
	}

	if !doublestar.ValidatePattern(glob) {
		logger.Error("Invalid ignore pattern",
			zap.String("pattern", line),
			zap.Int("lineNo", lineNo))
		return nil
	}

	return &IgnorePattern{
		Glob:    glob,
		Negate:  negate,
		DirOnly: dirOnly,
		Line:    line,
		LineNo:  lineNo,
	}
}
