package combine

import (
	"path/filepath"
	"strings"
)

// PathFilter decides whether directories and files are ignored. It only
// reads its FilterConfig, so one value may be shared by any number of
// goroutines.
type PathFilter struct {
	cfg FilterConfig
}

// NewPathFilter returns a filter over cfg.
func NewPathFilter(cfg FilterConfig) PathFilter {
	return PathFilter{cfg: cfg}
}

// Config returns the configuration the filter decides from.
func (f PathFilter) Config() FilterConfig { return f.cfg }

// ShouldIgnoreDirectory reports whether a directory with base name name
// should be pruned. The name is also tried with one leading dot removed.
// Deny-list configurations compare case-sensitively, allow-list ones
// case-insensitively.
func (f PathFilter) ShouldIgnoreDirectory(name string) bool {
	if f.cfg.mode == AllowList {
		name = strings.ToLower(name)
	}
	if _, ok := f.cfg.dirs[name]; ok {
		return true
	}
	if trimmed, found := strings.CutPrefix(name, "."); found {
		_, ok := f.cfg.dirs[trimmed]
		return ok
	}
	return false
}

// ShouldIgnoreFile reports whether the file at path is excluded by its name:
// no extension, a trailing dot, a versioned shared object (".so."), or the
// extension policy of the configuration. A lone leading dot (".bashrc") does
// not start an extension.
func (f PathFilter) ShouldIgnoreFile(path string) bool {
	name := filepath.Base(path)
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 || dot == len(name)-1 {
		return true
	}

	if strings.Contains(strings.ToLower(name), ".so.") {
		return true
	}

	ext := strings.ToLower(name[dot+1:])
	_, listed := f.cfg.extensions[ext]
	if f.cfg.mode == AllowList {
		return ext == "" || !listed
	}
	return listed
}
