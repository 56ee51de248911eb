package combine

import (
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// SplitList splits comma- or whitespace-separated items, strips leading
// dots and lower-cases them. Empty items are dropped.
func SplitList(items ...string) []string {
	var out []string
	for _, item := range items {
		fields := strings.FieldsFunc(item, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		for _, f := range fields {
			f = strings.ToLower(strings.TrimLeft(f, "."))
			if f != "" {
				out = append(out, f)
			}
		}
	}
	return out
}

// normalizePath converts OS-specific path separators to forward slashes.
func normalizePath(path string) string {
	return filepath.ToSlash(path)
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func copySet(src map[string]struct{}) map[string]struct{} {
	dst := make(map[string]struct{}, len(src))
	for k := range src {
		dst[k] = struct{}{}
	}
	return dst
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
