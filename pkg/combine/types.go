package combine

import (
	"strings"
	"time"
)

// Constants
const (
	// LargeFileThreshold is the size above which a candidate is offered to the
	// large-file gate instead of being included unconditionally.
	LargeFileThreshold int64 = 1024 * 1024

	// DefaultOutputFile is written in the current working directory.
	DefaultOutputFile = "repo_content.txt"

	// ResourceForkPrefix marks AppleDouble sidecar files.
	ResourceForkPrefix = "._"

	// RedactedPlaceholder replaces embedded binary payloads.
	RedactedPlaceholder = "<binary data removed>"
)

var (
	blockBanner    = strings.Repeat("=", 47)
	documentBanner = strings.Repeat("=", 49)
)

// OversizedFile is a candidate larger than LargeFileThreshold.
type OversizedFile struct {
	Path string
	Size int64
}

// SizeMB returns the size in mebibytes.
func (o OversizedFile) SizeMB() float64 {
	return float64(o.Size) / (1024.0 * 1024.0)
}

// Collected is the result of a walk.
type Collected struct {
	Files     []string        // candidates, in no particular order
	Oversized []OversizedFile // subset of Files above the threshold
}

// Block is one file's banner-wrapped, redacted content.
type Block struct {
	Path    string
	Content string
}

// Summary describes a finished aggregation run.
type Summary struct {
	Output    string
	Processed int
	Skipped   []string // files dropped under the skip policy
	Rejected  int      // oversized files rejected at the gate
	Elapsed   time.Duration
}
