package combine

import (
	"fmt"
	"strings"
)

// Mode selects the extension policy of a FilterConfig.
type Mode int

const (
	// DenyList ignores files whose extension is in the configured set.
	DenyList Mode = iota
	// AllowList ignores files whose extension is not in the configured set.
	AllowList
)

// String returns the flag spelling of the mode.
func (m Mode) String() string {
	switch m {
	case DenyList:
		return "deny"
	case AllowList:
		return "allow"
	default:
		return "unknown"
	}
}

// ParseMode parses "deny" or "allow" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deny", "denylist", "deny-list":
		return DenyList, nil
	case "allow", "allowlist", "allow-list":
		return AllowList, nil
	default:
		return DenyList, fmt.Errorf("invalid mode: %s (valid: deny, allow)", s)
	}
}

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string { return "mode" }

// UnmarshalText implements encoding.TextUnmarshaler for settings files.
func (m *Mode) UnmarshalText(text []byte) error { return m.Set(string(text)) }

// OnError is the policy applied when a single file cannot be extracted.
type OnError int

const (
	// FailFast aborts the whole run on the first extraction error.
	FailFast OnError = iota
	// SkipFile logs the failure, leaves the file out and carries on.
	SkipFile
)

// String returns the flag spelling of the policy.
func (o OnError) String() string {
	switch o {
	case FailFast:
		return "fail"
	case SkipFile:
		return "skip"
	default:
		return "unknown"
	}
}

// Set implements pflag.Value.
func (o *OnError) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fail", "fail-fast", "abort":
		*o = FailFast
	case "skip", "warn":
		*o = SkipFile
	default:
		return fmt.Errorf("invalid error policy: %s (valid: fail, skip)", s)
	}
	return nil
}

// Type implements pflag.Value.
func (o *OnError) Type() string { return "policy" }

// UnmarshalText implements encoding.TextUnmarshaler for settings files.
func (o *OnError) UnmarshalText(text []byte) error { return o.Set(string(text)) }

// FilterConfig is the immutable input of a PathFilter: a mode tag, the
// ignored directory names and the one active extension set (denied or
// allowed, depending on the mode).
type FilterConfig struct {
	mode       Mode
	dirs       map[string]struct{}
	extensions map[string]struct{}
}

// NewFilterConfig builds a FilterConfig from explicit lists, without any
// defaults. Items are normalized like command-line items.
func NewFilterConfig(mode Mode, dirs, extensions []string) FilterConfig {
	cfg := FilterConfig{
		mode:       mode,
		dirs:       make(map[string]struct{}),
		extensions: make(map[string]struct{}),
	}
	for _, d := range SplitList(dirs...) {
		cfg.dirs[d] = struct{}{}
	}
	for _, e := range SplitList(extensions...) {
		cfg.extensions[e] = struct{}{}
	}
	return cfg
}

// Mode returns the extension policy.
func (c FilterConfig) Mode() Mode { return c.mode }

// Dirs returns the ignored directory names, sorted.
func (c FilterConfig) Dirs() []string { return sortedKeys(c.dirs) }

// Extensions returns the active extension set, sorted.
func (c FilterConfig) Extensions() []string { return sortedKeys(c.extensions) }

// FilterConfigBuilder assembles a FilterConfig from the default tables and
// user-supplied ignore/include items. It is the only place a configuration
// is mutated.
type FilterConfigBuilder struct {
	mode       Mode
	dirs       map[string]struct{}
	extensions map[string]struct{}
}

// NewFilterConfigBuilder starts from the default tables of mode.
func NewFilterConfigBuilder(mode Mode) *FilterConfigBuilder {
	b := &FilterConfigBuilder{
		mode: mode,
		dirs: toSet(DefaultIgnoredDirs),
	}
	switch mode {
	case AllowList:
		b.extensions = toSet(DefaultAllowedExtensions)
	default:
		b.extensions = toSet(DefaultIgnoredExtensions)
	}
	return b
}

// Ignore adds items as ignored directory names and ignored extensions. In
// allow-list mode the items are removed from the allowed set instead.
func (b *FilterConfigBuilder) Ignore(items ...string) *FilterConfigBuilder {
	for _, item := range SplitList(items...) {
		b.dirs[item] = struct{}{}
		if b.mode == AllowList {
			delete(b.extensions, item)
		} else {
			b.extensions[item] = struct{}{}
		}
	}
	return b
}

// Include forces items to be treated as wanted: they are removed from the
// ignored directory names and, depending on the mode, removed from the
// denied extensions or added to the allowed ones.
func (b *FilterConfigBuilder) Include(items ...string) *FilterConfigBuilder {
	for _, item := range SplitList(items...) {
		delete(b.dirs, item)
		if b.mode == AllowList {
			b.extensions[item] = struct{}{}
		} else {
			delete(b.extensions, item)
		}
	}
	return b
}

// Build returns an immutable snapshot of the builder's state.
func (b *FilterConfigBuilder) Build() FilterConfig {
	return FilterConfig{
		mode:       b.mode,
		dirs:       copySet(b.dirs),
		extensions: copySet(b.extensions),
	}
}

// Arguments holds the configuration options for one extraction run.
type Arguments struct {
	Directory    string   // Root directory to walk.
	Output       string   // Destination path for the combined output file.
	Tree         string   // Optional destination for the tree of extracted files.
	Mode         Mode     // Extension policy.
	IgnoreItems  []string // Extra directory names / extensions to deny.
	IncludeItems []string // Extensions to force-allow.
	MaxWorkers   int      // Worker pool size; <= 0 means GOMAXPROCS.
	OnError      OnError  // Per-file extraction failure policy.
	GlobalIgnore string   // Optional global .combineignore path.
	Suggest      bool     // Ask the suggestion collaborator for extra ignores.
	SuggestDepth int      // Depth bound of the suggestion pre-scan.
}

// DefaultArguments returns the arguments used when nothing is configured.
func DefaultArguments() Arguments {
	return Arguments{
		Directory:    ".",
		Output:       DefaultOutputFile,
		Mode:         DenyList,
		OnError:      FailFast,
		SuggestDepth: DefaultInventoryDepth,
	}
}
