package combine

// DefaultIgnoredDirs are directory base names pruned in both modes. A
// leading dot on the on-disk name is tolerated, so "git" covers ".git".
var DefaultIgnoredDirs = []string{
	"git",
	"svn",
	"node_modules",
	"vendor",
	"idea",
	"target",
}

// DefaultIgnoredExtensions is the deny-list table: archives, packages,
// native objects, fonts, images, lockfiles and config noise.
var DefaultIgnoredExtensions = []string{
	// archives
	"lock", "pack", "xz", "7z", "bz2", "gz", "lz", "lzma", "lzo", "rar", "tar", "z", "zip",
	// packages and executables
	"deb", "rpm", "apk", "ipa", "app", "dmg", "pkg", "exe", "dll",
	// data
	"csv",
	// objects and bytecode
	"so", "o", "a", "pyc", "pyo", "pyd", "class", "jar", "war",
	// web fonts
	"woff", "woff2", "ttf", "eot",
	// config and tooling noise
	"env", "log", "gitignore", "json", "npmrc", "prettierrc", "eslintrc", "babelrc", "yml", "yaml",
	// images and documents
	"jpg", "jpeg", "png", "gif", "bmp", "ico", "svg", "webp", "pdf",
	// font and cmap binaries
	"bcmap", "pfb", "pfm", "afm", "otf", "cff", "fon",
}

// DefaultAllowedExtensions is the allow-list table: source, build and
// documentation files worth showing to a model.
var DefaultAllowedExtensions = []string{
	// systems
	"c", "h", "cc", "cpp", "cxx", "hpp", "hh", "rs", "go", "zig", "nim", "d",
	// jvm and .net
	"java", "kt", "kts", "scala", "groovy", "gradle", "cs", "fs", "vb",
	// scripting
	"py", "rb", "pl", "pm", "php", "lua", "r", "jl", "ex", "exs", "erl", "hrl", "clj", "cljs", "hs", "ml", "mli",
	// web
	"js", "jsx", "mjs", "cjs", "ts", "tsx", "vue", "svelte", "html", "htm", "css", "scss", "sass", "less",
	// shell
	"sh", "bash", "zsh", "fish", "ps1", "bat", "cmd",
	// mobile
	"swift", "m", "mm", "dart",
	// build and data definitions
	"sql", "proto", "graphql", "toml", "ini", "cfg", "conf", "cmake", "mk", "tf", "hcl", "nix", "xml",
	// docs
	"md", "markdown", "rst", "txt", "adoc", "tex",
}
