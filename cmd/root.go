package cmd

import (
	"context"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	"repoextract/pkg/combine"
	"repoextract/pkg/logging"
	"repoextract/pkg/version"
)

// rootOptions holds the flag values of the root command.
type rootOptions struct {
	output     string
	tree       string
	mode       combine.Mode
	onError    combine.OnError
	ignore     []string
	include    []string
	workers    int
	yes        bool
	configPath string
	noSuggest  bool
	verbose    bool
	debug      bool

	logger       *zap.Logger
	undoMaxprocs func()
}

func newRootOptions() *rootOptions {
	return &rootOptions{
		output:  combine.DefaultOutputFile,
		mode:    combine.DenyList,
		onError: combine.FailFast,
	}
}

// NewRootCmd builds the repoextract command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newRootOptions())
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:   version.AppName + " [directory]",
		Short: "Combine a source tree into one text file",
		Long: `repoextract walks a directory, keeps the files that look like source or text,
and concatenates them into a single delimited document, ready to paste into a
language model. Embedded binary payloads are replaced by a placeholder and files
over 1MB are offered for review before they are included.`,
		Example: `  repoextract
  repoextract ./service -i "vendor,lock" -o service.txt
  repoextract . --mode allow -I proto --tree tree.txt`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.setupLogging()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if opts.undoMaxprocs != nil {
				opts.undoMaxprocs()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCombine(cmd, args, opts)
		},
	}

	flags := root.Flags()
	flags.StringSliceVarP(&opts.ignore, "ignore", "i", nil, "Extra directory names or extensions to ignore; comma separated, or quote a space separated list (-i \"vendor lock\")")
	flags.StringSliceVarP(&opts.include, "include", "I", nil, "Extensions to force-include; comma separated, or quote a space separated list")
	flags.VarP(&opts.mode, "mode", "m", "Extension policy: deny or allow")
	flags.StringVarP(&opts.output, "output", "o", opts.output, "Path of the combined output file")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "Number of worker goroutines (0 uses GOMAXPROCS)")
	flags.BoolVarP(&opts.yes, "yes", "y", false, "Include every large file without asking")
	flags.Var(&opts.onError, "on-error", "What to do when a file cannot be read: fail or skip")
	flags.StringVar(&opts.tree, "tree", "", "Also write a tree of the extracted files to this path")
	flags.StringVar(&opts.configPath, "config", "", "Settings file (default <directory>/"+combine.SettingsFileName+")")
	flags.BoolVar(&opts.noSuggest, "no-suggest", false, "Do not ask the suggestion endpoint for extra ignores")

	persistent := root.PersistentFlags()
	persistent.BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress details to stderr")
	persistent.BoolVar(&opts.debug, "debug", false, "Enable development logging at debug level")

	root.AddCommand(newVersionCmd())
	return root
}

// setupLogging installs the process logger and aligns GOMAXPROCS with the
// container CPU quota.
func (o *rootOptions) setupLogging() error {
	logger, err := logging.Setup(logging.Options{
		Debug:      o.debug,
		Verbose:    o.verbose,
		AppName:    version.AppName,
		AppVersion: version.Get().Version,
	})
	if err != nil {
		logger.Warn("Falling back to example logger", zap.Error(err))
	}
	o.logger = logger

	undo, err := maxprocs.Set(maxprocs.Logger(logger.Sugar().Debugf))
	if err != nil {
		logger.Warn("Failed to set GOMAXPROCS", zap.Error(err))
	}
	o.undoMaxprocs = undo
	return nil
}

// Execute runs the root command with styled help and errors.
func Execute(ctx context.Context) error {
	return fang.Execute(
		ctx,
		NewRootCmd(),
		fang.WithVersion(version.Get().Version),
		fang.WithoutManpage(),
	)
}
