package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"repoextract/pkg/combine"
	"repoextract/pkg/logging"
	"repoextract/pkg/prompt"
	"repoextract/pkg/suggest"
)

// errSettingsNotFound is returned when --config names a missing file.
var errSettingsNotFound = errors.New("settings file not found")

// runCombine resolves the run arguments and executes one extraction.
func runCombine(cmd *cobra.Command, positional []string, opts *rootOptions) error {
	logger := logging.OrNop(opts.logger)

	directory := "."
	if len(positional) > 0 {
		directory = positional[0]
	}

	args, err := opts.arguments(cmd, directory)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	collab := combine.Collaborators{
		Decider:  chooseDecider(opts.yes, os.Stdin, out),
		Progress: out,
		Status:   out,
	}
	if args.Suggest {
		if client, ok := suggest.FromEnv(logger); ok {
			collab.Suggester = client
		} else {
			args.Suggest = false
		}
	}

	summary, err := combine.RunCombine(cmd.Context(), args, collab, logger)
	if err != nil {
		return err
	}
	printSummary(out, summary)
	return nil
}

// arguments layers defaults, the settings file and explicitly set flags, in
// that order. List flags are appended to the lists from the settings file.
func (o *rootOptions) arguments(cmd *cobra.Command, directory string) (combine.Arguments, error) {
	args := combine.DefaultArguments()
	args.Directory = directory

	settingsPath := o.configPath
	if settingsPath == "" {
		settingsPath = filepath.Join(directory, combine.SettingsFileName)
	}
	settings, found, err := combine.LoadSettings(settingsPath)
	if err != nil {
		return args, err
	}
	if !found && o.configPath != "" {
		return args, fmt.Errorf("%w: %s", errSettingsNotFound, settingsPath)
	}
	if err := settings.Apply(&args); err != nil {
		return args, fmt.Errorf("invalid settings in %s: %w", settingsPath, err)
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		args.Mode = o.mode
	}
	if flags.Changed("on-error") {
		args.OnError = o.onError
	}
	if flags.Changed("output") {
		args.Output = o.output
	}
	if flags.Changed("tree") {
		args.Tree = o.tree
	}
	if flags.Changed("workers") {
		args.MaxWorkers = o.workers
	}
	args.IgnoreItems = append(args.IgnoreItems, o.ignore...)
	args.IncludeItems = append(args.IncludeItems, o.include...)
	args.Suggest = !o.noSuggest

	logging.OrNop(o.logger).Debug("Resolved arguments",
		zap.String("directory", args.Directory),
		zap.Bool("settingsFound", found),
		zap.Stringer("mode", args.Mode),
		zap.Stringer("onError", args.OnError),
		zap.Strings("ignore", args.IgnoreItems),
		zap.Strings("include", args.IncludeItems))
	return args, nil
}

// chooseDecider picks how large files are reviewed: not at all with --yes,
// the interactive list on a terminal, line prompts otherwise.
func chooseDecider(yes bool, in *os.File, out io.Writer) combine.Decider {
	switch {
	case yes:
		return combine.AcceptAll{}
	case term.IsTerminal(int(in.Fd())):
		return prompt.TUI{In: in, Out: out}
	default:
		return prompt.Line{In: in, Out: out}
	}
}

func printSummary(out io.Writer, s combine.Summary) {
	fmt.Fprintf(out, "Files processed: %d\n", s.Processed)
	if len(s.Skipped) > 0 {
		fmt.Fprintf(out, "Files skipped after read errors: %d\n", len(s.Skipped))
	}
	if s.Rejected > 0 {
		fmt.Fprintf(out, "Large files left out: %d\n", s.Rejected)
	}
	fmt.Fprintf(out, "Elapsed: %s\n", s.Elapsed.Round(time.Millisecond))
}
