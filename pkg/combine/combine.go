// Package combine walks a source tree, filters it down to text-bearing
// files and concatenates them into one delimited document.
//
// The pipeline is Walker → Gate → Aggregator. Walker and Aggregator run
// worker pools; Gate runs alone between them. Blocks in the output appear in
// completion order, which is not stable across runs.
package combine

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"repoextract/pkg/ignore"
)

// Suggester proposes extra directory names and extensions to ignore, given a
// shallow inventory of the tree.
type Suggester interface {
	Suggest(ctx context.Context, inv Inventory) ([]string, error)
}

// Collaborators are the pieces RunCombine delegates to.
type Collaborators struct {
	Decider   Decider   // large-file decisions; nil accepts everything
	Suggester Suggester // optional ignore suggestions
	Progress  io.Writer // per-file progress; nil disables
	Status    io.Writer // phase messages and the completion line; nil disables
}

// RunCombine orchestrates one extraction run: configuration assembly,
// optional suggestions, the walk, the large-file gate, aggregation and the
// optional tree output.
func RunCombine(ctx context.Context, args Arguments, collab Collaborators, logger *zap.Logger) (Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("runID", uuid.NewString()))
	startTime := time.Now()
	status := collab.Status
	if status == nil {
		status = io.Discard
	}

	root := filepath.Clean(args.Directory)
	logger.Info("Starting extraction", zap.String("directory", root), zap.Stringer("mode", args.Mode))

	builder := NewFilterConfigBuilder(args.Mode).
		Ignore(args.IgnoreItems...).
		Include(args.IncludeItems...)

	if args.Suggest && collab.Suggester != nil {
		suggestions := suggestIgnores(ctx, root, args, builder.Build(), collab.Suggester, logger)
		if len(suggestions) > 0 {
			fmt.Fprintf(status, "Applying %d suggested ignores: %v\n", len(suggestions), suggestions)
			// Explicit includes still win over suggestions.
			builder.Ignore(suggestions...).Include(args.IncludeItems...)
		}
	}
	filter := NewPathFilter(builder.Build())

	globalIgnore := args.GlobalIgnore
	if globalIgnore == "" {
		globalIgnore = os.Getenv(ignore.GlobalEnv)
	}
	gi, err := ignore.LoadIgnoreFiles(filepath.Join(root, ignore.FileName), globalIgnore, logger)
	if err != nil {
		logger.Error("Failed to load ignore patterns", zap.Error(err))
		return Summary{}, fmt.Errorf("failed to load ignore patterns: %w", err)
	}

	fmt.Fprintln(status, "Collecting files...")
	collected, err := NewWalker(filter, gi, args.MaxWorkers, logger).
		Exclude(args.Output, args.Tree).
		Walk(root)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to collect files: %w", err)
	}

	files, rejected, err := Gate(ctx, collected.Files, collected.Oversized, collab.Decider, logger)
	if err != nil {
		return Summary{}, err
	}
	if len(files) == 0 {
		logger.Warn("No files to process after filtering.")
	}

	fmt.Fprintf(status, "Processing %d files...\n", len(files))
	aggregator := NewAggregator(args.Output, AggregatorOptions{
		Workers:  args.MaxWorkers,
		OnError:  args.OnError,
		Progress: collab.Progress,
	}, logger)
	summary, err := aggregator.Run(ctx, files)
	summary.Rejected = rejected
	if err != nil {
		logger.Error("Failed to process files", zap.Error(err))
		return summary, fmt.Errorf("failed to process files: %w", err)
	}

	if args.Tree != "" {
		if err := WriteTree(args.Tree, root, files, logger); err != nil {
			return summary, err
		}
	}

	summary.Elapsed = time.Since(startTime)
	logger.Info("Extraction completed",
		zap.String("outputFile", summary.Output),
		zap.Int("processed", summary.Processed),
		zap.Int("skipped", len(summary.Skipped)),
		zap.Int("rejected", summary.Rejected),
		zap.Duration("elapsed", summary.Elapsed))
	fmt.Fprintf(status, "Finished processing. Output saved to %s\n", summary.Output)
	return summary, nil
}

// suggestIgnores asks the suggester for extra ignores. Every failure is
// logged and yields no suggestions.
func suggestIgnores(ctx context.Context, root string, args Arguments, cfg FilterConfig, s Suggester, logger *zap.Logger) []string {
	inv, err := TakeInventory(root, args.SuggestDepth, NewPathFilter(cfg), logger)
	if err != nil {
		logger.Warn("Skipping ignore suggestions, inventory failed", zap.Error(err))
		return nil
	}
	if len(inv.Extensions) == 0 && len(inv.Dirs) == 0 {
		return nil
	}

	suggestions, err := s.Suggest(ctx, inv)
	if err != nil {
		logger.Warn("Ignore suggestions unavailable", zap.Error(err))
		return nil
	}
	cleaned := SplitList(suggestions...)
	logger.Info("Received ignore suggestions", zap.Strings("suggestions", cleaned))
	return cleaned
}
