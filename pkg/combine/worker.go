package combine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AggregatorOptions tunes an Aggregator.
type AggregatorOptions struct {
	Workers  int              // pool size; <= 0 means GOMAXPROCS
	OnError  OnError          // per-file failure policy
	Progress io.Writer        // receives "Processing file N of M" lines; nil disables
	Now      func() time.Time // clock for the run header; nil means time.Now
}

// Aggregator fans files out to a worker pool and appends each file's block
// to a single output document.
type Aggregator struct {
	output    string
	opts      AggregatorOptions
	extractor *Extractor
	logger    *zap.Logger
}

// NewAggregator returns an Aggregator writing to the file at output.
func NewAggregator(output string, opts AggregatorOptions, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Aggregator{
		output:    output,
		opts:      opts,
		extractor: NewExtractor(logger),
		logger:    logger,
	}
}

// blockWriter is the output stream shared by all workers. A block and its
// progress update are written under one lock acquisition, so blocks never
// interleave and the counter matches the blocks written.
type blockWriter struct {
	mu       sync.Mutex
	w        *bufio.Writer
	total    int
	done     int
	skipped  []string
	progress io.Writer
}

func (bw *blockWriter) append(block Block) error {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if _, err := bw.w.WriteString(block.Content); err != nil {
		return fmt.Errorf("failed to write block for %s: %w", block.Path, err)
	}
	bw.done++
	if bw.progress != nil {
		fmt.Fprintf(bw.progress, "\rProcessing file %d of %d: %s", bw.done, bw.total, block.Path)
	}
	return nil
}

func (bw *blockWriter) skip(path string) {
	bw.mu.Lock()
	bw.skipped = append(bw.skipped, path)
	bw.mu.Unlock()
}

// Run truncates the output, writes the run header and then one block per
// file. Blocks appear in completion order, which differs between runs.
// Under FailFast the first extraction error cancels the remaining work and
// is returned; under SkipFile failed files are logged and listed in the
// summary. Output errors are always returned.
func (a *Aggregator) Run(ctx context.Context, files []string) (summary Summary, err error) {
	start := time.Now()
	summary.Output = a.output

	if err := ensureDirectory(filepath.Dir(a.output), a.logger); err != nil {
		return summary, fmt.Errorf("failed to create output directory: %w", err)
	}

	outFile, err := os.Create(a.output)
	if err != nil {
		a.logger.Error("Failed to create output file", zap.String("file", a.output), zap.Error(err))
		return summary, fmt.Errorf("failed to create output file: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(outFile))

	bw := &blockWriter{
		w:        bufio.NewWriter(outFile),
		total:    len(files),
		progress: a.opts.Progress,
	}

	if _, err := bw.w.WriteString(a.runHeader()); err != nil {
		return summary, fmt.Errorf("failed to write run header: %w", err)
	}

	runErr := a.dispatch(ctx, files, bw)

	if a.opts.Progress != nil && bw.done > 0 {
		fmt.Fprintln(a.opts.Progress)
	}
	if flushErr := bw.w.Flush(); flushErr != nil {
		a.logger.Error("Failed to flush output file", zap.String("file", a.output), zap.Error(flushErr))
		runErr = multierr.Append(runErr, fmt.Errorf("failed to flush output: %w", flushErr))
	}

	summary.Processed = bw.done
	summary.Skipped = bw.skipped
	summary.Elapsed = time.Since(start)
	return summary, runErr
}

func (a *Aggregator) runHeader() string {
	return fmt.Sprintf("Repository Content Extraction\nGenerated on: %s\n%s\n\n",
		a.opts.Now().Format(time.RFC3339), documentBanner)
}

// dispatch runs the worker pool over files.
func (a *Aggregator) dispatch(ctx context.Context, files []string, bw *blockWriter) error {
	workers := a.opts.Workers
	if workers > len(files) {
		workers = len(files)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	jobs := make(chan string)

	group.Go(func() error {
		defer close(jobs)
		for _, file := range files {
			select {
			case jobs <- file:
			case <-groupCtx.Done():
				return groupCtx.Err()
			}
		}
		return nil
	})

	a.logger.Debug("Initializing worker pool", zap.Int("workers", workers))
	for w := 0; w < workers; w++ {
		workerLogger := a.logger.With(zap.Int("workerID", w))
		group.Go(func() error {
			return a.worker(groupCtx, jobs, bw, workerLogger)
		})
	}

	return group.Wait()
}

// worker extracts files from jobs until the channel closes or the run is
// cancelled.
func (a *Aggregator) worker(ctx context.Context, jobs <-chan string, bw *blockWriter, logger *zap.Logger) error {
	for file := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}

		block, err := a.extractor.Extract(file)
		if err != nil {
			if a.opts.OnError == SkipFile {
				logger.Warn("Skipping file that could not be extracted", zap.String("filePath", file), zap.Error(err))
				bw.skip(file)
				continue
			}
			logger.Error("Worker failed to process file", zap.String("filePath", file), zap.Error(err))
			return err
		}

		if err := bw.append(block); err != nil {
			logger.Error("Worker failed to write block", zap.String("filePath", file), zap.Error(err))
			return err
		}
	}
	return nil
}
