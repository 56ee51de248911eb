package combine

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Decider presents oversized files to a decision-maker and returns one
// accept (true) / reject (false) decision per entry, in entry order. Every
// entry starts out accepted. Implementations block until the decision is
// confirmed; there is no timeout.
type Decider interface {
	Decide(ctx context.Context, entries []OversizedFile) ([]bool, error)
}

// DeciderFunc adapts a function to the Decider interface.
type DeciderFunc func(ctx context.Context, entries []OversizedFile) ([]bool, error)

// Decide calls f.
func (f DeciderFunc) Decide(ctx context.Context, entries []OversizedFile) ([]bool, error) {
	return f(ctx, entries)
}

// AcceptAll is the non-interactive Decider: it keeps every oversized file.
type AcceptAll struct{}

// Decide accepts every entry.
func (AcceptAll) Decide(_ context.Context, entries []OversizedFile) ([]bool, error) {
	return DefaultDecisions(len(entries)), nil
}

// DefaultDecisions returns n accept decisions.
func DefaultDecisions(n int) []bool {
	decisions := make([]bool, n)
	for i := range decisions {
		decisions[i] = true
	}
	return decisions
}

// Gate removes the oversized files the decider rejects from files. Files
// that are not oversized are always kept, and the relative order of files is
// preserved. With no oversized files the decider is not consulted and files
// is returned as is. The second return value counts rejected files.
func Gate(ctx context.Context, files []string, oversized []OversizedFile, decider Decider, logger *zap.Logger) ([]string, int, error) {
	if len(oversized) == 0 {
		return files, 0, nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if decider == nil {
		decider = AcceptAll{}
	}

	logger.Info("Large files need a decision", zap.Int("count", len(oversized)))
	decisions, err := decider.Decide(ctx, oversized)
	if err != nil {
		logger.Error("Failed to collect large file decisions", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to collect large file decisions: %w", err)
	}
	if len(decisions) != len(oversized) {
		return nil, 0, fmt.Errorf("%w: got %d, want %d", ErrDecisionCount, len(decisions), len(oversized))
	}

	rejected := make(map[string]struct{})
	for i, entry := range oversized {
		if !decisions[i] {
			rejected[entry.Path] = struct{}{}
			logger.Info("Rejected large file", zap.String("file", entry.Path), zap.Int64("sizeBytes", entry.Size))
		}
	}
	if len(rejected) == 0 {
		return files, 0, nil
	}

	kept := make([]string, 0, len(files))
	for _, f := range files {
		if _, drop := rejected[f]; drop {
			continue
		}
		kept = append(kept, f)
	}
	return kept, len(rejected), nil
}
