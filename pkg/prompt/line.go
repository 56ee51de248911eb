package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"repoextract/pkg/combine"
)

// Line asks about each oversized file on its own line. An empty answer keeps
// the file; running out of input keeps all remaining files.
type Line struct {
	In  io.Reader
	Out io.Writer
}

// Decide prompts once per entry, in order.
func (l Line) Decide(ctx context.Context, entries []combine.OversizedFile) ([]bool, error) {
	out := l.Out
	if out == nil {
		out = io.Discard
	}
	decisions := combine.DefaultDecisions(len(entries))
	if len(entries) == 0 {
		return decisions, nil
	}

	fmt.Fprintf(out, "\nFound %d large files (>1MB).\n", len(entries))
	reader := bufio.NewReader(l.In)
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		accept, err := promptUser(reader, out,
			fmt.Sprintf("Include %s (%.2fMB)? [Y/n]: ", entry.Path, entry.SizeMB()))
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read user input: %w", err)
		}
		decisions[i] = accept
	}
	return decisions, nil
}

// promptUser displays a message and reads one answer. "n" or "no"
// (case-insensitive) rejects; anything else, including an empty line,
// accepts. io.EOF is returned only when no answer was read at all.
func promptUser(reader *bufio.Reader, out io.Writer, message string) (bool, error) {
	fmt.Fprint(out, message)
	response, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && response != "") {
		return true, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response != "n" && response != "no", nil
}
