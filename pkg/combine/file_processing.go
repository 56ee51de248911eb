package combine

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
)

// Extractor turns one file into a banner-wrapped Block.
type Extractor struct {
	logger *zap.Logger
}

// NewExtractor returns an Extractor logging to logger.
func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// Extract reads path, decodes it as UTF-8 replacing invalid bytes with
// U+FFFD, redacts binary literals and wraps the result. Read errors are
// returned as *ExtractError.
func (e *Extractor) Extract(path string) (Block, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		e.logger.Error("Failed to read file", zap.String("filePath", path), zap.Error(err))
		return Block{}, &ExtractError{Path: path, Err: err}
	}

	text, err := decodeLossy(fileBytes)
	if err != nil {
		return Block{}, &ExtractError{Path: path, Err: err}
	}

	e.logger.Debug("Read file content",
		zap.String("filePath", path),
		zap.Int("contentSizeBytes", len(fileBytes)))

	return Block{
		Path:    path,
		Content: FormatBlock(path, Redact(text)),
	}, nil
}

// FormatBlock wraps body in the block banners for path.
func FormatBlock(path, body string) string {
	var b strings.Builder
	b.Grow(len(body) + len(path) + 4*len(blockBanner) + 64)

	b.WriteString(blockBanner + "\n")
	fmt.Fprintf(&b, "--- File: %s ---\n", path)
	b.WriteString(blockBanner + "\n")
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString("--- End of File ---\n")
	b.WriteString("\n")
	b.WriteString(blockBanner + "\n")
	return b.String()
}

func decodeLossy(raw []byte) (string, error) {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode content: %w", err)
	}
	return string(decoded), nil
}
