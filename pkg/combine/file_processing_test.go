//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package combine_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers
	"go.uber.org/zap/zaptest"

	"repoextract/pkg/combine"
)

func TestFormatBlockLayout(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	banner := strings.Repeat("=", 47)

	g.Expect(combine.FormatBlock("src/a.go", "package a")).To(Equal(
		banner + "\n" +
			"--- File: src/a.go ---\n" +
			banner + "\n" +
			"\n" +
			"package a\n" +
			"--- End of File ---\n" +
			"\n" +
			banner + "\n"))
}

func TestExtractRedactsAndWraps(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "payload.py")
	g.Expect(os.WriteFile(path, []byte("DATA = b\"\"\"\x01\x02\"\"\"\nprint(1)\n"), 0o644)).To(Succeed())

	block, err := combine.NewExtractor(zaptest.NewLogger(t)).Extract(path)

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(block.Path).To(Equal(path))
	g.Expect(block.Content).To(Equal(combine.FormatBlock(path,
		"DATA = b\"\"\"<binary data removed>\"\"\"\nprint(1)\n")))
}

func TestExtractReplacesInvalidUTF8(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "latin1.txt")
	g.Expect(os.WriteFile(path, []byte("caf\xe9 ok"), 0o644)).To(Succeed())

	block, err := combine.NewExtractor(nil).Extract(path)

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(block.Content).To(ContainSubstring("caf� ok"))
}

func TestExtractMissingFile(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "gone.go")

	_, err := combine.NewExtractor(nil).Extract(path)

	var extractErr *combine.ExtractError
	g.Expect(errors.As(err, &extractErr)).To(BeTrue())
	g.Expect(extractErr.Path).To(Equal(path))
	g.Expect(errors.Is(err, fs.ErrNotExist)).To(BeTrue())
	g.Expect(err.Error()).To(ContainSubstring(path))
}
