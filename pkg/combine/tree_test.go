//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package combine_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"repoextract/pkg/combine"
)

func TestGenerateTree(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := filepath.Join("work", "repo")
	files := []string{
		filepath.Join(root, "main.go"),
		filepath.Join(root, "src", "b.go"),
		filepath.Join(root, "src", "A.go"),
		filepath.Join(root, "src", "util", "strings.go"),
		filepath.Join(root, "docs", "README.md"),
	}

	g.Expect(combine.GenerateTree(root, files)).To(Equal(
		"work/repo/\n" +
			"├── docs/\n" +
			"│   └── README.md\n" +
			"├── src/\n" +
			"│   ├── util/\n" +
			"│   │   └── strings.go\n" +
			"│   ├── A.go\n" +
			"│   └── b.go\n" +
			"└── main.go\n"))
}

func TestGenerateTreeEmpty(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(combine.GenerateTree("repo", nil)).To(Equal("repo/\n"))
}

func TestWriteTreeCreatesParents(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := t.TempDir()
	path := filepath.Join(t.TempDir(), "reports", "tree.txt")

	g.Expect(combine.WriteTree(path, root, []string{filepath.Join(root, "a.go")}, nil)).To(Succeed())

	raw, err := os.ReadFile(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(string(raw)).To(HaveSuffix("└── a.go\n"))
}
