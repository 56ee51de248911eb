//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package combine_test

import (
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers
	"go.uber.org/zap/zaptest"

	"repoextract/pkg/combine"
)

func TestTakeInventoryIsDepthBounded(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"main.go":               "package main",
		"web/app.TS":            "x",
		"web/dist/bundle.map":   "x",
		"a/b/c/deep.proto":      "x",
		"node_modules/m/pkg.js": "x",
		"Makefile":              "all:",
	})

	inv, err := combine.TakeInventory(root, 2, denyFilter(), zaptest.NewLogger(t))

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(inv.Extensions).To(Equal([]string{"go", "ts"}))
	g.Expect(inv.Dirs).To(Equal([]string{"a", "b", "dist", "web"}))
}

func TestTakeInventoryMissingRoot(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := combine.TakeInventory(filepath.Join(t.TempDir(), "missing"), 0, denyFilter(), nil)

	g.Expect(err).To(HaveOccurred())
}
