//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package combine_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"repoextract/pkg/combine"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	settings, found, err := combine.LoadSettings(filepath.Join(t.TempDir(), combine.SettingsFileName))

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(found).To(BeFalse())
	g.Expect(settings).To(Equal(combine.Settings{}))
}

func TestLoadSettingsAndApply(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), combine.SettingsFileName)
	g.Expect(os.WriteFile(path, []byte(`
mode: allow
ignore:
  - dist
  - "map, snap"
include: [proto]
output: out/all.txt
workers: 6
onError: skip
tree: out/tree.txt
`), 0o644)).To(Succeed())

	settings, found, err := combine.LoadSettings(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(found).To(BeTrue())

	args := combine.DefaultArguments()
	args.IgnoreItems = []string{"tmp"}
	g.Expect(settings.Apply(&args)).To(Succeed())

	g.Expect(args.Mode).To(Equal(combine.AllowList))
	g.Expect(args.OnError).To(Equal(combine.SkipFile))
	g.Expect(args.Output).To(Equal("out/all.txt"))
	g.Expect(args.Tree).To(Equal("out/tree.txt"))
	g.Expect(args.MaxWorkers).To(Equal(6))
	g.Expect(args.IgnoreItems).To(Equal([]string{"tmp", "dist", "map, snap"}))
	g.Expect(args.IncludeItems).To(Equal([]string{"proto"}))
}

func TestApplyEmptySettingsKeepsArguments(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	args := combine.DefaultArguments()
	g.Expect(combine.Settings{}.Apply(&args)).To(Succeed())

	g.Expect(args).To(Equal(combine.DefaultArguments()))
}

func TestSettingsInvalidValues(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	args := combine.DefaultArguments()
	g.Expect(combine.Settings{Mode: "both"}.Apply(&args)).To(MatchError(ContainSubstring("invalid mode")))
	g.Expect(combine.Settings{OnError: "retry"}.Apply(&args)).To(MatchError(ContainSubstring("invalid error policy")))

	path := filepath.Join(t.TempDir(), combine.SettingsFileName)
	g.Expect(os.WriteFile(path, []byte("workers: [1, 2"), 0o644)).To(Succeed())
	_, _, err := combine.LoadSettings(path)
	g.Expect(err).To(MatchError(ContainSubstring("failed to parse settings")))
}
