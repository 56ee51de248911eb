//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package prompt_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"repoextract/pkg/combine"
	"repoextract/pkg/prompt"
)

func entries(n int) []combine.OversizedFile {
	out := make([]combine.OversizedFile, n)
	for i := range out {
		out[i] = combine.OversizedFile{Path: string(rune('a'+i)) + ".bin.txt", Size: 2 << 20}
	}
	return out
}

func TestLineDecideReadsOneAnswerPerEntry(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var out bytes.Buffer
	decider := prompt.Line{In: strings.NewReader("n\n\nNO\nyes\n"), Out: &out}

	decisions, err := decider.Decide(context.Background(), entries(4))

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(decisions).To(Equal([]bool{false, true, false, true}))
	g.Expect(out.String()).To(ContainSubstring("Include a.bin.txt (2.00MB)? [Y/n]: "))
}

func TestLineDecideKeepsRemainingOnEOF(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	decider := prompt.Line{In: strings.NewReader("n")}

	decisions, err := decider.Decide(context.Background(), entries(3))

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(decisions).To(Equal([]bool{false, true, true}))
}

func TestLineDecideSatisfiesGateContract(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	files := []string{"keep.go", "a.bin.txt", "b.bin.txt"}
	decider := prompt.Line{In: strings.NewReader("y\nn\n")}

	kept, rejected, err := combine.Gate(context.Background(), files, entries(2), decider, nil)

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(rejected).To(Equal(1))
	g.Expect(kept).To(Equal([]string{"keep.go", "a.bin.txt"}))
}
