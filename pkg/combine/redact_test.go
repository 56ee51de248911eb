//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package combine_test

import (
	"strings"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"repoextract/pkg/combine"
)

func TestRedact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "data byte literal",
			in:   `DATA = b"""\x00\x01garbage"""`,
			want: `DATA = b"""<binary data removed>"""`,
		},
		{
			name: "b85decode call",
			in:   `blob = b85decode("VPRomVPO3h")`,
			want: `blob = b85decode("<binary data removed>")`,
		},
		{
			name: "base64 b64decode call",
			in:   `raw = base64.b64decode('aGVsbG8=')`,
			want: `raw = base64.b64decode("<binary data removed>")`,
		},
		{
			name: "base64 urlsafe variant",
			in:   `raw = base64.urlsafe_b64decode(payload)`,
			want: `raw = base64.urlsafe_b64decode("<binary data removed>")`,
		},
		{
			name: "payload across lines",
			in:   "x = b85decode(\n  'abc'\n  'def'\n)",
			want: `x = b85decode("<binary data removed>")`,
		},
		{
			name: "unrelated text",
			in:   "decode(x) and DATA = 'plain'",
			want: "decode(x) and DATA = 'plain'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			g.Expect(combine.Redact(tt.in)).To(Equal(tt.want))
		})
	}
}

func TestRedactOccurrencesAreIndependent(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	in := "a = b85decode('one')\nkeep = 1\nb = b85decode('two')\n"

	out := combine.Redact(in)

	g.Expect(out).To(Equal(
		"a = b85decode(\"<binary data removed>\")\nkeep = 1\nb = b85decode(\"<binary data removed>\")\n"))
	g.Expect(strings.Count(out, combine.RedactedPlaceholder)).To(Equal(2))
}

func TestRedactIsIdempotent(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	in := `DATA = b"""xyz"""` + "\n" + `z = base64.b85decode("abc")` + "\n" + `w = base64.standard_b64decode(b)`

	once := combine.Redact(in)

	g.Expect(combine.Redact(once)).To(Equal(once))
	g.Expect(once).NotTo(ContainSubstring("xyz"))
	g.Expect(once).NotTo(ContainSubstring("abc"))
}
