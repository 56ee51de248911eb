//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package version_test

import (
	"runtime"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"repoextract/pkg/version"
)

func TestInfoString(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	info := version.Info{
		Version:   "0.4.0",
		GitCommit: "1a2b3c4",
		BuildTime: "2026-03-02T10:00:00Z",
		GoVersion: "go1.25.5",
		Platform:  "linux/amd64",
	}

	g.Expect(info.String()).To(Equal(
		"repoextract version 0.4.0 (commit: 1a2b3c4) built at 2026-03-02T10:00:00Z with go1.25.5 on linux/amd64"))
}

func TestGetReportsRuntime(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	info := version.Get()

	g.Expect(info.Version).To(Equal(version.Version))
	g.Expect(info.GoVersion).To(Equal(runtime.Version()))
	g.Expect(info.Platform).To(Equal(runtime.GOOS + "/" + runtime.GOARCH))
}
