package linkcheck

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func skipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("skipping permission-dependent test when running as root")
	}
}

// writeFile creates path (and its parent directories) under root.
func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestChecker(opts Options) *Checker {
	if opts.Logger == nil {
		opts.Logger = discardLogger()
	}
	return NewChecker(opts)
}

func brokenTargets(report *Report) []string {
	targets := make([]string, 0, len(report.BrokenLinks))
	for _, link := range report.BrokenLinks {
		targets = append(targets, link.Target)
	}
	return targets
}
