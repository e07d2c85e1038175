package linkchecktest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.home.luguber.info/inful/linkcheck/internal/linkcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingT captures failures instead of failing the enclosing test.
type recordingT struct {
	errors []string
}

func (r *recordingT) Helper() {}

func (r *recordingT) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestAssertNoBrokenLinks_Clean(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.md", "[Guide](guide.md)\n[Ext](https://x.com)\n[Anchor](#top)")
	writeFile(t, root, "guide.md", "[Back](index.md)")

	rt := &recordingT{}
	assert.True(t, AssertNoBrokenLinks(rt, root))
	assert.Empty(t, rt.errors)
}

func TestAssertNoBrokenLinks_ReportsEveryBrokenLinkOnce(t *testing.T) {
	root := t.TempDir()
	index := writeFile(t, root, "index.md", "[Home](home.md)\n[Ext](https://x.com)\n[Anchor](#top)")
	page := writeFile(t, root, "sub/page.qmd", "[Gone](../gone.md)")

	rt := &recordingT{}
	assert.False(t, AssertNoBrokenLinks(rt, root))
	require.Len(t, rt.errors, 1)

	msg := rt.errors[0]
	assert.Contains(t, msg, "Broken links found:")
	assert.Contains(t, msg, "In "+index+": link to 'home.md' does not exist.")
	assert.Contains(t, msg, "In "+page+": link to '../gone.md' does not exist.")
	assert.NotContains(t, msg, "x.com")
	assert.NotContains(t, msg, "#top")
	assert.Equal(t, 2, strings.Count(msg, "does not exist."))
}

func TestAssertNoBrokenLinks_ScanErrorFails(t *testing.T) {
	rt := &recordingT{}
	assert.False(t, AssertNoBrokenLinks(rt, filepath.Join(t.TempDir(), "missing")))
	require.Len(t, rt.errors, 1)
	assert.Contains(t, rt.errors[0], "scanning")
}

func TestAssertNoBrokenLinks_Options(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "drafts/wip.md", "[todo](unwritten.md)")
	writeFile(t, root, "index.md", "# Index")

	rt := &recordingT{}
	assert.True(t, AssertNoBrokenLinks(rt, root, linkcheck.Options{ExcludeDirs: []string{"drafts"}}))
	assert.Empty(t, rt.errors)
}
