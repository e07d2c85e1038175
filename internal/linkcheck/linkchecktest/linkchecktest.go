// Package linkchecktest turns a link scan into a test assertion, so any
// package can keep its documentation tree honest from `go test`.
//
//	func TestDocsLinks(t *testing.T) {
//	    linkchecktest.AssertNoBrokenLinks(t, "../../docs")
//	}
package linkchecktest

import (
	"io"
	"log/slog"

	"git.home.luguber.info/inful/linkcheck/internal/linkcheck"
	"github.com/stretchr/testify/assert"
)

// TestingT is the part of testing.TB the assertions use.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
}

// AssertNoBrokenLinks scans root and fails t once, listing every broken link,
// if any are found. A scan error also fails t. It returns true when the tree
// is clean. Scan logging is discarded unless opts supplies a logger.
func AssertNoBrokenLinks(t TestingT, root string, opts ...linkcheck.Options) bool {
	t.Helper()

	var o linkcheck.Options
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	report, err := linkcheck.NewChecker(o).Check(root)
	if !assert.NoError(t, err, "scanning %s for links", root) {
		return false
	}
	if report.HasBroken() {
		return assert.Fail(t, report.Message())
	}
	return true
}
