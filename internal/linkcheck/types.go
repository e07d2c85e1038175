package linkcheck

import (
	"fmt"
	"log/slog"
	"strings"

	cerrors "git.home.luguber.info/inful/linkcheck/internal/errors"
	"git.home.luguber.info/inful/linkcheck/internal/metrics"
)

// ReportHeader is the first line of the aggregated broken-link message.
const ReportHeader = "Broken links found:"

// DefaultExtensions are the file suffixes scanned when Options.Extensions is empty.
var DefaultExtensions = []string{".md", ".qmd"}

// BrokenLink is a link whose resolved target did not exist at scan time.
type BrokenLink struct {
	SourceFile string `json:"source_file"` // file containing the link, as reached by the walk
	Target     string `json:"target"`      // raw link target
	Resolved   string `json:"resolved"`    // normalized path that was checked
}

// String renders the link as a single report line.
func (b BrokenLink) String() string {
	return fmt.Sprintf("In %s: link to '%s' does not exist.", b.SourceFile, b.Target)
}

// Report is the result of scanning one directory tree.
type Report struct {
	Root         string       `json:"root"`
	FilesScanned int          `json:"files_scanned"`
	LinksChecked int          `json:"links_checked"`
	LinksSkipped int          `json:"links_skipped"`
	BrokenLinks  []BrokenLink `json:"broken_links"`
}

// HasBroken returns true if the scan found at least one broken link.
func (r *Report) HasBroken() bool {
	return len(r.BrokenLinks) > 0
}

// Lines returns one human-readable line per broken link, in scan order.
func (r *Report) Lines() []string {
	lines := make([]string, 0, len(r.BrokenLinks))
	for _, link := range r.BrokenLinks {
		lines = append(lines, link.String())
	}
	return lines
}

// Message returns the aggregated failure message: the header followed by
// one line per broken link.
func (r *Report) Message() string {
	return ReportHeader + "\n" + strings.Join(r.Lines(), "\n")
}

// Err returns nil for a clean report, otherwise a links-category error
// carrying Message.
func (r *Report) Err() error {
	if !r.HasBroken() {
		return nil
	}
	return cerrors.BrokenLinks(r.Message(), len(r.BrokenLinks))
}

// Options configures a Checker. The zero value scans .md and .qmd files,
// excludes nothing, logs to slog.Default and records no metrics.
type Options struct {
	// Extensions lists the filename suffixes to scan.
	Extensions []string

	// ExcludeDirs lists directory names that are not descended into.
	ExcludeDirs []string

	Logger   *slog.Logger
	Recorder metrics.Recorder
}
