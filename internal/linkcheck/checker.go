package linkcheck

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	cerrors "git.home.luguber.info/inful/linkcheck/internal/errors"
	"git.home.luguber.info/inful/linkcheck/internal/logfields"
	"git.home.luguber.info/inful/linkcheck/internal/metrics"
)

// Checker scans documentation trees for broken relative links.
// A Checker holds no per-scan state and may be reused.
type Checker struct {
	extensions  []string
	excludeDirs []string
	logger      *slog.Logger
	recorder    metrics.Recorder
}

// NewChecker creates a checker from opts, filling in defaults.
func NewChecker(opts Options) *Checker {
	c := &Checker{
		extensions:  opts.Extensions,
		excludeDirs: opts.ExcludeDirs,
		logger:      opts.Logger,
		recorder:    opts.Recorder,
	}
	if len(c.extensions) == 0 {
		c.extensions = DefaultExtensions
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.recorder == nil {
		c.recorder = metrics.NoopRecorder{}
	}
	return c
}

// CheckProjectLinks scans root with default options.
func CheckProjectLinks(root string) (*Report, error) {
	return NewChecker(Options{}).Check(root)
}

// Check walks root and returns every broken link found. Any read or walk
// failure aborts the scan and no report is returned.
func (c *Checker) Check(root string) (*Report, error) {
	start := time.Now()

	info, err := os.Stat(root)
	if err != nil {
		return nil, cerrors.WalkFailed(root, err)
	}
	if !info.IsDir() {
		return nil, cerrors.ValidationFailed("root", "not a directory: "+root)
	}

	report := &Report{
		Root:        root,
		BrokenLinks: []BrokenLink{},
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && c.isExcludedDir(d.Name()) {
				c.logger.Debug("Skipping excluded directory", logfields.Path(path))
				return fs.SkipDir
			}
			return nil
		}

		if !c.isDocFile(d.Name()) {
			return nil
		}

		// Symlinked directories are not descended into and cannot be read as files.
		if d.Type()&fs.ModeSymlink != 0 {
			if target, statErr := os.Stat(path); statErr == nil && target.IsDir() {
				return nil
			}
		}

		return c.checkFile(path, report)
	})
	if err != nil {
		if _, ok := cerrors.As(err); ok {
			return nil, err
		}
		return nil, cerrors.WalkFailed(root, err)
	}

	elapsed := time.Since(start)
	c.recorder.ObserveScanDuration(elapsed)
	c.recorder.SetBrokenLinks(len(report.BrokenLinks))

	c.logger.Info("Link scan completed",
		logfields.Path(root),
		slog.Int("files", report.FilesScanned),
		slog.Int("links_checked", report.LinksChecked),
		slog.Int("links_skipped", report.LinksSkipped),
		logfields.Count(len(report.BrokenLinks)),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))

	return report, nil
}

// checkFile validates all links in one file and appends failures to report.
func (c *Checker) checkFile(path string, report *Report) error {
	links, err := ExtractLinks(path)
	if err != nil {
		return err
	}
	report.FilesScanned++
	c.recorder.IncFilesScanned()

	c.logger.Debug("Scanning file", logfields.File(path), logfields.Count(len(links)))

	dir := filepath.Dir(path)
	for _, link := range links {
		if IsExternal(link) || IsAnchor(link) {
			report.LinksSkipped++
			c.recorder.IncLinkResult(metrics.LinkSkipped)
			continue
		}

		report.LinksChecked++
		resolved := ResolveLinkPath(dir, link)
		if pathExists(resolved) {
			c.recorder.IncLinkResult(metrics.LinkOK)
			continue
		}

		c.recorder.IncLinkResult(metrics.LinkBroken)
		c.logger.Debug("Broken link",
			logfields.File(path),
			logfields.Link(link),
			logfields.Resolved(resolved))
		report.BrokenLinks = append(report.BrokenLinks, BrokenLink{
			SourceFile: path,
			Target:     link,
			Resolved:   resolved,
		})
	}
	return nil
}

func (c *Checker) isDocFile(name string) bool {
	for _, ext := range c.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func (c *Checker) isExcludedDir(name string) bool {
	return slices.Contains(c.excludeDirs, name)
}

// IsExternal reports whether link carries a scheme separator.
func IsExternal(link string) bool {
	return strings.Contains(link, "://")
}

// IsAnchor reports whether link points at a fragment of the current page.
func IsAnchor(link string) bool {
	return strings.HasPrefix(link, "#")
}

// ResolveLinkPath joins link with the directory of the file containing it and
// collapses `.` and `..` segments. Absolute links are only cleaned.
// Fragments and query strings are kept as part of the path.
func ResolveLinkPath(sourceDir, link string) string {
	if filepath.IsAbs(link) {
		return filepath.Clean(link)
	}
	return filepath.Join(sourceDir, link)
}

// pathExists reads the filesystem on every call; results are never cached.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
