package commands

import (
	"fmt"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/linkcheck/internal/config"
	cerrors "git.home.luguber.info/inful/linkcheck/internal/errors"
	"git.home.luguber.info/inful/linkcheck/internal/linkcheck"
	"git.home.luguber.info/inful/linkcheck/internal/logfields"
	"git.home.luguber.info/inful/linkcheck/internal/metrics"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Path        string   `arg:"" optional:"" help:"Directory to scan. Defaults to the configured root, then the current directory."`
	Format      string   `short:"f" help:"Output format (text or json)"`
	Ext         []string `help:"File suffixes to scan (repeatable or comma separated)"`
	Exclude     []string `short:"x" help:"Directory names to skip (repeatable or comma separated)"`
	MetricsFile string   `name:"metrics-file" help:"Write scan metrics in Prometheus text format to this file"`
}

// Run executes the check command.
func (c *CheckCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	c.applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	path := c.Path
	if path == "" {
		path = cfg.Root
	}

	var (
		registry *prom.Registry
		recorder metrics.Recorder = metrics.NoopRecorder{}
	)
	if cfg.Metrics.Textfile != "" {
		registry = prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(registry)
	}

	checker := linkcheck.NewChecker(linkcheck.Options{
		Extensions:  cfg.Extensions,
		ExcludeDirs: cfg.Exclude,
		Logger:      g.Logger,
		Recorder:    recorder,
	})

	report, err := checker.Check(path)
	if err != nil {
		return err
	}

	if registry != nil {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile, registry); err != nil {
			return cerrors.Wrap(err, cerrors.CategoryFileSystem, cerrors.SeverityFatal, "failed to write metrics").
				WithContext("path", cfg.Metrics.Textfile)
		}
		g.Logger.Debug("Wrote metrics textfile", logfields.Path(cfg.Metrics.Textfile))
	}

	if err := linkcheck.NewFormatter(cfg.Format).Format(g.Stdout, report); err != nil {
		return cerrors.Wrap(err, cerrors.CategoryInternal, cerrors.SeverityFatal, "formatting output")
	}

	if report.HasBroken() {
		n := len(report.BrokenLinks)
		return cerrors.BrokenLinks(fmt.Sprintf("%d broken link%s found", n, plural(n)), n)
	}
	return nil
}

// applyFlags overrides configuration values with explicitly set flags.
func (c *CheckCmd) applyFlags(cfg *config.Config) {
	if c.Format != "" {
		cfg.Format = c.Format
	}
	if len(c.Ext) > 0 {
		cfg.Extensions = c.Ext
	}
	if len(c.Exclude) > 0 {
		cfg.Exclude = c.Exclude
	}
	if c.MetricsFile != "" {
		cfg.Metrics.Textfile = c.MetricsFile
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
