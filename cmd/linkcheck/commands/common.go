package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/linkcheck/internal/config"
	cerrors "git.home.luguber.info/inful/linkcheck/internal/errors"
	"git.home.luguber.info/inful/linkcheck/internal/version"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
	Stdout io.Writer
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:".linkcheck.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Check CheckCmd `cmd:"" default:"withargs" help:"Check relative links in markdown and quarto files"`
	Init  InitCmd  `cmd:"" help:"Initialize a new configuration file"`
}

// loadConfig reads the configuration file. The default path is optional;
// an explicitly named file must exist.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.Config == config.DefaultPath {
		return config.LoadOrDefault(c.Config)
	}
	return config.Load(c.Config)
}

// exitSignal carries a kong exit request (help, version) out of the parser.
type exitSignal int

// Run parses args, executes the selected command and returns the process
// exit code. Output goes to stdout, logs and errors to stderr.
func Run(args []string, stdout, stderr io.Writer) (code int) {
	var cli CLI

	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(exitSignal)
			if !ok {
				panic(r)
			}
			code = int(sig)
		}
	}()

	parser, err := kong.New(&cli,
		kong.Name("linkcheck"),
		kong.Description("Check that relative links in markdown and quarto documentation resolve to existing files."),
		kong.Vars{"version": version.String()},
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) { panic(exitSignal(c)) }),
	)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "linkcheck: %v\n", err)
		return 10
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "linkcheck: error: %v\n", err)
		return 2
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	err = kctx.Run(&Global{Logger: logger, Stdout: stdout}, &cli)
	return cerrors.NewCLIErrorAdapter(cli.Verbose, logger).WithOutput(stderr).Report(err)
}
