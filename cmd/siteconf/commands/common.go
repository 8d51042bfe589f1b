package commands

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/siteconf/internal/config"
	"git.home.luguber.info/inful/siteconf/internal/metrics"
	"git.home.luguber.info/inful/siteconf/internal/observability"
	"git.home.luguber.info/inful/siteconf/internal/version"
)

// Global carries shared state into subcommands.
type Global struct {
	Logger   *slog.Logger
	Recorder metrics.Recorder
	// Out receives command output; logs go to stderr.
	Out io.Writer
}

// NewGlobal returns the process defaults: stdout output and no metrics.
func NewGlobal() *Global {
	return &Global{Logger: slog.Default(), Recorder: metrics.NoopRecorder{}, Out: os.Stdout}
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config    string           `short:"c" help:"Overlay configuration file path" default:"siteconf.yaml"`
	Header    string           `help:"Header snippet path (overrides header_path)"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogFormat string           `name:"log-format" help:"Log format (text, json)" enum:"text,json" default:"text"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Show     ShowCmd     `cmd:"" help:"Print the loaded site configuration"`
	Generate GenerateCmd `cmd:"" help:"Write the engine config file (hugo.yaml or hugo.toml)"`
	Validate ValidateCmd `cmd:"" help:"Load and validate the configuration, checking plugin availability"`
	Plugins  PluginsCmd  `cmd:"" help:"List enabled plugins and where they were found"`
	Init     InitCmd     `cmd:"" help:"Write the declared settings to an editable overlay file"`
	Watch    WatchCmd    `cmd:"" help:"Regenerate the engine config whenever the overlay or header changes"`
	Ver      VersionCmd  `cmd:"" name:"version" help:"Print version information"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	logger := observability.NewLogger(observability.LoggerOptions{
		Verbose: c.Verbose,
		Format:  c.LogFormat,
		Output:  os.Stderr,
	})
	slog.SetDefault(logger)
	return nil
}

// NewParser builds the kong parser for cli.
func NewParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	opts := []kong.Option{
		kong.Name("siteconf"),
		kong.Description("Site configuration for the Python Group UEA blog"),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	}
	return kong.New(cli, append(opts, options...)...)
}

// LoadOptions translates the root flags into config load options. An overlay path
// other than the default must exist.
func (c *CLI) LoadOptions(g *Global) config.LoadOptions {
	overlay := strings.TrimSpace(c.Config)
	return config.LoadOptions{
		OverlayPath:    overlay,
		RequireOverlay: overlay != "" && overlay != config.DefaultOverlayPath,
		HeaderPath:     c.Header,
		Recorder:       g.recorder(),
	}
}

func (g *Global) recorder() metrics.Recorder {
	if g == nil || g.Recorder == nil {
		return metrics.NoopRecorder{}
	}
	return g.Recorder
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}
