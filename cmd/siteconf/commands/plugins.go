package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"git.home.luguber.info/inful/siteconf/internal/config"
	"git.home.luguber.info/inful/siteconf/internal/foundation/errors"
	"git.home.luguber.info/inful/siteconf/internal/observability"
	"git.home.luguber.info/inful/siteconf/internal/plugin"
)

// PluginsCmd implements the 'plugins' command.
type PluginsCmd struct{}

func (p *PluginsCmd) Run(g *Global, root *CLI) error {
	ctx := observability.WithRunID(context.Background(), observability.NewRunID())
	cfg, err := config.Load(ctx, root.LoadOptions(g))
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return errors.FileSystemError("failed to resolve working directory").WithCause(err).Build()
	}
	registry := plugin.DefaultRegistry()
	res := plugin.Resolve(wd, cfg.PluginPaths, cfg.Plugins)
	found := make(map[string]string, len(res.Found))
	for _, loc := range res.Found {
		found[loc.Name] = loc.Path
	}

	tw := tabwriter.NewWriter(g.out(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "PLUGIN\tKIND\tLOCATION")
	for _, name := range cfg.Plugins {
		kind := "unknown"
		if d, ok := registry.Get(name); ok {
			kind = d.Kind.String()
		}
		loc, ok := found[name]
		if !ok {
			loc = "(not found)"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", name, kind, loc)
	}
	return tw.Flush()
}

func pluginProblemError(missing int) error {
	return errors.ValidationError(fmt.Sprintf("%d enabled plugin(s) not found on plugin paths", missing)).
		WithContext("missing", missing).
		Build()
}
