package commands

import (
	"context"
	"fmt"
	"os"

	"git.home.luguber.info/inful/siteconf/internal/config"
	"git.home.luguber.info/inful/siteconf/internal/logfields"
	"git.home.luguber.info/inful/siteconf/internal/observability"
	"git.home.luguber.info/inful/siteconf/internal/plugin"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	// Strict turns missing or unknown plugins into a failure.
	Strict bool `help:"Fail when an enabled plugin cannot be found"`
}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	ctx := observability.WithRunID(context.Background(), observability.NewRunID())
	ctx = observability.WithStage(ctx, "validate")
	cfg, err := config.Load(ctx, root.LoadOptions(g))
	if err != nil {
		return err
	}

	problems := checkPlugins(ctx, cfg)
	if v.Strict && problems > 0 {
		return pluginProblemError(problems)
	}

	_, err = fmt.Fprintf(g.out(), "Configuration is valid (snapshot %s)\n", cfg.Snapshot()[:12])
	return err
}

// checkPlugins logs plugins that are not catalogued or not found on the search
// paths, returning how many were not found.
func checkPlugins(ctx context.Context, cfg *config.Config) int {
	for _, name := range plugin.DefaultRegistry().Unknown(cfg.Plugins) {
		observability.DebugContext(ctx, "Plugin not in catalogue", logfields.Plugin(name))
	}
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	res := plugin.Resolve(wd, cfg.PluginPaths, cfg.Plugins)
	for _, name := range res.Missing {
		observability.WarnContext(ctx, "Plugin not found on plugin paths", logfields.Plugin(name))
	}
	return len(res.Missing)
}
