package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/siteconf/internal/config"
	"git.home.luguber.info/inful/siteconf/internal/foundation/errors"
	"git.home.luguber.info/inful/siteconf/internal/hugo"
	"git.home.luguber.info/inful/siteconf/internal/observability"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Output string `short:"o" help:"Directory to write the engine config into" default:"."`
	Format string `short:"f" help:"Engine config format (yaml, toml)" enum:"yaml,toml" default:"yaml"`
}

func (gc *GenerateCmd) Run(g *Global, root *CLI) error {
	format, err := hugo.ParseFormat(gc.Format)
	if err != nil {
		return errors.ValidationError("invalid format").WithCause(err).Build()
	}

	ctx := observability.WithRunID(context.Background(), observability.NewRunID())
	ctx = observability.WithStage(ctx, "generate")
	cfg, err := config.Load(ctx, root.LoadOptions(g))
	if err != nil {
		return err
	}

	path, err := hugo.NewConfigWriter(cfg).WithRecorder(g.recorder()).WriteFile(gc.Output, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(g.out(), "Wrote %s\n", path)
	return err
}
