package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/siteconf/internal/config"
	"git.home.luguber.info/inful/siteconf/internal/foundation/errors"
	"git.home.luguber.info/inful/siteconf/internal/hugo"
	"git.home.luguber.info/inful/siteconf/internal/observability"
)

// ShowCmd implements the 'show' command.
type ShowCmd struct {
	Format string `short:"f" help:"Output format (yaml, json, settings)" enum:"yaml,json,settings" default:"yaml"`
}

func (s *ShowCmd) Run(g *Global, root *CLI) error {
	ctx := observability.WithRunID(context.Background(), observability.NewRunID())
	cfg, err := config.Load(ctx, root.LoadOptions(g))
	if err != nil {
		return err
	}

	var data []byte
	switch s.Format {
	case "json":
		data, err = json.MarshalIndent(cfg, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case "settings":
		data, err = yaml.Marshal(hugo.NewConfigWriter(cfg).Settings())
	default:
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return errors.InternalError("failed to encode configuration").WithCause(err).Build()
	}
	_, err = fmt.Fprint(g.out(), string(data))
	return err
}
