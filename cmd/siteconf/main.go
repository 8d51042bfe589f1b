package main

import (
	"os"

	"git.home.luguber.info/inful/siteconf/cmd/siteconf/commands"
	"git.home.luguber.info/inful/siteconf/internal/foundation/errors"
)

func main() {
	var cli commands.CLI
	parser, err := commands.NewParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	global := commands.NewGlobal()
	if err := ctx.Run(global, &cli); err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, nil).HandleError(err)
	}
}
