package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/wordtrie/pkg/cli"
	"github.com/rs/zerolog/log"
)

func main() {
	var app cli.CLI
	ctx := kong.Parse(&app,
		kong.Name("wordtrie"),
		kong.Description("Load word lists into a prefix tree and query them."),
		kong.UsageOnError(),
	)

	ctx.FatalIfErrorf(cli.ConfigureLogging(app.Globals))

	if err := ctx.Run(cli.NewContext(os.Stdout)); err != nil {
		log.Error().Err(err).Str("command", ctx.Command()).Msg("Command failed")
		os.Exit(1)
	}
}
